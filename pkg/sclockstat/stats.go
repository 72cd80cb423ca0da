package sclockstat

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes an error sample set.
type Stats struct {
	Samples     int
	Mean        float64
	Median      float64
	MaxAbsError int
	StdDev      float64
}

// Compute returns the mean, median, maximum absolute value and sample
// standard deviation of errs. At least two samples are required.
func Compute(errs []int) (Stats, error) {
	switch len(errs) {
	case 0:
		return Stats{}, ErrNoSamples
	case 1:
		return Stats{}, ErrTooFewSamples
	}

	xs := make([]float64, len(errs))
	maxAbs := 0
	for i, e := range errs {
		xs[i] = float64(e)
		if e < 0 {
			e = -e
		}
		if e > maxAbs {
			maxAbs = e
		}
	}
	mean, std := stat.MeanStdDev(xs, nil)

	sort.Float64s(xs)
	n := len(xs)
	median := xs[n/2]
	if n%2 == 0 {
		median = (xs[n/2-1] + xs[n/2]) / 2
	}

	return Stats{
		Samples:     n,
		Mean:        mean,
		Median:      median,
		MaxAbsError: maxAbs,
		StdDev:      std,
	}, nil
}
