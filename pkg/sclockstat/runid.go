package sclockstat

import (
	"fmt"
	"strconv"
	"strings"
)

const logExt = ".txt"

// RunID identifies one run of the parameter sweep.
type RunID struct {
	MaxDrift           int
	RapportPeriod      int
	AmortizationPeriod int
}

// ParseRunID parses a file name of the form <maxDrift>_<rapportPeriod>_<amortizationPeriod>.txt.
func ParseRunID(filename string) (RunID, error) {
	if !strings.HasSuffix(filename, logExt) {
		return RunID{}, fmt.Errorf("%w: %q does not end in %s", ErrBadFilename, filename, logExt)
	}
	parts := strings.Split(strings.TrimSuffix(filename, logExt), "_")
	if len(parts) != 3 {
		return RunID{}, fmt.Errorf("%w: %q has %d parts, want 3", ErrBadFilename, filename, len(parts))
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return RunID{}, fmt.Errorf("%w: %q: %w", ErrBadFilename, filename, err)
		}
		v[i] = n
	}
	return RunID{MaxDrift: v[0], RapportPeriod: v[1], AmortizationPeriod: v[2]}, nil
}

func (r RunID) String() string {
	return fmt.Sprintf("%d_%d_%d", r.MaxDrift, r.RapportPeriod, r.AmortizationPeriod)
}
