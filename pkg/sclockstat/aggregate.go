package sclockstat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hiroyaonoe/sclockstat/pkg/log"
)

type Options struct {
	Format HeaderFormat
	// FailFast stops the run at the first file that fails.
	FailFast bool
}

type Result struct {
	Processed int
	Failed    int
}

// Aggregator turns a directory of run logs into a summary report.
type Aggregator struct {
	opts   Options
	report *ReportWriter
}

func NewAggregator(w io.Writer, opts Options) *Aggregator {
	return &Aggregator{
		opts:   opts,
		report: NewReportWriter(w),
	}
}

// Run processes every .txt file in dir in file name order and writes one
// report row per file. A failing file produces no row; its error is logged
// and included in the returned error.
func (a *Aggregator) Run(ctx context.Context, dir string) (Result, error) {
	logger := log.FromContext(ctx).With("func", "sclockstat.Aggregator.Run", "dir", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, fmt.Errorf("read directory: %w", err)
	}
	if err := a.report.WriteHeader(); err != nil {
		return Result{}, fmt.Errorf("write header: %w", err)
	}

	var res Result
	var errs []error
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, logExt) {
			logger.DebugContext(ctx, "skipping entry", "name", name)
			continue
		}

		s, err := a.processFile(ctx, filepath.Join(dir, name))
		if err != nil {
			res.Failed++
			logger.ErrorContext(ctx, "failed to process file", "file", name, "error", err)
			errs = append(errs, &FileError{File: name, Err: err})
			if a.opts.FailFast {
				break
			}
			continue
		}
		if err := a.report.Write(s); err != nil {
			return res, fmt.Errorf("write row for %s: %w", name, err)
		}
		res.Processed++
	}

	logger.InfoContext(ctx, "aggregation finished", "processed", res.Processed, "failed", res.Failed)
	return res, errors.Join(errs...)
}

func (a *Aggregator) processFile(ctx context.Context, path string) (Summary, error) {
	name := filepath.Base(path)
	ctx = log.With(ctx, "file", name)
	logger := log.FromContext(ctx).With("func", "sclockstat.Aggregator.processFile")
	logger.DebugContext(ctx, "examining file")

	id, err := ParseRunID(name)
	if err != nil {
		return Summary{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()

	scanner := &Scanner{Format: a.opts.Format}
	scanned, err := scanner.Scan(ctx, f)
	if err != nil {
		return Summary{}, err
	}
	logger.DebugContext(ctx, "scanned", "lines", scanned.Lines, "rapports", scanned.Rapports, "warnings", scanned.Warnings, "samples", len(scanned.Errors))
	if !scanned.HeaderFound {
		return Summary{}, fmt.Errorf("compute statistics: %w: %w (format %s)", ErrNoSamples, ErrHeaderNotFound, a.opts.Format)
	}

	st, err := Compute(scanned.Errors)
	if err != nil {
		return Summary{}, fmt.Errorf("compute statistics: %w", err)
	}
	return Summary{RunID: id, Stats: st}, nil
}
