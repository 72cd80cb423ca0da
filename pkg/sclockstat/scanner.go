package sclockstat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hiroyaonoe/sclockstat/pkg/log"
)

const (
	warnMarker = "WARN"
	// Samples are kept from the second rapport onward.
	warmupRapports = 2
	maxLineSize    = 1 << 20
)

// Scanner extracts the post-warmup error series from one log file.
type Scanner struct {
	Format HeaderFormat
}

// ScanResult is the outcome of scanning one log.
type ScanResult struct {
	Errors      []int
	HeaderFound bool
	Lines       int
	Rapports    int
	Warnings    int
}

// Scan reads r line by line. Lines up to and including the column header are
// skipped, WARN lines are ignored, and every error value seen once at least
// two rapports have occurred is collected.
func (s *Scanner) Scan(ctx context.Context, r io.Reader) (*ScanResult, error) {
	logger := log.FromContext(ctx).With("func", "sclockstat.Scanner.Scan", "format", s.Format.String())
	headers := s.Format.headers()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	res := &ScanResult{}
	var layout columnLayout
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if !res.HeaderFound {
			if l, ok := findHeader(line, headers); ok {
				layout = l
				res.HeaderFound = true
				logger.DebugContext(ctx, "header found", "line", lineNo, "errCol", l.errCol, "estCol", l.estCol)
			}
			continue
		}

		if strings.Contains(line, warnMarker) {
			res.Warnings++
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) <= layout.estCol {
			return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: got %d, want at least %d", ErrShortLine, len(fields), layout.estCol+1)}
		}
		v, err := strconv.Atoi(strings.TrimSpace(fields[layout.errCol]))
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: fmt.Errorf("parse %s field: %w", errorColumn, err)}
		}
		if fields[layout.estCol] != "" {
			res.Rapports++
		}
		if res.Rapports >= warmupRapports {
			res.Errors = append(res.Errors, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LineError{Line: lineNo + 1, Err: fmt.Errorf("read: %w", err)}
	}
	res.Lines = lineNo
	return res, nil
}
