package sclockstat

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// 6 columns, written before the elapsed-time column was added.
	legacyHeader = "Current Real Time,Local Server Time,Hardware Clock Time,Software Clock Time,Error,Remote Est Time"
	// 7 columns.
	elapsedHeader = "Current Real Time,Real Time Elapsed (sec),Local Server Time,Hardware Clock Time,Software Clock Time,Error,Remote Est Time"

	errorColumn    = "Error"
	estimateColumn = "Remote Est Time"
)

// HeaderFormat selects which column header marks the end of the prelude.
type HeaderFormat int

const (
	HeaderAuto HeaderFormat = iota
	HeaderLegacy
	HeaderElapsed
)

func ParseHeaderFormat(s string) (HeaderFormat, error) {
	switch s {
	case "auto", "":
		return HeaderAuto, nil
	case "legacy":
		return HeaderLegacy, nil
	case "elapsed":
		return HeaderElapsed, nil
	}
	return HeaderAuto, fmt.Errorf("unknown header format %q (auto, legacy, elapsed)", s)
}

func (f HeaderFormat) String() string {
	switch f {
	case HeaderLegacy:
		return "legacy"
	case HeaderElapsed:
		return "elapsed"
	default:
		return "auto"
	}
}

func (f HeaderFormat) headers() []string {
	switch f {
	case HeaderLegacy:
		return []string{legacyHeader}
	case HeaderElapsed:
		return []string{elapsedHeader}
	default:
		return []string{legacyHeader, elapsedHeader}
	}
}

// columnLayout holds the field indexes of the columns the scanner reads.
type columnLayout struct {
	errCol int
	estCol int
}

// findHeader reports whether line contains one of headers. The returned
// layout accounts for any comma-separated fields preceding the header text.
func findHeader(line string, headers []string) (columnLayout, bool) {
	for _, h := range headers {
		pos := strings.Index(line, h)
		if pos < 0 {
			continue
		}
		offset := strings.Count(line[:pos], ",")
		cols := strings.Split(h, ",")
		return columnLayout{
			errCol: offset + slices.Index(cols, errorColumn),
			estCol: offset + slices.Index(cols, estimateColumn),
		}, true
	}
	return columnLayout{}, false
}
