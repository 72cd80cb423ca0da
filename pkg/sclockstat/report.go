package sclockstat

import (
	"encoding/csv"
	"io"
	"strconv"
)

var reportHeader = []string{
	"Max Drift",
	"Rapport Period",
	"Amortization Period",
	"Avg. Error",
	"Median Error",
	"Max Absolute Error",
	"Error Standard Deviation",
}

// Summary is one row of the report.
type Summary struct {
	RunID
	Stats
}

func (s Summary) record() []string {
	return []string{
		strconv.Itoa(s.MaxDrift),
		strconv.Itoa(s.RapportPeriod),
		strconv.Itoa(s.AmortizationPeriod),
		formatFloat(s.Mean),
		formatFloat(s.Median),
		strconv.Itoa(s.MaxAbsError),
		formatFloat(s.StdDev),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ReportWriter writes summaries as CSV, header first. Every row is flushed
// as soon as it is written.
type ReportWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the header line. Calls after the first are no-ops.
func (r *ReportWriter) WriteHeader() error {
	if r.wroteHeader {
		return nil
	}
	r.wroteHeader = true
	return r.write(reportHeader)
}

func (r *ReportWriter) Write(s Summary) error {
	if err := r.WriteHeader(); err != nil {
		return err
	}
	return r.write(s.record())
}

func (r *ReportWriter) write(record []string) error {
	if err := r.w.Write(record); err != nil {
		return err
	}
	r.w.Flush()
	return r.w.Error()
}
