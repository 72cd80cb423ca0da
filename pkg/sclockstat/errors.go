package sclockstat

import (
	"errors"
	"fmt"
)

var (
	ErrBadFilename    = errors.New("malformed run filename")
	ErrHeaderNotFound = errors.New("column header not found")
	ErrShortLine      = errors.New("too few fields")
	ErrNoSamples      = errors.New("no error samples after warm-up")
	ErrTooFewSamples  = errors.New("standard deviation needs at least two samples")
)

// LineError reports a failure on a specific 1-based line of a log file.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// FileError attaches the log file name to a per-file failure.
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
