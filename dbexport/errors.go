package dbexport

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySource is returned when the probe query yields no row, so no header can be built.
	ErrEmptySource = errors.New("table is empty")
	// ErrValidation is returned when a written row cannot be found in the output file.
	ErrValidation = errors.New("copying to file failed, data got corrupted")
)

// QueryError wraps a database failure. Its message is the driver message, unchanged.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string { return e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }

// IOError wraps a failure reading or writing the output file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
