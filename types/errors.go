package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTestName means the page has no test owner name element.
	// Every record depends on it, so extraction stops before producing any.
	ErrMissingTestName = errors.New("test owner name not found in document")

	// ErrParse means the input could not be read as markup at all.
	ErrParse = errors.New("input is not an HTML document")

	// ErrNoInput means no input path was selected.
	ErrNoInput = errors.New("no input file selected")

	// ErrTimeout means extraction did not finish within the configured timeout.
	ErrTimeout = errors.New("extraction timed out")
)

// IOError reports a failed read of the input or write of the output.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError wraps err as an IOError, or returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
