package varianterrors

import (
	"errors"
	"strings"
)

// WithSourceError is an error that includes the text of the offending
// command-line value and the position of the problem within it.
type WithSourceError struct {
	error

	// SourceCodeString is the value in which the error occurred.
	SourceCodeString string

	// ColumnPosition is the (1-indexed) column position of the error, or 0 if
	// unknown.
	ColumnPosition uint64
}

// Unwrap returns the inner, wrapped error.
func (err *WithSourceError) Unwrap() error {
	return err.error
}

// Excerpt renders the source string with a caret under the error column.
// Returns only the source string when the column is unknown.
func (err *WithSourceError) Excerpt() string {
	if err.ColumnPosition == 0 || err.ColumnPosition > uint64(len(err.SourceCodeString))+1 {
		return err.SourceCodeString
	}

	return err.SourceCodeString + "\n" + strings.Repeat(" ", int(err.ColumnPosition-1)) + "^"
}

// NewWithSourceError creates and returns a new WithSourceError.
func NewWithSourceError(err error, sourceCodeString string, oneIndexedColumnPosition uint64) *WithSourceError {
	return &WithSourceError{err, sourceCodeString, oneIndexedColumnPosition}
}

// AsWithSourceError returns the error as an WithSourceError, if applicable.
func AsWithSourceError(err error) (*WithSourceError, bool) {
	var serr *WithSourceError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}
