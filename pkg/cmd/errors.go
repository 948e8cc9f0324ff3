package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/variantcompare/variantcompare/pkg/catalog"
	"github.com/variantcompare/variantcompare/pkg/varianterrors"
)

// UsageError occurs when the command line itself is invalid: an unknown flag,
// a missing flag value, or a value rejected by its validator.
type UsageError struct {
	error
}

// Unwrap returns the inner, wrapped error.
func (err UsageError) Unwrap() error {
	return err.error
}

// NewUsageErr constructs a new UsageError.
func NewUsageErr(err error) error {
	return UsageError{err}
}

// PrintError writes a human-readable rendition of err to w: the message, the
// offending value with a caret under the failing column when known, and a
// hint for unresolved identifiers.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", color.RedString("Error:"), err)

	if withSource, ok := varianterrors.AsWithSourceError(err); ok && withSource.ColumnPosition > 0 {
		for _, line := range strings.Split(withSource.Excerpt(), "\n") {
			fmt.Fprintf(w, "\t%s\n", line)
		}
	}

	var unresolved catalog.UnresolvedReferenceError
	if errors.As(err, &unresolved) {
		fmt.Fprintf(w, "%s operands may only name inputs and set operations declared before them\n", color.CyanString("Hint:"))
	}

	var usage UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(w, "%s run with --help for the expected syntax\n", color.CyanString("Hint:"))
	}
}
