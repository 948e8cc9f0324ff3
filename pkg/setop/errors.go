package setop

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/variantcompare/variantcompare/pkg/varianterrors"
)

// ExpressionKind names the kind of command-line value that failed to parse.
type ExpressionKind string

const (
	// KindInput is an `[id=]filename` input value.
	KindInput ExpressionKind = "input"

	// KindSetOperation is a set-operation expression.
	KindSetOperation ExpressionKind = "set operation"
)

// MalformedExpressionError occurs when an input value or set-operation
// expression does not match its grammar.
type MalformedExpressionError struct {
	error
	kind       ExpressionKind
	expression string
	column     int
	message    string
}

// Kind returns the kind of value that failed to parse.
func (err MalformedExpressionError) Kind() ExpressionKind {
	return err.kind
}

// Expression returns the offending value.
func (err MalformedExpressionError) Expression() string {
	return err.expression
}

// Column returns the 1-indexed column at which parsing failed.
func (err MalformedExpressionError) Column() int {
	return err.column
}

// Reason returns the message describing the failure, without position.
func (err MalformedExpressionError) Reason() string {
	return err.message
}

// Unwrap exposes the positioned source error.
func (err MalformedExpressionError) Unwrap() error {
	return err.error
}

// MarshalZerologObject implements zerolog object marshalling.
func (err MalformedExpressionError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("kind", string(err.kind)).Str("expression", err.expression).Int("column", err.column)
}

// DetailsMetadata returns the metadata for details for this error.
func (err MalformedExpressionError) DetailsMetadata() map[string]string {
	return map[string]string{
		"kind":       string(err.kind),
		"expression": err.expression,
		"column":     strconv.Itoa(err.column),
	}
}

// NewMalformedExpressionErr constructs a new MalformedExpressionError.
func NewMalformedExpressionErr(kind ExpressionKind, expression string, column int, message string) error {
	return MalformedExpressionError{
		error: varianterrors.NewWithSourceError(
			fmt.Errorf("malformed %s `%s` at column %d: %s", kind, expression, column, message),
			expression,
			uint64(max(column, 0)),
		),
		kind:       kind,
		expression: expression,
		column:     column,
		message:    message,
	}
}
