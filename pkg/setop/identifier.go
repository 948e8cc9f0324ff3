package setop

import (
	"fmt"
	"unicode"
)

// Identifier names an input dataset or a set operation. Inputs and operations
// share a single namespace.
type Identifier string

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}

// DefaultIdentifier synthesizes the identifier for the index-th unnamed entity
// of a kind with the given prefix.
func DefaultIdentifier(prefix string, index int) Identifier {
	return Identifier(fmt.Sprintf("%s%d", prefix, index))
}

// IsIdentifierRune reports whether r may appear in an identifier or sample id:
// letters, digits and underscore.
func IsIdentifierRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsValidIdentifier reports whether value is a non-empty run of identifier runes.
func IsValidIdentifier(value string) bool {
	if value == "" {
		return false
	}

	for _, r := range value {
		if !IsIdentifierRune(r) {
			return false
		}
	}
	return true
}
