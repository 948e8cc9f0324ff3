//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenType

package lexer

import (
	"github.com/variantcompare/variantcompare/pkg/setop"
)

// Lex creates a new scanner for the input string.
func Lex(input string) *Lexer {
	return createLexer(input)
}

// TokenType identifies the type of lexer lexemes.
type TokenType int

const (
	TokenTypeError TokenType = iota // error occurred; value is text of error

	TokenTypeEOF
	TokenTypeIdentifier // out1

	TokenTypeEquals       // =
	TokenTypeLeftBracket  // [
	TokenTypeRightBracket // ]
	TokenTypeColon        // :
	TokenTypeComma        // ,
)

// lexSource scans until EOFRUNE
func lexSource(l *Lexer) stateFn {
	for {
		switch r := l.next(); {
		case r == EOFRUNE:
			l.emit(TokenTypeEOF)
			return nil

		case r == '=':
			l.emit(TokenTypeEquals)

		case r == '[':
			l.emit(TokenTypeLeftBracket)

		case r == ']':
			l.emit(TokenTypeRightBracket)

		case r == ':':
			l.emit(TokenTypeColon)

		case r == ',':
			l.emit(TokenTypeComma)

		case setop.IsIdentifierRune(r):
			l.backup()
			return lexIdentifier

		case isSpace(r):
			return l.errorf("whitespace is not allowed in an expression")

		default:
			return l.errorf("unrecognized character at this location: %#U", r)
		}
	}
}

// lexIdentifier scans a run of letters, digits and underscores.
func lexIdentifier(l *Lexer) stateFn {
	for setop.IsIdentifierRune(l.peek()) {
		l.next()
	}

	l.emit(TokenTypeIdentifier)
	return lexSource
}

// isSpace reports whether r is a whitespace character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
