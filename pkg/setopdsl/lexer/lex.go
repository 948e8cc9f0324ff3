// Package lexer tokenizes set-operation expressions.
package lexer

import (
	"fmt"
	"unicode/utf8"
)

// EOFRUNE is returned by next when the end of the input has been reached.
const EOFRUNE = -1

// Lexeme represents a token returned from scanning the contents of an
// expression.
type Lexeme struct {
	Kind     TokenType // The type of this lexeme.
	Position int       // The starting byte position of this token in the input string.
	Value    string    // The textual value of this token.
}

// stateFn represents the state of the scanner as a function that returns the
// next state.
type stateFn func(*Lexer) stateFn

// Lexer holds the state of the scanner. Tokens are produced on demand by
// running state functions until at least one token is queued.
type Lexer struct {
	input  string   // the string being scanned
	state  stateFn  // the next lexing function to enter
	pos    int      // current position in the input
	start  int      // start position of this token
	width  int      // width of last rune read
	queued []Lexeme // tokens emitted but not yet returned
	done   bool     // whether EOF or an error has been emitted
}

// createLexer creates a new scanner for the input string.
func createLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		state: lexSource,
	}
}

// nextToken returns the next token from the input. Once EOF or an error has
// been returned, every later call returns EOF.
func (l *Lexer) nextToken() Lexeme {
	for len(l.queued) == 0 {
		if l.state == nil || l.done {
			return Lexeme{Kind: TokenTypeEOF, Position: len(l.input)}
		}
		l.state = l.state(l)
	}

	token := l.queued[0]
	l.queued = l.queued[1:]
	return token
}

// next returns the next rune in the input.
func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return EOFRUNE
	}

	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	l.pos -= l.width
}

// value returns the current value of the token in the lexer.
func (l *Lexer) value() string {
	return l.input[l.start:l.pos]
}

// emit queues a token of the given kind covering the current value.
func (l *Lexer) emit(t TokenType) {
	l.queued = append(l.queued, Lexeme{
		Kind:     t,
		Position: l.start,
		Value:    l.value(),
	})
	l.start = l.pos

	if t == TokenTypeEOF {
		l.done = true
	}
}

// errorf queues an error token positioned at the offending rune and
// terminates the scan.
func (l *Lexer) errorf(format string, args ...interface{}) stateFn {
	l.queued = append(l.queued, Lexeme{
		Kind:     TokenTypeError,
		Position: l.pos - l.width,
		Value:    fmt.Sprintf(format, args...),
	})
	l.done = true
	return nil
}
