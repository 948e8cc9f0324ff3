package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/variantcompare/variantcompare/pkg/setop"
	"github.com/variantcompare/variantcompare/pkg/setopdsl/lexer"
)

// sourceParser holds the state of the parser.
type sourceParser struct {
	input         string               // the expression being parsed; used for error reports
	lex           *lexer.PeekableLexer // a reference to the lexer used for tokenization
	currentToken  lexer.Lexeme         // the current token
	previousToken lexer.Lexeme         // the previous token
	err           error                // the first error found, if any
}

// buildParser returns a new sourceParser instance.
func buildParser(lx *lexer.Lexer, input string) *sourceParser {
	return &sourceParser{
		input:         input,
		lex:           lexer.NewPeekableLexer(lx),
		currentToken:  lexer.Lexeme{Kind: lexer.TokenTypeEOF},
		previousToken: lexer.Lexeme{Kind: lexer.TokenTypeEOF},
	}
}

// consumeToken advances the lexer forward, returning the next token.
func (p *sourceParser) consumeToken() lexer.Lexeme {
	p.previousToken = p.currentToken
	p.currentToken = p.lex.NextToken()
	return p.currentToken
}

// isToken returns true if the current token matches one of the types given.
func (p *sourceParser) isToken(types ...lexer.TokenType) bool {
	for _, kind := range types {
		if p.currentToken.Kind == kind {
			return true
		}
	}

	return false
}

// failed returns true once an error has been recorded.
func (p *sourceParser) failed() bool {
	return p.err != nil
}

// emitError records an error positioned at the current token. Only the first
// error is kept; an error token from the lexer takes precedence over the
// parser's own message.
func (p *sourceParser) emitError(format string, args ...interface{}) {
	if p.failed() {
		return
	}

	message := fmt.Sprintf(format, args...)
	if p.isToken(lexer.TokenTypeError) {
		message = p.currentToken.Value
	}

	p.err = setop.NewMalformedExpressionErr(setop.KindSetOperation, p.input, p.column(p.currentToken), message)
}

// column converts the byte position of the token into a 1-indexed rune column.
func (p *sourceParser) column(token lexer.Lexeme) int {
	position := min(max(token.Position, 0), len(p.input))
	return utf8.RuneCountInString(p.input[:position]) + 1
}

// describeCurrent describes the current token for error messages.
func (p *sourceParser) describeCurrent() string {
	if p.isToken(lexer.TokenTypeEOF) {
		return "end of input"
	}
	return fmt.Sprintf("`%s`", p.currentToken.Value)
}

// consume performs consumption of the next token if it matches the given type
// and returns it. If the type does not match, records an error naming what was
// expected.
func (p *sourceParser) consume(kind lexer.TokenType, expected string) (lexer.Lexeme, bool) {
	token, ok := p.tryConsume(kind)
	if !ok {
		p.emitError("expected %s, found %s", expected, p.describeCurrent())
	}
	return token, ok
}

// tryConsume performs consumption of the next token if it matches any of the
// given types and returns it.
func (p *sourceParser) tryConsume(types ...lexer.TokenType) (lexer.Lexeme, bool) {
	if p.isToken(types...) {
		token := p.currentToken
		p.consumeToken()
		return token, true
	}

	return lexer.Lexeme{Kind: lexer.TokenTypeError}, false
}

// consumeIdentifier consumes an expected identifier token or records an error.
func (p *sourceParser) consumeIdentifier(expected string) (string, bool) {
	token, ok := p.consume(lexer.TokenTypeIdentifier, expected)
	return token.Value, ok
}
