package lexer

import (
	"container/list"
	"fmt"
)

// PeekableLexer wraps a lexer and provides the ability to peek forward without
// losing state.
type PeekableLexer struct {
	lex        *Lexer     // a reference to the lexer used for tokenization
	readTokens *list.List // tokens already read from the lexer during a lookahead.
}

// NewPeekableLexer returns a new PeekableLexer for the given lexer.
func NewPeekableLexer(lex *Lexer) *PeekableLexer {
	return &PeekableLexer{
		lex:        lex,
		readTokens: list.New(),
	}
}

// NextToken returns the next token found in the lexer.
func (l *PeekableLexer) NextToken() Lexeme {
	if front := l.readTokens.Front(); front != nil {
		return l.readTokens.Remove(front).(Lexeme)
	}

	return l.lex.nextToken()
}

// PeekToken performs lookahead of the given count on the token stream.
func (l *PeekableLexer) PeekToken(count int) Lexeme {
	if count < 1 {
		panic(fmt.Sprintf("Expected count >= 1, received: %v", count))
	}

	for l.readTokens.Len() < count {
		l.readTokens.PushBack(l.lex.nextToken())
	}

	element := l.readTokens.Front()
	for i := 1; i < count; i++ {
		element = element.Next()
	}

	return element.Value.(Lexeme)
}
