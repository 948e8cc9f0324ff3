// Package parser parses set-operation expressions of the form
//
//	[name=]operator[operand(:operand)*]
//
// where each operand is a dataset or operation name optionally followed by a
// bracketed, comma-separated list of sample ids.
package parser

import (
	"github.com/variantcompare/variantcompare/pkg/setop"
	"github.com/variantcompare/variantcompare/pkg/setopdsl/lexer"
)

// Parse parses a single set-operation expression. An expression without a
// `name=` prefix yields an unnamed operation. On failure the returned error is
// a setop.MalformedExpressionError and no operation is returned.
func Parse(expression string) (*setop.SetOperation, error) {
	p := buildParser(lexer.Lex(expression), expression)
	op := p.consumeExpression()
	if p.failed() {
		return nil, p.err
	}
	return op, nil
}

// ValidateSyntax checks that the expression is well formed, without building
// a catalog or resolving any reference.
func ValidateSyntax(expression string) error {
	_, err := Parse(expression)
	return err
}

// consumeExpression consumes a full expression followed by the end of input.
//
// ```out=u[a[s1,s2]:b]```
func (p *sourceParser) consumeExpression() *setop.SetOperation {
	// Start at the first token.
	p.consumeToken()

	var id setop.Identifier
	if p.isToken(lexer.TokenTypeIdentifier) && p.lex.PeekToken(1).Kind == lexer.TokenTypeEquals {
		id = setop.Identifier(p.currentToken.Value)
		p.consumeToken()
		p.consumeToken()
	}

	operator, ok := p.consumeOperator()
	if !ok {
		return nil
	}

	if _, ok := p.consume(lexer.TokenTypeLeftBracket, "`[` after the operator"); !ok {
		return nil
	}

	var operands []setop.Operand
	for {
		operand, ok := p.consumeOperand()
		if !ok {
			return nil
		}
		operands = append(operands, operand)

		if _, ok := p.tryConsume(lexer.TokenTypeColon); !ok {
			break
		}
	}

	if _, ok := p.consume(lexer.TokenTypeRightBracket, "`:` or `]`"); !ok {
		return nil
	}

	if !p.isToken(lexer.TokenTypeEOF) {
		p.emitError("expected end of expression, found %s", p.describeCurrent())
		return nil
	}

	return setop.NewSetOperation(id, operator, operands...)
}

// consumeOperator consumes the single-letter operator code.
func (p *sourceParser) consumeOperator() (setop.OperatorKind, bool) {
	if !p.isToken(lexer.TokenTypeIdentifier) {
		p.emitError("expected an operator, found %s", p.describeCurrent())
		return 0, false
	}

	operator, ok := setop.OperatorFromCode(p.currentToken.Value)
	if !ok {
		p.emitError("unknown operator `%s`: expected one of u, i, c", p.currentToken.Value)
		return 0, false
	}

	p.consumeToken()
	return operator, true
}

// consumeOperand consumes an operand name and its optional sample list.
//
// ```name[s1,s2]```
func (p *sourceParser) consumeOperand() (setop.Operand, bool) {
	name, ok := p.consumeIdentifier("operand name")
	if !ok {
		return setop.Operand{}, false
	}

	if _, ok := p.tryConsume(lexer.TokenTypeLeftBracket); !ok {
		return setop.Operand{ID: setop.Identifier(name), Samples: setop.AllSamples()}, true
	}

	var samples []string
	for {
		sample, ok := p.consumeIdentifier("sample id")
		if !ok {
			return setop.Operand{}, false
		}
		samples = append(samples, sample)

		if _, ok := p.tryConsume(lexer.TokenTypeComma); !ok {
			break
		}
	}

	if _, ok := p.consume(lexer.TokenTypeRightBracket, "`,` or `]`"); !ok {
		return setop.Operand{}, false
	}

	return setop.Operand{ID: setop.Identifier(name), Samples: setop.Samples(samples...)}, true
}
