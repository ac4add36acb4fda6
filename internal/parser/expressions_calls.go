package parser

import (
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/token"
)

// parseFunctionCall parses zeros(n), ones(n) and eye(n).
func (p *Parser) parseFunctionCall() ast.Expression {
	call := &ast.FunctionCall{Token: p.curToken, Function: p.curToken.Lexeme}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	if call.Argument = p.parseExpression(LOWEST); call.Argument == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return call
}
