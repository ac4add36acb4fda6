package parser

import (
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/token"
)

func (p *Parser) parseIdentifierOrAccess() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.peekTokenIs(token.LBRACKET) {
		return ident
	}
	p.nextToken()
	indexes := p.parseIndexes()
	if indexes == nil {
		return nil
	}
	return &ast.AccessExpression{Token: ident.Token, Name: ident, Indexes: indexes}
}

// parseIndexes parses '[' sequence ']' with curToken on '['.
func (p *Parser) parseIndexes() *ast.SequenceLiteral {
	tok := p.curToken
	p.nextToken()
	seq := p.parseSequence(tok)
	if seq == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return seq
}
