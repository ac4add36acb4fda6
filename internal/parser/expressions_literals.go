package parser

import (
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/token"
)

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(int64)
	if !ok {
		p.addError(diagnostics.NewError(diagnostics.ErrP003, p.curToken, "could not parse %q as integer", p.curToken.Lexeme))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(float64)
	if !ok {
		p.addError(diagnostics.NewError(diagnostics.ErrP003, p.curToken, "could not parse %q as float", p.curToken.Lexeme))
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	value, _ := p.curToken.Literal.(string)
	return &ast.StringLiteral{Token: p.curToken, Value: value}
}

// parseMatrixLiteral: '[' row (';' row)* ']'. "[]" is a single empty row.
func (p *Parser) parseMatrixLiteral() ast.Expression {
	ml := &ast.MatrixLiteral{Token: p.curToken}
	if p.peekTokenIs(token.RBRACKET) {
		ml.Rows = []*ast.SequenceLiteral{{Token: p.curToken}}
		p.nextToken()
		return ml
	}

	p.nextToken()
	row := p.parseSequence(p.curToken)
	if row == nil {
		return nil
	}
	ml.Rows = append(ml.Rows, row)
	for p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		p.nextToken()
		if row = p.parseSequence(p.curToken); row == nil {
			return nil
		}
		ml.Rows = append(ml.Rows, row)
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return ml
}

// parseSequence parses expr (',' expr)* starting at curToken.
func (p *Parser) parseSequence(tok token.Token) *ast.SequenceLiteral {
	seq := &ast.SequenceLiteral{Token: tok}
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	seq.Elements = append(seq.Elements, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		elem := p.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		seq.Elements = append(seq.Elements, elem)
	}
	return seq
}
