package parser

import (
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/token"
)

// ParseProgram parses instructions until EOF. Broken instructions are
// reported and skipped; the returned program holds the rest.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{File: p.ctx.FilePath}
	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseInstruction(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

// parseInstruction leaves curToken on the last token of the instruction.
func (p *Parser) parseInstruction() ast.Statement {
	switch p.curToken.Type {
	case token.IF:
		if stmt := p.parseIfStatement(); stmt != nil {
			return stmt
		}
		return nil
	case token.WHILE:
		if stmt := p.parseWhileStatement(); stmt != nil {
			return stmt
		}
		return nil
	case token.FOR:
		if stmt := p.parseForStatement(); stmt != nil {
			return stmt
		}
		return nil
	case token.LBRACE:
		if stmt := p.parseBlock(); stmt != nil {
			return stmt
		}
		return nil
	case token.SEMICOLON:
		p.addError(diagnostics.NewError(diagnostics.ErrP001, p.curToken, "empty statement"))
		return nil
	}

	stmt := p.parseStatement()
	if stmt == nil {
		p.skipToStatementBoundary()
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		p.skipToStatementBoundary()
		return nil
	}
	return stmt
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.PRINT:
		stmt := &ast.PrintStatement{Token: p.curToken}
		p.nextToken()
		stmt.Values = p.parseSequence(p.curToken)
		if stmt.Values == nil {
			return nil
		}
		return stmt
	case token.BREAK:
		return &ast.BreakStatement{Token: p.curToken}
	case token.CONTINUE:
		return &ast.ContinueStatement{Token: p.curToken}
	case token.RETURN:
		stmt := &ast.ReturnStatement{Token: p.curToken}
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
		if stmt.Value == nil {
			return nil
		}
		return stmt
	case token.IDENT:
		if stmt := p.parseAssignment(); stmt != nil {
			return stmt
		}
		return nil
	}
	p.addError(diagnostics.NewError(
		diagnostics.ErrP001,
		p.curToken,
		"unexpected %s at start of statement",
		describeToken(p.curToken),
	))
	return nil
}

func (p *Parser) parseAssignment() *ast.AssignmentStatement {
	target := &ast.AssignTarget{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
	}
	if p.peekTokenIs(token.LBRACKET) {
		p.nextToken()
		target.Indexes = p.parseIndexes()
		if target.Indexes == nil {
			return nil
		}
	}

	if !assignOperators[p.peekToken.Type] {
		p.addError(diagnostics.NewError(
			diagnostics.ErrP004,
			p.peekToken,
			"expected assignment operator, got %s",
			describeToken(p.peekToken),
		))
		return nil
	}
	p.nextToken()
	stmt := &ast.AssignmentStatement{Token: p.curToken, Target: target, Operator: p.curToken.Lexeme}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curToken}
	if stmt.Condition = p.parseParenCondition(); stmt.Condition == nil {
		return nil
	}
	p.nextToken()
	stmt.Consequence = p.parseBody()
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternative = p.parseBody()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	if stmt.Condition = p.parseParenCondition(); stmt.Condition == nil {
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseBody()
	return stmt
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Variable = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.expectPeek(token.ASSIGN) {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	if stmt.Range = p.parseRange(); stmt.Range == nil {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseBody()
	return stmt
}

// parseRange: start:end or start:end:step
func (p *Parser) parseRange() *ast.RangeExpression {
	start := p.parseExpression(LOWEST)
	if start == nil || !p.expectPeek(token.COLON) {
		return nil
	}
	r := &ast.RangeExpression{Token: p.curToken, Start: start}
	p.nextToken()
	if r.End = p.parseExpression(LOWEST); r.End == nil {
		return nil
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		if r.Step = p.parseExpression(LOWEST); r.Step == nil {
			return nil
		}
	}
	return r
}

// parseParenCondition expects '(' condition ')' after the keyword.
func (p *Parser) parseParenCondition() *ast.ConditionExpression {
	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	cond := p.parseCondition()
	if cond == nil || !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	return cond
}

func (p *Parser) parseCondition() *ast.ConditionExpression {
	left := p.parseExpression(LOWEST)
	if left == nil {
		return nil
	}
	if !comparisonOperators[p.peekToken.Type] {
		p.addError(diagnostics.NewError(
			diagnostics.ErrP001,
			p.peekToken,
			"expected comparison operator, got %s",
			describeToken(p.peekToken),
		))
		return nil
	}
	p.nextToken()
	cond := &ast.ConditionExpression{Token: p.curToken, Left: left, Operator: p.curToken.Lexeme}
	p.nextToken()
	if cond.Right = p.parseExpression(LOWEST); cond.Right == nil {
		return nil
	}
	return cond
}

// parseBody parses a braced block or a single instruction; either way the
// result is a Block.
func (p *Parser) parseBody() *ast.Block {
	if p.curTokenIs(token.LBRACE) {
		return p.parseBlock()
	}
	block := &ast.Block{Token: p.curToken}
	if p.curTokenIs(token.EOF) {
		p.addError(diagnostics.NewError(diagnostics.ErrP001, p.curToken, "expected body, got end of input"))
		return block
	}

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxRecursionDepth {
		p.tooDeep()
		return block
	}

	if stmt := p.parseInstruction(); stmt != nil {
		block.Statements = append(block.Statements, stmt)
	}
	return block
}

func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.curToken}

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxRecursionDepth {
		p.tooDeep()
		return block
	}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseInstruction(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	if p.curTokenIs(token.EOF) && !p.inRecursionRecovery {
		p.addError(diagnostics.NewError(diagnostics.ErrP001, block.Token, "unclosed '{'"))
	}
	return block
}

func (p *Parser) tooDeep() {
	if !p.inRecursionRecovery {
		p.addError(diagnostics.NewError(
			diagnostics.ErrP006,
			p.curToken,
			"program too complex: nesting depth limit exceeded",
		))
		p.inRecursionRecovery = true
	}
	for !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}
