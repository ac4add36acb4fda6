package ast

import (
	"github.com/funvibe/matx/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	} else {
		return ""
	}
}

// Block is a nested statement list that opens its own scope.
// Loop and branch bodies are always blocks, braced or not.
type Block struct {
	Token      token.Token // '{' or the first token of a single-instruction body
	Statements []Statement
}

func (b *Block) Accept(v Visitor)     { v.VisitBlock(b) }
func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// AssignmentStatement: target = value, or target op= value.
type AssignmentStatement struct {
	Token    token.Token // the assignment operator
	Target   *AssignTarget
	Operator string // "=", "+=", "-=", "*=", "/="
	Value    Expression
}

func (as *AssignmentStatement) Accept(v Visitor)     { v.VisitAssignmentStatement(as) }
func (as *AssignmentStatement) statementNode()       {}
func (as *AssignmentStatement) TokenLiteral() string { return as.Token.Lexeme }
func (as *AssignmentStatement) GetToken() token.Token {
	if as == nil {
		return token.Token{}
	}
	return as.Token
}

// IsCompound reports whether the operator combines with the current value.
func (as *AssignmentStatement) IsCompound() bool {
	return as.Operator != "="
}

// BinaryOperator returns the arithmetic operator of a compound assignment.
func (as *AssignmentStatement) BinaryOperator() string {
	if !as.IsCompound() {
		return ""
	}
	return as.Operator[:len(as.Operator)-1]
}

// AssignTarget is either a plain name or an indexed element (Indexes != nil).
type AssignTarget struct {
	Token   token.Token
	Name    *Identifier
	Indexes *SequenceLiteral
}

func (at *AssignTarget) Accept(v Visitor)     { v.VisitAssignTarget(at) }
func (at *AssignTarget) TokenLiteral() string { return at.Token.Lexeme }
func (at *AssignTarget) GetToken() token.Token {
	if at == nil {
		return token.Token{}
	}
	return at.Token
}

// IsIndexed reports whether the target is an element of a vector or matrix.
func (at *AssignTarget) IsIndexed() bool {
	return at.Indexes != nil
}

// Access returns the indexed target as an access expression.
func (at *AssignTarget) Access() *AccessExpression {
	if !at.IsIndexed() {
		return nil
	}
	return &AccessExpression{Token: at.Token, Name: at.Name, Indexes: at.Indexes}
}

// PrintStatement: print a, b, c
type PrintStatement struct {
	Token  token.Token // The 'print' token
	Values *SequenceLiteral
}

func (ps *PrintStatement) Accept(v Visitor)     { v.VisitPrintStatement(ps) }
func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token {
	if ps == nil {
		return token.Token{}
	}
	return ps.Token
}

// IfStatement: if (cond) body [else body]
type IfStatement struct {
	Token       token.Token // The 'if' token
	Condition   *ConditionExpression
	Consequence *Block
	Alternative *Block // nil without else
}

func (is *IfStatement) Accept(v Visitor)     { v.VisitIfStatement(is) }
func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// WhileStatement: while (cond) body
type WhileStatement struct {
	Token     token.Token // The 'while' token
	Condition *ConditionExpression
	Body      *Block
}

func (ws *WhileStatement) Accept(v Visitor)     { v.VisitWhileStatement(ws) }
func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token {
	if ws == nil {
		return token.Token{}
	}
	return ws.Token
}

// ForStatement: for i = start:end[:step] body
type ForStatement struct {
	Token    token.Token // The 'for' token
	Variable *Identifier
	Range    *RangeExpression
	Body     *Block
}

func (fs *ForStatement) Accept(v Visitor)     { v.VisitForStatement(fs) }
func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// BreakStatement represents a 'break' statement.
type BreakStatement struct {
	Token token.Token // The 'break' token
}

func (bs *BreakStatement) Accept(v Visitor)     { v.VisitBreakStatement(bs) }
func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// ContinueStatement represents a 'continue' statement.
type ContinueStatement struct {
	Token token.Token // The 'continue' token
}

func (cs *ContinueStatement) Accept(v Visitor)     { v.VisitContinueStatement(cs) }
func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Lexeme }
func (cs *ContinueStatement) GetToken() token.Token {
	if cs == nil {
		return token.Token{}
	}
	return cs.Token
}

// ReturnStatement represents a 'return' statement.
type ReturnStatement struct {
	Token token.Token // The 'return' token
	Value Expression
}

func (rs *ReturnStatement) Accept(v Visitor)     { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}
