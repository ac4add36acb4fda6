package ast

import (
	"github.com/funvibe/matx/internal/token"
)

type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) Accept(v Visitor)     { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) Accept(v Visitor)     { v.VisitFloatLiteral(fl) }
func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token {
	if fl == nil {
		return token.Token{}
	}
	return fl.Token
}

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)     { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}

// RangeExpression: start:end or start:end:step. Step is nil when omitted.
type RangeExpression struct {
	Token token.Token // The first ':' token
	Start Expression
	End   Expression
	Step  Expression
}

func (re *RangeExpression) Accept(v Visitor)     { v.VisitRangeExpression(re) }
func (re *RangeExpression) expressionNode()      {}
func (re *RangeExpression) TokenLiteral() string { return re.Token.Lexeme }
func (re *RangeExpression) GetToken() token.Token {
	if re == nil {
		return token.Token{}
	}
	return re.Token
}

// ConditionExpression is a comparison: == != < > <= >=
type ConditionExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ce *ConditionExpression) Accept(v Visitor)     { v.VisitConditionExpression(ce) }
func (ce *ConditionExpression) expressionNode()      {}
func (ce *ConditionExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *ConditionExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// BinaryExpression covers + - * / and the element-wise .+ .- .* ./
type BinaryExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) Accept(v Visitor)     { v.VisitBinaryExpression(be) }
func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Lexeme }
func (be *BinaryExpression) GetToken() token.Token {
	if be == nil {
		return token.Token{}
	}
	return be.Token
}

// IsElementWise reports whether the operator is one of .+ .- .* ./
func (be *BinaryExpression) IsElementWise() bool {
	return len(be.Operator) == 2 && be.Operator[0] == '.'
}

// TranspositionExpression: operand'
type TranspositionExpression struct {
	Token   token.Token // The apostrophe token
	Operand Expression
}

func (te *TranspositionExpression) Accept(v Visitor)     { v.VisitTranspositionExpression(te) }
func (te *TranspositionExpression) expressionNode()      {}
func (te *TranspositionExpression) TokenLiteral() string { return te.Token.Lexeme }
func (te *TranspositionExpression) GetToken() token.Token {
	if te == nil {
		return token.Token{}
	}
	return te.Token
}

// NegationExpression: -operand
type NegationExpression struct {
	Token   token.Token // The '-' token
	Operand Expression
}

func (ne *NegationExpression) Accept(v Visitor)     { v.VisitNegationExpression(ne) }
func (ne *NegationExpression) expressionNode()      {}
func (ne *NegationExpression) TokenLiteral() string { return ne.Token.Lexeme }
func (ne *NegationExpression) GetToken() token.Token {
	if ne == nil {
		return token.Token{}
	}
	return ne.Token
}

// FunctionCall is a call of one of the matrix constructors zeros, ones, eye.
type FunctionCall struct {
	Token    token.Token // The function keyword token
	Function string
	Argument Expression
}

func (fc *FunctionCall) Accept(v Visitor)     { v.VisitFunctionCall(fc) }
func (fc *FunctionCall) expressionNode()      {}
func (fc *FunctionCall) TokenLiteral() string { return fc.Token.Lexeme }
func (fc *FunctionCall) GetToken() token.Token {
	if fc == nil {
		return token.Token{}
	}
	return fc.Token
}

// AccessExpression: name[i] or name[row, col]
type AccessExpression struct {
	Token   token.Token // The identifier token
	Name    *Identifier
	Indexes *SequenceLiteral
}

func (ae *AccessExpression) Accept(v Visitor)     { v.VisitAccessExpression(ae) }
func (ae *AccessExpression) expressionNode()      {}
func (ae *AccessExpression) TokenLiteral() string { return ae.Token.Lexeme }
func (ae *AccessExpression) GetToken() token.Token {
	if ae == nil {
		return token.Token{}
	}
	return ae.Token
}

// MatrixLiteral: [1, 2; 3, 4]. Each row is a sequence literal.
type MatrixLiteral struct {
	Token token.Token // The '[' token
	Rows  []*SequenceLiteral
}

func (ml *MatrixLiteral) Accept(v Visitor)     { v.VisitMatrixLiteral(ml) }
func (ml *MatrixLiteral) expressionNode()      {}
func (ml *MatrixLiteral) TokenLiteral() string { return ml.Token.Lexeme }
func (ml *MatrixLiteral) GetToken() token.Token {
	if ml == nil {
		return token.Token{}
	}
	return ml.Token
}

// SequenceLiteral is a comma-separated expression list: a vector literal
// row, an index list or the arguments of print.
type SequenceLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (sl *SequenceLiteral) Accept(v Visitor)     { v.VisitSequenceLiteral(sl) }
func (sl *SequenceLiteral) expressionNode()      {}
func (sl *SequenceLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *SequenceLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}
