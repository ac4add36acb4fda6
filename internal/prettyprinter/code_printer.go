package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/matx/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"+":  1,
	"-":  1,
	".+": 1,
	".-": 1,
	"*":  2,
	"/":  2,
	".*": 2,
	"./": 2,
}

const (
	negationPrecedence      = 3
	transpositionPrecedence = 4
	atomPrecedence          = 5
)

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	p.write(strings.Repeat("    ", p.indent))
}

func (p *CodePrinter) writeln() {
	p.buf.WriteByte('\n')
}

func precedenceOf(expr ast.Expression) int {
	switch e := expr.(type) {
	case *ast.BinaryExpression:
		return operatorPrecedence[e.Operator]
	case *ast.NegationExpression:
		return negationPrecedence
	case *ast.TranspositionExpression:
		return transpositionPrecedence
	}
	return atomPrecedence
}

// printExpr parenthesizes expr when it binds looser than its parent, or
// as tightly on the right of a left-associative operator.
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	prec := precedenceOf(expr)
	needParens := prec < parentPrec || (isRight && prec == parentPrec && prec < negationPrecedence)
	if needParens {
		p.write("(")
	}
	expr.Accept(p)
	if needParens {
		p.write(")")
	}
}

// statement prints one instruction on its own line.
func (p *CodePrinter) statement(stmt ast.Statement) {
	p.writeIndent()
	stmt.Accept(p)
	switch stmt.(type) {
	case *ast.IfStatement, *ast.WhileStatement, *ast.ForStatement, *ast.Block:
	default:
		p.write(";")
	}
	p.writeln()
}

func (p *CodePrinter) braced(block *ast.Block) {
	p.write("{")
	p.writeln()
	p.indent++
	if block != nil {
		for _, stmt := range block.Statements {
			p.statement(stmt)
		}
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		p.statement(stmt)
	}
}

func (p *CodePrinter) VisitBlock(n *ast.Block) {
	p.braced(n)
}

func (p *CodePrinter) VisitAssignmentStatement(n *ast.AssignmentStatement) {
	n.Target.Accept(p)
	p.write(" " + n.Operator + " ")
	p.printExpr(n.Value, 0, false)
}

func (p *CodePrinter) VisitAssignTarget(n *ast.AssignTarget) {
	if n.IsIndexed() {
		n.Access().Accept(p)
		return
	}
	n.Name.Accept(p)
}

func (p *CodePrinter) VisitPrintStatement(n *ast.PrintStatement) {
	p.write("print ")
	p.list(n.Values.Elements)
}

func (p *CodePrinter) VisitIfStatement(n *ast.IfStatement) {
	p.write("if (")
	n.Condition.Accept(p)
	p.write(") ")
	p.braced(n.Consequence)
	if n.Alternative != nil {
		p.write(" else ")
		p.braced(n.Alternative)
	}
}

func (p *CodePrinter) VisitWhileStatement(n *ast.WhileStatement) {
	p.write("while (")
	n.Condition.Accept(p)
	p.write(") ")
	p.braced(n.Body)
}

func (p *CodePrinter) VisitForStatement(n *ast.ForStatement) {
	p.write("for " + n.Variable.Value + " = ")
	n.Range.Accept(p)
	p.write(" ")
	p.braced(n.Body)
}

func (p *CodePrinter) VisitBreakStatement(n *ast.BreakStatement)       { p.write("break") }
func (p *CodePrinter) VisitContinueStatement(n *ast.ContinueStatement) { p.write("continue") }

func (p *CodePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.write("return ")
	p.printExpr(n.Value, 0, false)
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) { p.write(n.Value) }

func (p *CodePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.write(strconv.FormatInt(n.Value, 10))
}

func (p *CodePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	p.write(formatFloat(n))
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write(`"` + n.Value + `"`)
}

func (p *CodePrinter) VisitRangeExpression(n *ast.RangeExpression) {
	p.printExpr(n.Start, 0, false)
	p.write(":")
	p.printExpr(n.End, 0, false)
	if n.Step != nil {
		p.write(":")
		p.printExpr(n.Step, 0, false)
	}
}

func (p *CodePrinter) VisitConditionExpression(n *ast.ConditionExpression) {
	p.printExpr(n.Left, 0, false)
	p.write(" " + n.Operator + " ")
	p.printExpr(n.Right, 0, false)
}

func (p *CodePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	prec := operatorPrecedence[n.Operator]
	p.printExpr(n.Left, prec, false)
	p.write(" " + n.Operator + " ")
	p.printExpr(n.Right, prec, true)
}

func (p *CodePrinter) VisitTranspositionExpression(n *ast.TranspositionExpression) {
	p.printExpr(n.Operand, transpositionPrecedence, false)
	p.write("'")
}

func (p *CodePrinter) VisitNegationExpression(n *ast.NegationExpression) {
	p.write("-")
	p.printExpr(n.Operand, negationPrecedence, false)
}

func (p *CodePrinter) VisitFunctionCall(n *ast.FunctionCall) {
	p.write(n.Function + "(")
	p.printExpr(n.Argument, 0, false)
	p.write(")")
}

func (p *CodePrinter) VisitAccessExpression(n *ast.AccessExpression) {
	p.write(n.Name.Value + "[")
	p.list(n.Indexes.Elements)
	p.write("]")
}

func (p *CodePrinter) VisitMatrixLiteral(n *ast.MatrixLiteral) {
	p.write("[")
	for i, row := range n.Rows {
		if i > 0 {
			p.write("; ")
		}
		p.list(row.Elements)
	}
	p.write("]")
}

func (p *CodePrinter) VisitSequenceLiteral(n *ast.SequenceLiteral) {
	p.list(n.Elements)
}

func (p *CodePrinter) list(exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(e, 0, false)
	}
}
