package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/matx/internal/ast"
)

// --- Tree Printer (one node per line, "| " per nesting level) ---

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(label string) {
	p.buf.WriteString(strings.Repeat("| ", p.indent))
	p.buf.WriteString(label)
	p.buf.WriteByte('\n')
}

// child prints node one level deeper.
func (p *TreePrinter) child(node ast.Node) {
	p.indent++
	node.Accept(p)
	p.indent--
}

// body prints the statements of a loop or branch body one level deeper.
func (p *TreePrinter) body(block *ast.Block) {
	if block == nil {
		return
	}
	p.indent++
	for _, stmt := range block.Statements {
		stmt.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		stmt.Accept(p)
	}
}

func (p *TreePrinter) VisitBlock(n *ast.Block) {
	p.line("BLOCK")
	p.body(n)
}

func (p *TreePrinter) VisitAssignmentStatement(n *ast.AssignmentStatement) {
	p.line(n.Operator)
	p.child(n.Target)
	p.child(n.Value)
}

func (p *TreePrinter) VisitAssignTarget(n *ast.AssignTarget) {
	if !n.IsIndexed() {
		n.Name.Accept(p)
		return
	}
	n.Access().Accept(p)
}

func (p *TreePrinter) VisitPrintStatement(n *ast.PrintStatement) {
	p.line("PRINT")
	for _, v := range n.Values.Elements {
		p.child(v)
	}
}

func (p *TreePrinter) VisitIfStatement(n *ast.IfStatement) {
	p.line("If")
	p.child(n.Condition)
	p.line("Then")
	p.body(n.Consequence)
	if n.Alternative != nil {
		p.line("Else")
		p.body(n.Alternative)
	}
}

func (p *TreePrinter) VisitWhileStatement(n *ast.WhileStatement) {
	p.line("While")
	p.child(n.Condition)
	p.body(n.Body)
}

func (p *TreePrinter) VisitForStatement(n *ast.ForStatement) {
	p.line("For")
	p.child(n.Variable)
	p.child(n.Range)
	p.body(n.Body)
}

func (p *TreePrinter) VisitBreakStatement(n *ast.BreakStatement)       { p.line("BREAK") }
func (p *TreePrinter) VisitContinueStatement(n *ast.ContinueStatement) { p.line("CONTINUE") }

func (p *TreePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.line("RETURN")
	p.child(n.Value)
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) { p.line(n.Value) }

func (p *TreePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.line(strconv.FormatInt(n.Value, 10))
}

func (p *TreePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	p.line(formatFloat(n))
}

func (p *TreePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.line(strconv.Quote(n.Value))
}

func (p *TreePrinter) VisitRangeExpression(n *ast.RangeExpression) {
	p.line("Range")
	p.child(n.Start)
	p.child(n.End)
	if n.Step != nil {
		p.child(n.Step)
	}
}

func (p *TreePrinter) VisitConditionExpression(n *ast.ConditionExpression) {
	p.line(n.Operator)
	p.child(n.Left)
	p.child(n.Right)
}

func (p *TreePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.line(n.Operator)
	p.child(n.Left)
	p.child(n.Right)
}

func (p *TreePrinter) VisitTranspositionExpression(n *ast.TranspositionExpression) {
	p.line("TRANSPOSE")
	p.child(n.Operand)
}

func (p *TreePrinter) VisitNegationExpression(n *ast.NegationExpression) {
	p.line("-")
	p.child(n.Operand)
}

func (p *TreePrinter) VisitFunctionCall(n *ast.FunctionCall) {
	p.line(n.Function)
	p.child(n.Argument)
}

func (p *TreePrinter) VisitAccessExpression(n *ast.AccessExpression) {
	p.line("REF")
	p.child(n.Name)
	for _, idx := range n.Indexes.Elements {
		p.child(idx)
	}
}

func (p *TreePrinter) VisitMatrixLiteral(n *ast.MatrixLiteral) {
	if len(n.Rows) == 1 {
		n.Rows[0].Accept(p)
		return
	}
	p.line("MATRIX")
	for _, row := range n.Rows {
		p.child(row)
	}
}

func (p *TreePrinter) VisitSequenceLiteral(n *ast.SequenceLiteral) {
	p.line("VECTOR")
	for _, e := range n.Elements {
		p.child(e)
	}
}

// formatFloat prefers the source spelling of the literal.
func formatFloat(n *ast.FloatLiteral) string {
	if n.Token.Lexeme != "" {
		return n.Token.Lexeme
	}
	s := strconv.FormatFloat(n.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}
