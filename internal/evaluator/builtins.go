package evaluator

import (
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
)

// builtins maps a constructor name to the value of element (row, col).
var builtins = map[string]func(row, col int) int64{
	config.ZerosFuncName: func(int, int) int64 { return 0 },
	config.OnesFuncName:  func(int, int) int64 { return 1 },
	config.EyeFuncName: func(row, col int) int64 {
		if row == col {
			return 1
		}
		return 0
	},
}

func (e *Evaluator) evalFunctionCall(node *ast.FunctionCall) Object {
	fill, ok := builtins[node.Function]
	if !ok {
		return newErrorAt(node, "unknown function %s", node.Function)
	}
	arg := e.Eval(node.Argument)
	if isError(arg) {
		return arg
	}
	n, ok := arg.(*Integer)
	if !ok {
		return newErrorAt(node.Argument, "function %s initialize with wrong parameter %s", node.Function, arg.Type())
	}
	if n.Value < 0 {
		return newErrorAt(node.Argument, "function %s called with negative size %d", node.Function, n.Value)
	}
	if n.Value > int64(e.MaxMatrixSize) {
		return newErrorAt(node.Argument, "function %s called with size %d above limit %d", node.Function, n.Value, e.MaxMatrixSize)
	}
	return squareMatrix(int(n.Value), fill)
}

func squareMatrix(n int, fill func(row, col int) int64) *Matrix {
	rows := make([]*Vector, n)
	for r := range rows {
		elems := make([]Object, n)
		for c := range elems {
			elems[c] = &Integer{Value: fill(r, c)}
		}
		rows[r] = &Vector{Elements: elems}
	}
	return &Matrix{Rows: rows}
}
