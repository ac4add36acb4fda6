package evaluator

import (
	"fmt"

	"github.com/funvibe/matx/internal/ast"
)

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// newErrorAt reports a fault at the position of node.
func newErrorAt(node ast.Node, format string, a ...interface{}) *Error {
	err := newError(format, a...)
	if tp, ok := node.(ast.TokenProvider); ok {
		tok := tp.GetToken()
		err.Line, err.Column = tok.Line, tok.Column
	}
	return err
}

// withPosition fills in the position of a fault raised without one.
func withPosition(obj Object, node ast.Node) Object {
	if err, ok := obj.(*Error); ok && err.Line == 0 {
		if tp, ok := node.(ast.TokenProvider); ok {
			tok := tp.GetToken()
			err.Line, err.Column = tok.Line, tok.Column
		}
	}
	return obj
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

// isSignal reports values that must stop a statement sequence: faults,
// returns, breaks and continues.
func isSignal(obj Object) bool {
	if obj == nil {
		return false
	}
	switch obj.Type() {
	case ERROR_OBJ, RETURN_VALUE_OBJ, BREAK_SIGNAL_OBJ, CONTINUE_SIGNAL_OBJ:
		return true
	}
	return false
}

func isTruthy(obj Object) bool {
	switch o := obj.(type) {
	case *Integer:
		return o.Value != 0
	case *Float:
		return o.Value != 0
	}
	return false
}

func boolToInteger(b bool) *Integer {
	if b {
		return &Integer{Value: 1}
	}
	return &Integer{Value: 0}
}

// copyObject deep-copies vectors and matrices so that bindings never share
// storage. Scalars are immutable and returned as is.
func copyObject(obj Object) Object {
	switch o := obj.(type) {
	case *Vector:
		return copyVector(o)
	case *Matrix:
		rows := make([]*Vector, len(o.Rows))
		for i, row := range o.Rows {
			rows[i] = copyVector(row)
		}
		return &Matrix{Rows: rows}
	}
	return obj
}

func copyVector(v *Vector) *Vector {
	elems := make([]Object, len(v.Elements))
	for i, el := range v.Elements {
		elems[i] = copyObject(el)
	}
	return &Vector{Elements: elems}
}

func (e *Evaluator) evalElements(exprs []ast.Expression) ([]Object, Object) {
	out := make([]Object, len(exprs))
	for i, expr := range exprs {
		val := e.Eval(expr)
		if isError(val) {
			return nil, val
		}
		out[i] = val
	}
	return out, nil
}
