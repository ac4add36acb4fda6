package evaluator

import (
	"github.com/funvibe/matx/internal/ast"
)

func (e *Evaluator) evalAccess(node *ast.AccessExpression) Object {
	base := e.evalIdentifier(node.Name)
	if isError(base) {
		return base
	}
	indexes, err := e.evalIndexes(node.Indexes)
	if err != nil {
		return err
	}

	current := base
	for i, idx := range indexes {
		current = subscript(current, idx)
		if isError(current) {
			return withPosition(current, node.Indexes.Elements[i])
		}
	}
	return current
}

// evalIndexedAssignment writes value into the element named by the target
// and returns the stored value.
func (e *Evaluator) evalIndexedAssignment(node *ast.AssignmentStatement, value Object) Object {
	target := node.Target
	base := e.evalIdentifier(target.Name)
	if isError(base) {
		return base
	}
	indexes, err := e.evalIndexes(target.Indexes)
	if err != nil {
		return err
	}

	if len(indexes) == 0 {
		return newErrorAt(target, "missing index")
	}

	container := base
	last := len(indexes) - 1
	for i := 0; i < last; i++ {
		container = subscript(container, indexes[i])
		if isError(container) {
			return withPosition(container, target.Indexes.Elements[i])
		}
	}

	if node.IsCompound() {
		current := subscript(container, indexes[last])
		if isError(current) {
			return withPosition(current, target.Indexes.Elements[last])
		}
		value = withPosition(e.evalBinary(node.BinaryOperator(), current, value), node)
		if isError(value) {
			return value
		}
	}

	value = copyObject(value)
	if res := store(container, indexes[last], value); isError(res) {
		return withPosition(res, target.Indexes.Elements[last])
	}
	return value
}

func (e *Evaluator) evalIndexes(seq *ast.SequenceLiteral) ([]int64, Object) {
	out := make([]int64, len(seq.Elements))
	for i, expr := range seq.Elements {
		val := e.Eval(expr)
		if isError(val) {
			return nil, val
		}
		n, ok := val.(*Integer)
		if !ok {
			return nil, newErrorAt(expr, "index must be Int, got %s", val.Type())
		}
		out[i] = n.Value
	}
	return out, nil
}

// subscript returns element i of a vector or row i of a matrix.
func subscript(obj Object, i int64) Object {
	switch o := obj.(type) {
	case *Vector:
		if err := checkBounds(i, len(o.Elements)); err != nil {
			return err
		}
		return o.Elements[i]
	case *Matrix:
		if err := checkBounds(i, len(o.Rows)); err != nil {
			return err
		}
		return o.Rows[i]
	}
	return newError("%s cannot be indexed", obj.Type())
}

// store replaces element i of a vector, or row i of a matrix with a vector
// of the same width.
func store(obj Object, i int64, value Object) Object {
	switch o := obj.(type) {
	case *Vector:
		if err := checkBounds(i, len(o.Elements)); err != nil {
			return err
		}
		o.Elements[i] = value
		return value
	case *Matrix:
		if err := checkBounds(i, len(o.Rows)); err != nil {
			return err
		}
		row, ok := value.(*Vector)
		if !ok || len(row.Elements) != o.Width() {
			return newError("cannot store %s as a row of %s", value.Type(), shapeOf(o))
		}
		o.Rows[i] = row
		return value
	}
	return newError("%s cannot be indexed", obj.Type())
}

func checkBounds(i int64, n int) *Error {
	if i < 0 {
		return newError("negative index %d", i)
	}
	if i >= int64(n) {
		return newError("index out of boundaries: %d not below %d", i, n)
	}
	return nil
}
