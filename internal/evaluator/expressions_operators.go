package evaluator

import (
	"strings"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
)

// evalBinary applies an arithmetic or element-wise operator.
func (e *Evaluator) evalBinary(op string, left, right Object) Object {
	if isElementWiseOperator(op) {
		return e.evalElementWise(op, left, right)
	}

	switch {
	case left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ:
		return evalIntegerInfix(op, left.(*Integer).Value, right.(*Integer).Value)
	case isNumeric(left) && isNumeric(right):
		return evalFloatInfix(op, toFloat(left), toFloat(right))
	case left.Type() == STRING_OBJ && right.Type() == STRING_OBJ && op == "+":
		return &String{Value: left.(*String).Value + right.(*String).Value}
	case left.Type() == STRING_OBJ && right.Type() == INTEGER_OBJ && op == "*":
		return repeat(left.(*String).Value, right.(*Integer).Value)
	case left.Type() == INTEGER_OBJ && right.Type() == STRING_OBJ && op == "*":
		return repeat(right.(*String).Value, left.(*Integer).Value)
	}
	return newError("unsupported operand types: %s %s %s", left.Type(), op, right.Type())
}

func evalIntegerInfix(op string, l, r int64) Object {
	switch op {
	case "+":
		return &Integer{Value: l + r}
	case "-":
		return &Integer{Value: l - r}
	case "*":
		return &Integer{Value: l * r}
	case "/":
		if r == 0 {
			return newError("division by zero")
		}
		return &Integer{Value: l / r}
	}
	return newError("unknown operator: INTEGER %s INTEGER", op)
}

func evalFloatInfix(op string, l, r float64) Object {
	switch op {
	case "+":
		return &Float{Value: l + r}
	case "-":
		return &Float{Value: l - r}
	case "*":
		return &Float{Value: l * r}
	case "/":
		if r == 0 {
			return newError("division by zero")
		}
		return &Float{Value: l / r}
	}
	return newError("unknown operator: FLOAT %s FLOAT", op)
}

func repeat(s string, n int64) Object {
	if n <= 0 || s == "" {
		return &String{Value: ""}
	}
	if n > int64(config.MaxStringLength/len(s)) {
		return newError("string repetition too long: %d copies of %d bytes", n, len(s))
	}
	return &String{Value: strings.Repeat(s, int(n))}
}

// evalElementWise applies the scalar operator behind op to every pair of
// elements. A scalar operand is broadcast over the shaped one.
func (e *Evaluator) evalElementWise(op string, left, right Object) Object {
	scalarOp := op[1:]
	switch l := left.(type) {
	case *Vector:
		switch r := right.(type) {
		case *Vector:
			if len(l.Elements) != len(r.Elements) {
				return newError("%s and %s don't have the same sizes", shapeOf(l), shapeOf(r))
			}
			return e.zipVectors(op, l, r)
		case *Matrix:
			return newError("unsupported operand types: %s %s %s", left.Type(), op, right.Type())
		}
		if isNumeric(right) {
			return e.mapVector(l, func(x Object) Object { return e.evalElementWise(op, x, right) })
		}
	case *Matrix:
		switch r := right.(type) {
		case *Matrix:
			if l.Height() != r.Height() || l.Width() != r.Width() {
				return newError("%s and %s don't have the same sizes", shapeOf(l), shapeOf(r))
			}
			rows := make([]*Vector, len(l.Rows))
			for i := range l.Rows {
				row := e.zipVectors(op, l.Rows[i], r.Rows[i])
				if isError(row) {
					return row
				}
				rows[i] = row.(*Vector)
			}
			return &Matrix{Rows: rows}
		case *Vector:
			return newError("unsupported operand types: %s %s %s", left.Type(), op, right.Type())
		}
		if isNumeric(right) {
			return e.mapMatrix(l, func(x Object) Object { return e.evalElementWise(op, x, right) })
		}
	default:
		switch r := right.(type) {
		case *Vector:
			if isNumeric(left) {
				return e.mapVector(r, func(x Object) Object { return e.evalElementWise(op, left, x) })
			}
		case *Matrix:
			if isNumeric(left) {
				return e.mapMatrix(r, func(x Object) Object { return e.evalElementWise(op, left, x) })
			}
		default:
			// Elements of nested vectors meet here as plain scalars.
			return e.evalBinary(scalarOp, left, right)
		}
	}
	return newError("unsupported operand types: %s %s %s", left.Type(), op, right.Type())
}

func (e *Evaluator) zipVectors(op string, l, r *Vector) Object {
	elems := make([]Object, len(l.Elements))
	for i := range l.Elements {
		val := e.evalElementWise(op, l.Elements[i], r.Elements[i])
		if isError(val) {
			return val
		}
		elems[i] = val
	}
	return &Vector{Elements: elems}
}

func (e *Evaluator) mapVector(v *Vector, fn func(Object) Object) Object {
	elems := make([]Object, len(v.Elements))
	for i, el := range v.Elements {
		val := fn(el)
		if isError(val) {
			return val
		}
		elems[i] = val
	}
	return &Vector{Elements: elems}
}

func (e *Evaluator) mapMatrix(m *Matrix, fn func(Object) Object) Object {
	rows := make([]*Vector, len(m.Rows))
	for i, row := range m.Rows {
		val := e.mapVector(row, fn)
		if isError(val) {
			return val
		}
		rows[i] = val.(*Vector)
	}
	return &Matrix{Rows: rows}
}

func (e *Evaluator) evalCondition(node *ast.ConditionExpression) Object {
	left := e.Eval(node.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "==":
		return boolToInteger(objectsEqual(left, right))
	case "!=":
		return boolToInteger(!objectsEqual(left, right))
	}

	cmp, ok := compareObjects(left, right)
	if !ok {
		return newErrorAt(node, "cannot compare %s %s %s", left.Type(), node.Operator, right.Type())
	}
	switch node.Operator {
	case "<":
		return boolToInteger(cmp < 0)
	case "<=":
		return boolToInteger(cmp <= 0)
	case ">":
		return boolToInteger(cmp > 0)
	case ">=":
		return boolToInteger(cmp >= 0)
	}
	return newErrorAt(node, "unknown operator: %s", node.Operator)
}

func (e *Evaluator) evalNegation(node *ast.NegationExpression) Object {
	operand := e.Eval(node.Operand)
	if isError(operand) {
		return operand
	}
	return withPosition(negate(operand), node)
}

func negate(obj Object) Object {
	switch o := obj.(type) {
	case *Integer:
		return &Integer{Value: -o.Value}
	case *Float:
		return &Float{Value: -o.Value}
	case *Vector:
		elems := make([]Object, len(o.Elements))
		for i, el := range o.Elements {
			val := negate(el)
			if isError(val) {
				return val
			}
			elems[i] = val
		}
		return &Vector{Elements: elems}
	case *Matrix:
		rows := make([]*Vector, len(o.Rows))
		for i, row := range o.Rows {
			val := negate(row)
			if isError(val) {
				return val
			}
			rows[i] = val.(*Vector)
		}
		return &Matrix{Rows: rows}
	}
	return newError("unknown operator: -%s", obj.Type())
}

func (e *Evaluator) evalTransposition(node *ast.TranspositionExpression) Object {
	operand := e.Eval(node.Operand)
	if isError(operand) {
		return operand
	}
	m, ok := operand.(*Matrix)
	if !ok {
		return newErrorAt(node, "transposition of %s is not allowed", operand.Type())
	}
	return transpose(m)
}

func transpose(m *Matrix) *Matrix {
	rows := make([]*Vector, m.Width())
	for c := range rows {
		elems := make([]Object, m.Height())
		for r := range elems {
			elems[r] = m.Rows[r].Elements[c]
		}
		rows[c] = &Vector{Elements: elems}
	}
	return &Matrix{Rows: rows}
}

func isElementWiseOperator(op string) bool {
	return len(op) == 2 && op[0] == '.'
}

func isNumeric(obj Object) bool {
	t := obj.Type()
	return t == INTEGER_OBJ || t == FLOAT_OBJ
}

func toFloat(obj Object) float64 {
	switch o := obj.(type) {
	case *Integer:
		return float64(o.Value)
	case *Float:
		return o.Value
	}
	return 0
}
