package analyzer

import (
	"strings"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/token"
	"github.com/funvibe/matx/internal/typesystem"
)

func (w *walker) checkIdentifier(node *ast.Identifier) typesystem.Type {
	t, ok := w.scopes.Lookup(node.Value)
	if !ok {
		w.addError(diagnostics.NewError(
			diagnostics.ErrA001,
			node.Token,
			"Variable %s not initialized",
			node.Value,
		))
		return typesystem.Unknown{}
	}
	return t
}

func (w *walker) checkRange(node *ast.RangeExpression) typesystem.Type {
	ok := true
	for _, bound := range []ast.Expression{node.Start, node.End, node.Step} {
		if bound == nil {
			continue
		}
		t := w.check(bound)
		switch t.(type) {
		case typesystem.Int, typesystem.Unknown:
		default:
			w.addError(diagnostics.NewError(
				diagnostics.ErrA015,
				bound.GetToken(),
				"Range bound must be Int, got %s",
				typesystem.Describe(t),
			))
			ok = false
		}
	}
	if !ok {
		return typesystem.Unknown{}
	}
	return typesystem.UnknownVector()
}

func (w *walker) checkCondition(node *ast.ConditionExpression) typesystem.Type {
	left := w.check(node.Left)
	right := w.check(node.Right)
	lk, rk := left.Kind(), right.Kind()

	switch {
	case lk == typesystem.KUnknown || rk == typesystem.KUnknown:
		return typesystem.Unknown{}
	case lk.IsNumeric() && rk.IsNumeric(), lk == typesystem.KString && rk == typesystem.KString:
		return typesystem.Int{}
	case lk.IsShaped() && lk == rk:
		if _, err := typesystem.UnifyShape(left, right); err != nil {
			w.addError(diagnostics.NewError(diagnostics.ErrA003, node.Token, err.Error()))
		}
		return typesystem.Int{}
	}
	w.operatorError(node.Token, node.Operator, left, right)
	return typesystem.Unknown{}
}

// binary types left op right for arithmetic and element-wise operators.
func (w *walker) binary(tok token.Token, op string, left, right typesystem.Type) typesystem.Type {
	lk, rk := left.Kind(), right.Kind()
	if lk == typesystem.KUnknown || rk == typesystem.KUnknown {
		return typesystem.Unknown{}
	}

	if isElementWise(op) {
		switch {
		case lk.IsShaped() && lk == rk:
			t, err := typesystem.UnifyShape(left, right)
			if err != nil {
				w.addError(diagnostics.NewError(diagnostics.ErrA003, tok, err.Error()))
				return typesystem.Unknown{}
			}
			return t
		case lk.IsShaped() && rk.IsScalar():
			if op == "./" {
				w.checkDivisor(tok, right)
			}
			return typesystem.Broadcast(left)
		case lk.IsScalar() && rk.IsShaped():
			return typesystem.Broadcast(right)
		}
		w.operatorError(tok, op, left, right)
		return typesystem.Unknown{}
	}

	switch {
	case lk == typesystem.KInt && rk == typesystem.KInt:
		if op == "/" && w.checkDivisor(tok, right) {
			return typesystem.Unknown{}
		}
		x, okx := typesystem.ConstInt(left)
		y, oky := typesystem.ConstInt(right)
		if okx && oky {
			return typesystem.IntOf(foldInt(op, x, y))
		}
		return typesystem.Int{}
	case lk.IsNumeric() && rk.IsNumeric():
		if op == "/" && w.checkDivisor(tok, right) {
			return typesystem.Unknown{}
		}
		x, okx := typesystem.ConstFloat(left)
		y, oky := typesystem.ConstFloat(right)
		if okx && oky {
			return typesystem.FloatOf(foldFloat(op, x, y))
		}
		return typesystem.Float{}
	case op == "+" && lk == typesystem.KString && rk == typesystem.KString:
		l, r := left.(typesystem.String), right.(typesystem.String)
		if l.Value != nil && r.Value != nil {
			return typesystem.StringOf(*l.Value + *r.Value)
		}
		return typesystem.String{}
	case op == "*" && lk == typesystem.KString && rk == typesystem.KInt:
		return repeatString(left.(typesystem.String), right)
	case op == "*" && lk == typesystem.KInt && rk == typesystem.KString:
		return repeatString(right.(typesystem.String), left)
	}
	w.operatorError(tok, op, left, right)
	return typesystem.Unknown{}
}

// checkDivisor reports a divisor that is the constant zero.
func (w *walker) checkDivisor(tok token.Token, divisor typesystem.Type) bool {
	if v, ok := typesystem.ConstFloat(divisor); ok && v == 0 {
		w.addError(diagnostics.NewError(diagnostics.ErrA016, tok, "Division by zero"))
		return true
	}
	return false
}

func (w *walker) operatorError(tok token.Token, op string, left, right typesystem.Type) {
	w.addError(diagnostics.NewError(
		diagnostics.ErrA002,
		tok,
		"Types %s and %s cannot perform operation %s",
		typesystem.Describe(left), typesystem.Describe(right), op,
	))
}

func (w *walker) checkTransposition(node *ast.TranspositionExpression) typesystem.Type {
	operand := w.check(node.Operand)
	switch t := operand.(type) {
	case typesystem.Matrix:
		return t.Transpose()
	case typesystem.Unknown:
		return t
	}
	w.addError(diagnostics.NewError(
		diagnostics.ErrA013,
		node.Token,
		"Transposition of %s is not allowed",
		typesystem.Describe(operand),
	))
	return typesystem.Unknown{}
}

func (w *walker) checkNegation(node *ast.NegationExpression) typesystem.Type {
	operand := w.check(node.Operand)
	switch t := operand.(type) {
	case typesystem.Int:
		if t.Value != nil {
			return typesystem.IntOf(-*t.Value)
		}
		return t
	case typesystem.Float:
		if t.Value != nil {
			return typesystem.FloatOf(-*t.Value)
		}
		return t
	case typesystem.String:
		w.addError(diagnostics.NewError(diagnostics.ErrA014, node.Token, "Negation of String is not allowed"))
	}
	return typesystem.Unknown{}
}

func (w *walker) checkFunctionCall(node *ast.FunctionCall) typesystem.Type {
	arg := w.check(node.Argument)
	if !config.IsBuiltinFunction(node.Function) {
		w.addError(diagnostics.NewError(diagnostics.ErrA000, node.Token, "Unknown function %s", node.Function))
		return typesystem.Unknown{}
	}
	switch t := arg.(type) {
	case typesystem.Unknown:
		return typesystem.UnknownMatrix()
	case typesystem.Int:
		if t.Value == nil {
			return typesystem.UnknownMatrix()
		}
		if *t.Value < 0 {
			w.addError(diagnostics.NewError(
				diagnostics.ErrA010,
				node.Argument.GetToken(),
				"Function %s called with negative size %d",
				node.Function, *t.Value,
			))
			return typesystem.Unknown{}
		}
		if w.maxMatrix > 0 && *t.Value > int64(w.maxMatrix) {
			w.addError(diagnostics.NewError(
				diagnostics.ErrA010,
				node.Argument.GetToken(),
				"Function %s called with size %d above limit %d",
				node.Function, *t.Value, w.maxMatrix,
			))
			return typesystem.Unknown{}
		}
		return typesystem.SquareMatrix(int(*t.Value))
	}
	w.addError(diagnostics.NewError(
		diagnostics.ErrA010,
		node.Argument.GetToken(),
		"Function %s initialize with wrong parameter %s",
		node.Function, typesystem.Describe(arg),
	))
	return typesystem.Unknown{}
}

func (w *walker) checkAccess(node *ast.AccessExpression) typesystem.Type {
	base := w.checkIdentifier(node.Name)
	indexes := make([]typesystem.Type, len(node.Indexes.Elements))
	for i, idx := range node.Indexes.Elements {
		indexes[i] = w.check(idx)
	}

	switch b := base.(type) {
	case typesystem.Unknown:
		return b
	case typesystem.Vector:
		if len(indexes) != 1 {
			w.addError(diagnostics.NewError(
				diagnostics.ErrA005,
				node.Token,
				"Vector needs 1 index, got %d",
				len(indexes),
			))
			return typesystem.Unknown{}
		}
		i, known, ok := w.checkIndex(node.Indexes.Elements[0], indexes[0], b.Size)
		if !ok || !known {
			return typesystem.Unknown{}
		}
		return widen(b.Element(i))
	case typesystem.Matrix:
		if len(indexes) != 2 {
			w.addError(diagnostics.NewError(
				diagnostics.ErrA005,
				node.Token,
				"Matrix needs 2 indexes, got %d",
				len(indexes),
			))
			return typesystem.Unknown{}
		}
		row, rowKnown, rowOK := w.checkIndex(node.Indexes.Elements[0], indexes[0], b.Height)
		col, colKnown, colOK := w.checkIndex(node.Indexes.Elements[1], indexes[1], b.Width)
		if !rowOK || !colOK || !rowKnown || !colKnown {
			return typesystem.Unknown{}
		}
		return widen(b.Element(row, col))
	}
	w.addError(diagnostics.NewError(
		diagnostics.ErrA009,
		node.Token,
		"%s cannot be indexed",
		typesystem.Describe(base),
	))
	return typesystem.Unknown{}
}

// checkIndex validates one index against bound. known is false for indexes
// whose value is not a constant; ok is false after a diagnostic.
func (w *walker) checkIndex(expr ast.Expression, t typesystem.Type, bound int) (int, bool, bool) {
	switch it := t.(type) {
	case typesystem.Unknown:
		return 0, false, true
	case typesystem.Int:
		if it.Value == nil {
			return 0, false, true
		}
		v := *it.Value
		if v < 0 {
			w.addError(diagnostics.NewError(diagnostics.ErrA007, expr.GetToken(), "Negative index %d", v))
			return 0, false, false
		}
		if bound != typesystem.UnknownDim && v >= int64(bound) {
			w.addError(diagnostics.NewError(
				diagnostics.ErrA006,
				expr.GetToken(),
				"Index out of boundaries: %d not below %d",
				v, bound,
			))
			return 0, false, false
		}
		return int(v), true, true
	}
	w.addError(diagnostics.NewError(
		diagnostics.ErrA008,
		expr.GetToken(),
		"Index must be Int, got %s",
		typesystem.Describe(t),
	))
	return 0, false, false
}

func (w *walker) checkMatrix(node *ast.MatrixLiteral) typesystem.Type {
	rows := make([]typesystem.Vector, len(node.Rows))
	for i, row := range node.Rows {
		rows[i] = w.check(row).(typesystem.Vector)
	}
	if len(rows) == 1 {
		return rows[0]
	}
	width, ok := typesystem.SameRowSizes(rows)
	if !ok {
		w.addError(diagnostics.NewError(
			diagnostics.ErrA011,
			node.Token,
			"Matrix initialize with incompatible vectors",
		))
		return typesystem.UnknownMatrix()
	}
	m := typesystem.MatrixOf(rows)
	m.Width = width
	return m
}

func (w *walker) checkSequence(node *ast.SequenceLiteral) typesystem.Type {
	elems := make([]typesystem.Type, len(node.Elements))
	for i, e := range node.Elements {
		elems[i] = w.check(e)
	}
	return typesystem.VectorOf(elems)
}

func isElementWise(op string) bool {
	return len(op) == 2 && op[0] == '.'
}

func foldInt(op string, x, y int64) int64 {
	switch op {
	case "+":
		return x + y
	case "-":
		return x - y
	case "*":
		return x * y
	default:
		return x / y
	}
}

func foldFloat(op string, x, y float64) float64 {
	switch op {
	case "+":
		return x + y
	case "-":
		return x - y
	case "*":
		return x * y
	default:
		return x / y
	}
}

func repeatString(s typesystem.String, count typesystem.Type) typesystem.Type {
	n, ok := typesystem.ConstInt(count)
	if !ok || s.Value == nil {
		return typesystem.String{}
	}
	if n <= 0 || *s.Value == "" {
		return typesystem.StringOf("")
	}
	if n > int64(config.MaxStringLength/len(*s.Value)) {
		// Too long to fold; the evaluator reports it.
		return typesystem.String{}
	}
	return typesystem.StringOf(strings.Repeat(*s.Value, int(n)))
}
