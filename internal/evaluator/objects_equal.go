package evaluator

import (
	"cmp"
	"strings"
)

// objectsEqual compares structurally. Integers and floats compare by value.
func objectsEqual(a, b Object) bool {
	if isNumeric(a) && isNumeric(b) {
		if a.Type() == INTEGER_OBJ && b.Type() == INTEGER_OBJ {
			return a.(*Integer).Value == b.(*Integer).Value
		}
		return toFloat(a) == toFloat(b)
	}
	switch x := a.(type) {
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Vector:
		y, ok := b.(*Vector)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !objectsEqual(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Matrix:
		y, ok := b.(*Matrix)
		if !ok || len(x.Rows) != len(y.Rows) {
			return false
		}
		for i := range x.Rows {
			if !objectsEqual(x.Rows[i], y.Rows[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// compareObjects orders numbers by value, strings bytewise and vectors and
// matrices lexicographically. ok is false for values of unrelated kinds.
func compareObjects(a, b Object) (int, bool) {
	if isNumeric(a) && isNumeric(b) {
		if a.Type() == INTEGER_OBJ && b.Type() == INTEGER_OBJ {
			return cmp.Compare(a.(*Integer).Value, b.(*Integer).Value), true
		}
		return cmp.Compare(toFloat(a), toFloat(b)), true
	}
	switch x := a.(type) {
	case *String:
		if y, ok := b.(*String); ok {
			return strings.Compare(x.Value, y.Value), true
		}
	case *Vector:
		if y, ok := b.(*Vector); ok {
			return compareSequences(x.Elements, y.Elements)
		}
	case *Matrix:
		if y, ok := b.(*Matrix); ok {
			xs := make([]Object, len(x.Rows))
			for i, row := range x.Rows {
				xs[i] = row
			}
			ys := make([]Object, len(y.Rows))
			for i, row := range y.Rows {
				ys[i] = row
			}
			return compareSequences(xs, ys)
		}
	}
	return 0, false
}

func compareSequences(xs, ys []Object) (int, bool) {
	for i := 0; i < len(xs) && i < len(ys); i++ {
		c, ok := compareObjects(xs[i], ys[i])
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
	return cmp.Compare(len(xs), len(ys)), true
}
