package evaluator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatFloat prints the shortest representation that reads back as f,
// always with a fractional part or exponent so floats stay
// distinguishable from integers.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// inspectNested renders an element inside a vector; strings are quoted
// there.
func inspectNested(obj Object) string {
	if s, ok := obj.(*String); ok {
		return strconv.Quote(s.Value)
	}
	if obj == nil {
		return "<nil>"
	}
	return obj.Inspect()
}

// shapeOf describes the dimensions of a value for runtime faults.
func shapeOf(obj Object) string {
	switch o := obj.(type) {
	case *Vector:
		return fmt.Sprintf("Vector[%d]", len(o.Elements))
	case *Matrix:
		return fmt.Sprintf("Matrix[%d,%d]", o.Height(), o.Width())
	}
	return string(obj.Type())
}
