package evaluator

import (
	"fmt"
	"strings"
)

type ObjectType string

const (
	INTEGER_OBJ         = "INTEGER"
	FLOAT_OBJ           = "FLOAT"
	STRING_OBJ          = "STRING"
	VECTOR_OBJ          = "VECTOR"
	MATRIX_OBJ          = "MATRIX"
	ERROR_OBJ           = "ERROR"
	RETURN_VALUE_OBJ    = "RETURN_VALUE"
	BREAK_SIGNAL_OBJ    = "BREAK_SIGNAL"
	CONTINUE_SIGNAL_OBJ = "CONTINUE_SIGNAL"
)

// Object is a runtime value or a control signal.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Float
type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return formatFloat(f.Value) }

// String
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

// Vector is an ordered sequence of values. Elements may themselves be
// vectors when a literal nests them.
type Vector struct {
	Elements []Object
}

func (v *Vector) Type() ObjectType { return VECTOR_OBJ }
func (v *Vector) Inspect() string {
	parts := make([]string, len(v.Elements))
	for i, el := range v.Elements {
		parts[i] = inspectNested(el)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Matrix is a list of rows of equal length.
type Matrix struct {
	Rows []*Vector
}

func (m *Matrix) Type() ObjectType { return MATRIX_OBJ }
func (m *Matrix) Inspect() string {
	parts := make([]string, len(m.Rows))
	for i, row := range m.Rows {
		parts[i] = row.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Height is the number of rows.
func (m *Matrix) Height() int { return len(m.Rows) }

// Width is the length of the first row, 0 for a matrix without rows.
func (m *Matrix) Width() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return len(m.Rows[0].Elements)
}
