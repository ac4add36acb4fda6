package typesystem

import (
	"fmt"
	"strconv"
)

// UnknownDim marks a vector size or matrix dimension that is not known
// statically. It is compatible with every size.
const UnknownDim = -1

// Type is the interface for all types in our system.
type Type interface {
	String() string
	Kind() Kind
}

// Unknown absorbs errors: operations on it produce Unknown without new
// diagnostics.
type Unknown struct{}

func (Unknown) String() string { return "Unknown" }
func (Unknown) Kind() Kind     { return KUnknown }

// Void is the type of statements that produce no value.
type Void struct{}

func (Void) String() string { return "Void" }
func (Void) Kind() Kind     { return KVoid }

// Int carries its value when it is a compile-time constant.
type Int struct {
	Value *int64
}

func (t Int) Kind() Kind { return KInt }
func (t Int) String() string {
	if t.Value == nil {
		return "Int"
	}
	return "Int(" + strconv.FormatInt(*t.Value, 10) + ")"
}

type Float struct {
	Value *float64
}

func (t Float) Kind() Kind { return KFloat }
func (t Float) String() string {
	if t.Value == nil {
		return "Float"
	}
	return "Float(" + strconv.FormatFloat(*t.Value, 'g', -1, 64) + ")"
}

type String struct {
	Value *string
}

func (t String) Kind() Kind { return KString }
func (t String) String() string {
	if t.Value == nil {
		return "String"
	}
	return "String(" + strconv.Quote(*t.Value) + ")"
}

// Vector has a size and, for literals, the type of every element.
type Vector struct {
	Elements []Type // nil when the element types are not tracked
	Size     int
}

func (t Vector) Kind() Kind { return KVector }
func (t Vector) String() string {
	return "Vector[" + dimString(t.Size) + "]"
}

// Element returns the type of element i, or Unknown when not tracked.
func (t Vector) Element(i int) Type {
	if i < 0 || i >= len(t.Elements) || t.Elements[i] == nil {
		return Unknown{}
	}
	return t.Elements[i]
}

// Matrix is a list of equally sized row vectors. Width is the row size,
// Height the row count. String renders it as Matrix[height,width].
type Matrix struct {
	Rows   []Vector // nil when the rows are not tracked
	Width  int
	Height int
}

func (t Matrix) Kind() Kind { return KMatrix }
func (t Matrix) String() string {
	return "Matrix[" + dimString(t.Height) + "," + dimString(t.Width) + "]"
}

// Element returns the type at row, col, or Unknown when not tracked.
func (t Matrix) Element(row, col int) Type {
	if row < 0 || row >= len(t.Rows) {
		return Unknown{}
	}
	return t.Rows[row].Element(col)
}

// Transpose swaps width and height, and the tracked rows with them.
func (t Matrix) Transpose() Matrix {
	out := Matrix{Width: t.Height, Height: t.Width}
	if t.Rows == nil || t.Width == UnknownDim {
		return out
	}
	out.Rows = make([]Vector, t.Width)
	for c := 0; c < t.Width; c++ {
		elems := make([]Type, len(t.Rows))
		for r := range t.Rows {
			elems[r] = t.Rows[r].Element(c)
		}
		out.Rows[c] = Vector{Elements: elems, Size: len(elems)}
	}
	return out
}

func dimString(n int) string {
	if n == UnknownDim {
		return "?"
	}
	return strconv.Itoa(n)
}

// Constructors

func IntOf(v int64) Int         { return Int{Value: &v} }
func FloatOf(v float64) Float   { return Float{Value: &v} }
func StringOf(v string) String  { return String{Value: &v} }
func UnknownVector() Vector     { return Vector{Size: UnknownDim} }
func UnknownMatrix() Matrix     { return Matrix{Width: UnknownDim, Height: UnknownDim} }
func SquareMatrix(n int) Matrix { return Matrix{Width: n, Height: n} }

// VectorOf builds a vector type from its element types.
func VectorOf(elems []Type) Vector {
	return Vector{Elements: elems, Size: len(elems)}
}

// MatrixOf builds a matrix from rows already known to have equal sizes.
func MatrixOf(rows []Vector) Matrix {
	if len(rows) == 0 {
		return Matrix{Width: 0, Height: 0}
	}
	return Matrix{Rows: rows, Width: rows[0].Size, Height: len(rows)}
}

// ConstInt returns the folded value of an Int type.
func ConstInt(t Type) (int64, bool) {
	if it, ok := t.(Int); ok && it.Value != nil {
		return *it.Value, true
	}
	return 0, false
}

// ConstFloat returns the folded value of a numeric type as a float.
func ConstFloat(t Type) (float64, bool) {
	switch v := t.(type) {
	case Int:
		if v.Value != nil {
			return float64(*v.Value), true
		}
	case Float:
		if v.Value != nil {
			return *v.Value, true
		}
	}
	return 0, false
}

// Describe renders a type for diagnostics: its kind, with dimensions for
// shaped types.
func Describe(t Type) string {
	switch v := t.(type) {
	case Vector, Matrix:
		return v.String()
	case nil:
		return "<nil>"
	default:
		return fmt.Sprint(t.Kind())
	}
}
