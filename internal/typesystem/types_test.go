package typesystem

import (
	"errors"
	"testing"
)

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Unknown{}, "Unknown"},
		{Void{}, "Void"},
		{Int{}, "Int"},
		{IntOf(5), "Int(5)"},
		{FloatOf(2.5), "Float(2.5)"},
		{StringOf("hi"), `String("hi")`},
		{VectorOf([]Type{IntOf(1), IntOf(2), IntOf(3)}), "Vector[3]"},
		{UnknownVector(), "Vector[?]"},
		{Matrix{Width: 3, Height: 2}, "Matrix[2,3]"},
		{UnknownMatrix(), "Matrix[?,?]"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestUnifyShape(t *testing.T) {
	tests := []struct {
		name    string
		left    Type
		right   Type
		want    string
		wantErr bool
	}{
		{"equal vectors", Vector{Size: 2}, Vector{Size: 2}, "Vector[2]", false},
		{"different vectors", Vector{Size: 3}, Vector{Size: 2}, "Unknown", true},
		{"unknown size joins", UnknownVector(), Vector{Size: 4}, "Vector[4]", false},
		{"equal matrices", SquareMatrix(3), SquareMatrix(3), "Matrix[3,3]", false},
		{"different matrices", Matrix{Width: 2, Height: 3}, SquareMatrix(3), "Unknown", true},
		{"unknown matrix joins", UnknownMatrix(), Matrix{Width: 2, Height: 5}, "Matrix[5,2]", false},
		{"vector with matrix", Vector{Size: 2}, SquareMatrix(2), "Unknown", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnifyShape(tt.left, tt.right)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			var dimErr *DimensionError
			if tt.wantErr && !errors.As(err, &dimErr) {
				t.Fatalf("expected *DimensionError, got %T", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTransposeIsInvolution(t *testing.T) {
	rows := []Vector{
		VectorOf([]Type{IntOf(1), IntOf(2), IntOf(3)}),
		VectorOf([]Type{IntOf(4), IntOf(5), IntOf(6)}),
	}
	m := MatrixOf(rows)
	tr := m.Transpose()
	if tr.Width != 2 || tr.Height != 3 {
		t.Fatalf("unexpected transpose dims %s", tr)
	}
	if got := tr.Element(2, 1).String(); got != "Int(6)" {
		t.Errorf("tr[2,1] = %s, want Int(6)", got)
	}
	back := tr.Transpose()
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if back.Element(r, c).String() != m.Element(r, c).String() {
				t.Errorf("element %d,%d changed: %s vs %s", r, c, back.Element(r, c), m.Element(r, c))
			}
		}
	}

	unknown := UnknownMatrix().Transpose()
	if unknown.Rows != nil || unknown.Width != UnknownDim {
		t.Errorf("unknown matrix transpose should stay unknown: %s", unknown)
	}
}

func TestSameRowSizes(t *testing.T) {
	if size, ok := SameRowSizes([]Vector{{Size: 2}, {Size: UnknownDim}, {Size: 2}}); !ok || size != 2 {
		t.Errorf("got %d %v", size, ok)
	}
	if _, ok := SameRowSizes([]Vector{{Size: 2}, {Size: 3}}); ok {
		t.Errorf("rows of 2 and 3 should not agree")
	}
}
