package evaluator

import (
	"github.com/funvibe/matx/internal/ast"
)

// evalMatrix builds a Matrix from the literal's rows. A single row is a
// plain Vector.
func (e *Evaluator) evalMatrix(node *ast.MatrixLiteral) Object {
	rows := make([]*Vector, len(node.Rows))
	for i, row := range node.Rows {
		elems, err := e.evalElements(row.Elements)
		if err != nil {
			return err
		}
		rows[i] = &Vector{Elements: elems}
	}
	if len(rows) == 1 {
		return rows[0]
	}
	for _, row := range rows[1:] {
		if len(row.Elements) != len(rows[0].Elements) {
			return newErrorAt(node, "matrix initialize with incompatible vectors")
		}
	}
	return &Matrix{Rows: rows}
}
