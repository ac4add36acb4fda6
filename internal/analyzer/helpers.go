package analyzer

import (
	"sort"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/token"
	"github.com/funvibe/matx/internal/typesystem"
)

// widen drops folded values and tracked elements, keeping dimensions.
func widen(t typesystem.Type) typesystem.Type {
	switch v := t.(type) {
	case typesystem.Int:
		return typesystem.Int{}
	case typesystem.Float:
		return typesystem.Float{}
	case typesystem.String:
		return typesystem.String{}
	case typesystem.Vector:
		return typesystem.Vector{Size: v.Size}
	case typesystem.Matrix:
		return typesystem.Matrix{Width: v.Width, Height: v.Height}
	}
	return t
}

// join is the type of a name that holds either a or b depending on which
// path ran. Agreeing constants survive; disagreeing dimensions become
// unknown; unrelated kinds become Unknown.
func join(a, b typesystem.Type) typesystem.Type {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Kind() != b.Kind() {
		if a.Kind().IsNumeric() && b.Kind().IsNumeric() {
			return typesystem.Float{}
		}
		return typesystem.Unknown{}
	}
	switch av := a.(type) {
	case typesystem.Int:
		if x, ok := typesystem.ConstInt(av); ok {
			if y, ok := typesystem.ConstInt(b); ok && x == y {
				return av
			}
		}
		return typesystem.Int{}
	case typesystem.Float:
		bv := b.(typesystem.Float)
		if av.Value != nil && bv.Value != nil && *av.Value == *bv.Value {
			return av
		}
		return typesystem.Float{}
	case typesystem.String:
		bv := b.(typesystem.String)
		if av.Value != nil && bv.Value != nil && *av.Value == *bv.Value {
			return av
		}
		return typesystem.String{}
	case typesystem.Vector:
		bv := b.(typesystem.Vector)
		return typesystem.Vector{Size: joinDim(av.Size, bv.Size)}
	case typesystem.Matrix:
		bv := b.(typesystem.Matrix)
		return typesystem.Matrix{Width: joinDim(av.Width, bv.Width), Height: joinDim(av.Height, bv.Height)}
	}
	return a
}

// conflicting reports two known types of kinds that do not join into a
// usable type.
func conflicting(a, b typesystem.Type) bool {
	if a == nil || b == nil {
		return false
	}
	ak, bk := a.Kind(), b.Kind()
	if ak == bk || ak == typesystem.KUnknown || bk == typesystem.KUnknown {
		return false
	}
	return !(ak.IsNumeric() && bk.IsNumeric())
}

func joinDim(a, b int) int {
	if a == b {
		return a
	}
	return typesystem.UnknownDim
}

// assignedNames lists the plain names written anywhere under node: the
// targets of assignments and the variables of for loops.
func assignedNames(node ast.Node) []string {
	seen := make(map[string]bool)
	var visit func(n ast.Node)
	visitBlock := func(b *ast.Block) {
		if b != nil {
			visit(b)
		}
	}
	visit = func(n ast.Node) {
		switch s := n.(type) {
		case *ast.Block:
			for _, stmt := range s.Statements {
				visit(stmt)
			}
		case *ast.AssignmentStatement:
			if s.Target != nil && s.Target.Name != nil {
				seen[s.Target.Name.Value] = true
			}
		case *ast.IfStatement:
			visitBlock(s.Consequence)
			visitBlock(s.Alternative)
		case *ast.WhileStatement:
			visitBlock(s.Body)
		case *ast.ForStatement:
			if s.Variable != nil {
				seen[s.Variable.Value] = true
			}
			visitBlock(s.Body)
		}
	}
	visit(node)
	return keysOf(seen)
}

func keysOf(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func keys(m map[string]typesystem.Type) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func token0(node ast.Node) token.Token {
	if tp, ok := node.(ast.TokenProvider); ok {
		return tp.GetToken()
	}
	return token.Token{}
}
