package analyzer

import (
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/token"
	"github.com/funvibe/matx/internal/typesystem"
)

func (w *walker) checkProgram(program *ast.Program) typesystem.Type {
	if program.File != "" && w.currentFile == "" {
		w.currentFile = program.File
	}
	if !w.session {
		w.scopes.Push(config.ProgramScope)
		defer w.scopes.Pop()
	}

	var result typesystem.Type = typesystem.Void{}
	for _, stmt := range program.Statements {
		result = w.check(stmt)
	}
	w.programTypes = w.scopes.Current().Bindings()
	return result
}

func (w *walker) checkBlock(block *ast.Block, tag string) typesystem.Type {
	w.scopes.Push(tag)
	defer w.scopes.Pop()

	var result typesystem.Type = typesystem.Void{}
	for _, stmt := range block.Statements {
		result = w.check(stmt)
	}
	return result
}

func (w *walker) checkAssignment(node *ast.AssignmentStatement) typesystem.Type {
	target := node.Target
	value := w.check(node.Value)

	if target.IsIndexed() {
		access := target.Access()
		current := w.checkAccess(access)
		w.TypeMap[target] = current
		if node.IsCompound() {
			return w.binary(node.Token, node.BinaryOperator(), current, value)
		}
		return value
	}

	name := target.Name.Value
	result := value
	if node.IsCompound() {
		current, ok := w.scopes.Lookup(name)
		if !ok {
			w.addError(diagnostics.NewError(
				diagnostics.ErrA012,
				target.Name.Token,
				"Variable %s not initialized before %s",
				name, node.Operator,
			))
			result = typesystem.Unknown{}
		} else {
			result = w.binary(node.Token, node.BinaryOperator(), current, value)
		}
	}
	w.scopes.Assign(name, result)
	w.TypeMap[target] = result
	return result
}

// checkIf checks both branches from the same starting bindings and joins
// what they leave behind, since only one of them runs.
func (w *walker) checkIf(node *ast.IfStatement) typesystem.Type {
	names := assignedNames(node)
	before := w.lookupAll(names)

	w.scopes.Push(config.IfScope)
	w.check(node.Condition)
	w.checkBlock(node.Consequence, config.BlockScope)
	w.scopes.Pop()
	afterThen := w.lookupAll(names)

	afterElse := before
	if node.Alternative != nil {
		w.rebindAll(before)
		w.scopes.Push(config.IfScope)
		w.checkBlock(node.Alternative, config.BlockScope)
		w.scopes.Pop()
		afterElse = w.lookupAll(names)
	}

	for _, name := range keys(before) {
		w.rejoin(node.Token, name, afterThen[name], afterElse[name])
	}
	return typesystem.Void{}
}

func (w *walker) checkWhile(node *ast.WhileStatement) typesystem.Type {
	before := w.enterLoop(node)

	w.scopes.Push(config.LoopScope)
	w.check(node.Condition)
	w.checkBlock(node.Body, config.BlockScope)
	w.scopes.Pop()

	w.leaveLoop(node.Token, before)
	return typesystem.Void{}
}

func (w *walker) checkFor(node *ast.ForStatement) typesystem.Type {
	rangeType := w.check(node.Range)
	before := w.enterLoop(node)

	w.scopes.Push(config.LoopScope)
	var iter typesystem.Type = typesystem.Int{}
	if _, unknown := rangeType.(typesystem.Unknown); unknown {
		iter = typesystem.Unknown{}
	}
	w.scopes.Assign(node.Variable.Value, iter)
	w.TypeMap[node.Variable] = iter
	w.checkBlock(node.Body, config.BlockScope)
	w.scopes.Pop()

	w.leaveLoop(node.Token, before)
	return typesystem.Void{}
}

// enterLoop drops the folded values of every outer binding the loop body
// reassigns; a single pass over the body cannot know them past the first
// iteration. It returns the widened bindings for leaveLoop.
func (w *walker) enterLoop(node ast.Node) map[string]typesystem.Type {
	before := w.lookupAll(assignedNames(node))
	for name, t := range before {
		before[name] = widen(t)
	}
	w.rebindAll(before)
	return before
}

// leaveLoop joins the bindings after one pass of the body with the bindings
// the loop started from, since the body may run zero times.
func (w *walker) leaveLoop(tok token.Token, before map[string]typesystem.Type) {
	after := w.lookupAll(keys(before))
	for _, name := range keys(before) {
		w.rejoin(tok, name, after[name], before[name])
	}
}

// rejoin binds name to the join of the types two paths leave behind. Paths
// that disagree on the kind of value are reported: the name would be
// Unknown afterwards and absorb every later misuse.
func (w *walker) rejoin(tok token.Token, name string, a, b typesystem.Type) {
	if conflicting(a, b) {
		w.addError(diagnostics.NewError(
			diagnostics.ErrA017,
			tok,
			"Variable %s may hold %s or %s",
			name, typesystem.Describe(a), typesystem.Describe(b),
		))
	}
	w.scopes.Assign(name, join(a, b))
}

func (w *walker) checkLoopControl(tok token.Token, keyword string) {
	if !w.scopes.InScope(config.LoopScope) {
		w.addError(diagnostics.NewError(diagnostics.ErrA004, tok, "%s outside of loop", keyword))
	}
}

// lookupAll returns the current type of every bound name in names.
func (w *walker) lookupAll(names []string) map[string]typesystem.Type {
	out := make(map[string]typesystem.Type, len(names))
	for _, name := range names {
		if t, ok := w.scopes.Lookup(name); ok {
			out[name] = t
		}
	}
	return out
}

func (w *walker) rebindAll(bindings map[string]typesystem.Type) {
	for name, t := range bindings {
		w.scopes.Assign(name, t)
	}
}
