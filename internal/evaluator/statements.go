package evaluator

import (
	"io"
	"strings"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
)

func (e *Evaluator) evalProgram(program *ast.Program) Object {
	if !e.session {
		e.env.Push(config.ProgramScope)
		defer e.env.Pop()
	}
	return e.evalStatements(program.Statements)
}

func (e *Evaluator) evalBlock(block *ast.Block, tag string) Object {
	e.env.Push(tag)
	defer e.env.Pop()
	return e.evalStatements(block.Statements)
}

func (e *Evaluator) evalStatements(stmts []ast.Statement) Object {
	var result Object
	for _, stmt := range stmts {
		result = e.Eval(stmt)
		if isSignal(result) {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalPrint(node *ast.PrintStatement) Object {
	values, err := e.evalElements(node.Values.Elements)
	if err != nil {
		return err
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Inspect()
	}
	if _, werr := io.WriteString(e.Out, strings.Join(parts, e.Separator)+"\n"); werr != nil {
		return newErrorAt(node, "print: %v", werr)
	}
	return nil
}

func (e *Evaluator) evalIf(node *ast.IfStatement) Object {
	e.env.Push(config.IfScope)
	defer e.env.Pop()

	cond := e.Eval(node.Condition)
	if isError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.evalBlock(node.Consequence, config.BlockScope)
	}
	if node.Alternative != nil {
		return e.evalBlock(node.Alternative, config.BlockScope)
	}
	return nil
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier) Object {
	val, ok := e.env.Get(node.Value)
	if !ok {
		return newErrorAt(node, "variable %s not initialized", node.Value)
	}
	return val
}

func (e *Evaluator) evalAssignment(node *ast.AssignmentStatement) Object {
	value := e.Eval(node.Value)
	if isError(value) {
		return value
	}

	target := node.Target
	if target.IsIndexed() {
		return e.evalIndexedAssignment(node, value)
	}

	name := target.Name.Value
	if node.IsCompound() {
		current, ok := e.env.Get(name)
		if !ok {
			return newErrorAt(target.Name, "variable %s not initialized before %s", name, node.Operator)
		}
		value = withPosition(e.evalBinary(node.BinaryOperator(), current, value), node)
		if isError(value) {
			return value
		}
	}
	return e.env.Set(name, copyObject(value))
}
