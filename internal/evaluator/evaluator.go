package evaluator

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
)

type Evaluator struct {
	// Context for cancellation
	Context context.Context

	Out io.Writer
	// Separator is written between the values of one print statement.
	Separator string
	// MaxDepth bounds the nesting of Eval calls.
	MaxDepth int
	// MaxMatrixSize is the largest n accepted by zeros, ones and eye.
	MaxMatrixSize int

	env     *Environment
	session bool
	logger  *slog.Logger

	// evalDepth tracks the current nesting depth of Eval calls to prevent stack overflow
	evalDepth int
}

// New creates an Evaluator that starts every Run from an empty scope stack.
func New(logger *slog.Logger) *Evaluator {
	return &Evaluator{
		Out:           os.Stdout,
		Separator:     " ",
		MaxDepth:      config.MaxEvalDepth,
		MaxMatrixSize: config.MaxMatrixSize,
		env:           NewEnvironment(logger),
		logger:        logger,
	}
}

// NewSession creates an Evaluator whose root frame persists across runs.
// Programs execute directly in the root frame.
func NewSession(logger *slog.Logger) *Evaluator {
	e := New(logger)
	e.session = true
	return e
}

// Configure applies the user settings.
func (e *Evaluator) Configure(s config.Settings) {
	if s.PrintSeparator != "" {
		e.Separator = s.PrintSeparator
	}
	if s.MaxEvalDepth > 0 {
		e.MaxDepth = s.MaxEvalDepth
	}
	if s.MaxMatrixSize > 0 {
		e.MaxMatrixSize = s.MaxMatrixSize
	}
}

// Reset forgets every binding of a session.
func (e *Evaluator) Reset() {
	e.env.Reset()
}

// Bindings returns the values bound in the root frame.
func (e *Evaluator) Bindings() map[string]Object {
	return e.env.GetStore()
}

// Run executes program. The result is the value of a program-level return,
// or nil when the program runs to its end. A runtime fault is returned as
// an *Error.
func (e *Evaluator) Run(program *ast.Program) (Object, error) {
	if !e.session {
		e.env.Reset()
	}
	depth := e.env.Depth()
	defer e.env.Unwind(depth)
	e.evalDepth = 0

	if e.logger != nil {
		e.logger.Debug("eval start", slog.Int("statements", len(program.Statements)))
	}

	result := e.Eval(program)
	switch r := result.(type) {
	case *Error:
		return nil, r
	case *ReturnValue:
		return r.Value, nil
	case *BreakSignal:
		return nil, newError("break outside of loop")
	case *ContinueSignal:
		return nil, newError("continue outside of loop")
	}
	return nil, nil
}

// Eval evaluates node in the current scope stack.
func (e *Evaluator) Eval(node ast.Node) Object {
	// Check recursion depth to prevent Go stack overflow
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.evalDepth > e.MaxDepth {
		return newErrorAt(node, "maximum recursion depth exceeded")
	}

	if e.Context != nil {
		select {
		case <-e.Context.Done():
			return newErrorAt(node, "execution cancelled: %v", e.Context.Err())
		default:
		}
	}

	return e.evalCore(node)
}

func (e *Evaluator) evalCore(node ast.Node) Object {
	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return e.evalProgram(node)
	case *ast.Block:
		return e.evalBlock(node, config.BlockScope)
	case *ast.AssignmentStatement:
		return e.evalAssignment(node)
	case *ast.PrintStatement:
		return e.evalPrint(node)
	case *ast.IfStatement:
		return e.evalIf(node)
	case *ast.WhileStatement:
		return e.evalWhile(node)
	case *ast.ForStatement:
		return e.evalFor(node)
	case *ast.BreakStatement:
		return BREAK
	case *ast.ContinueStatement:
		return CONTINUE
	case *ast.ReturnStatement:
		val := e.Eval(node.Value)
		if isError(val) {
			return val
		}
		return &ReturnValue{Value: val}

	// Expressions
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.Identifier:
		return e.evalIdentifier(node)
	case *ast.RangeExpression:
		return e.evalRangeExpression(node)
	case *ast.ConditionExpression:
		return e.evalCondition(node)
	case *ast.BinaryExpression:
		left := e.Eval(node.Left)
		if isError(left) {
			return left
		}
		right := e.Eval(node.Right)
		if isError(right) {
			return right
		}
		return withPosition(e.evalBinary(node.Operator, left, right), node)
	case *ast.TranspositionExpression:
		return e.evalTransposition(node)
	case *ast.NegationExpression:
		return e.evalNegation(node)
	case *ast.FunctionCall:
		return e.evalFunctionCall(node)
	case *ast.AccessExpression:
		return e.evalAccess(node)
	case *ast.MatrixLiteral:
		return e.evalMatrix(node)
	case *ast.SequenceLiteral:
		elems, err := e.evalElements(node.Elements)
		if err != nil {
			return err
		}
		return &Vector{Elements: elems}
	}
	return newErrorAt(node, "cannot evaluate node %T", node)
}
