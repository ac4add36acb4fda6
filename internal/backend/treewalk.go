package backend

import (
	"context"
	"fmt"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/evaluator"
	"github.com/funvibe/matx/internal/pipeline"
)

// TreeWalkBackend runs programs on the tree-walk evaluator.
type TreeWalkBackend struct {
	// Evaluator is reused across runs when set, as in a REPL session.
	Evaluator *evaluator.Evaluator
	// Context cancels a running program.
	Context context.Context
}

// NewTreeWalk creates a new tree-walk backend
func NewTreeWalk() *TreeWalkBackend {
	return &TreeWalkBackend{}
}

// Run executes the program using tree-walk interpretation
func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) (evaluator.Object, error) {
	if ctx.AstRoot == nil {
		return nil, fmt.Errorf("no AST to execute")
	}
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("cannot execute %T", ctx.AstRoot)
	}

	eval := b.Evaluator
	if eval == nil {
		eval = evaluator.New(ctx.Logger())
	}
	eval.Configure(ctx.Settings)
	if ctx.Out != nil {
		eval.Out = ctx.Out
	}
	eval.Context = b.Context

	return eval.Run(program)
}

// Name returns the backend name
func (b *TreeWalkBackend) Name() string {
	return "tree-walk"
}
