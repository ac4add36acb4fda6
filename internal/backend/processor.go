package backend

import (
	"errors"

	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/evaluator"
	"github.com/funvibe/matx/internal/pipeline"
	"github.com/funvibe/matx/internal/token"
)

// ExecutionProcessor is the pipeline stage that runs a Backend
type ExecutionProcessor struct {
	Backend Backend
	// Result holds the value of a program-level return after Process.
	Result evaluator.Object
}

// NewExecutionProcessor creates a new pipeline step for the given backend
func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Name() string { return "execute:" + p.Backend.Name() }

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If previous steps failed, don't run execution
	p.Result = nil
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	result, err := p.Backend.Run(ctx)
	if err != nil {
		p.handleError(ctx, err)
		return ctx
	}
	p.Result = result
	return ctx
}

// handleError turns a runtime fault into an R001 diagnostic at the fault's
// position.
func (p *ExecutionProcessor) handleError(ctx *pipeline.PipelineContext, err error) {
	var rtErr *evaluator.Error
	if errors.As(err, &rtErr) {
		tok := token.Token{Line: rtErr.Line, Column: rtErr.Column}
		ctx.AddError(diagnostics.NewError(diagnostics.ErrR001, tok, "%s", rtErr.Message))
		return
	}
	ctx.AddError(diagnostics.NewError(diagnostics.ErrR001, token.Token{}, "%s", err.Error()))
}
