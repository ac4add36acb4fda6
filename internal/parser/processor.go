package parser

import (
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/pipeline"
	"github.com/funvibe/matx/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Name() string { return "parser" }

// Process runs even after lexer errors: illegal characters are already
// dropped from the stream, and syntax errors are worth reporting with them.
func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// This case should ideally not be hit if lexer runs first, but as a safeguard:
		ctx.AddError(diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil"))
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	ctx.AstRoot = parser.ParseProgram()
	return ctx
}
