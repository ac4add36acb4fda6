package pipeline

import "log/slog"

// Processor is a single stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx.Logger().Debug("stage start",
			slog.String("stage", stageName(processor)),
			slog.Int("errors", len(ctx.Errors)))
		ctx = processor.Process(ctx)
		// Later stages inspect ctx.Errors themselves; the lexer and parser
		// both run so that all syntax errors are reported together.
	}
	ctx.Logger().Debug("pipeline done", slog.Int("errors", len(ctx.Errors)))
	return ctx
}

type namedProcessor interface {
	Name() string
}

func stageName(p Processor) string {
	if n, ok := p.(namedProcessor); ok {
		return n.Name()
	}
	return "processor"
}
