package analyzer

import (
	"github.com/funvibe/matx/internal/pipeline"
)

// SemanticAnalyzerProcessor checks ctx.AstRoot. With Analyzer set (a REPL
// session) the same analyzer serves every run; otherwise each run gets a
// fresh one.
type SemanticAnalyzerProcessor struct {
	Analyzer *Analyzer
}

func (sap *SemanticAnalyzerProcessor) Name() string { return "analyzer" }

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}

	analyzer := sap.Analyzer
	if analyzer == nil {
		analyzer = New(ctx.Logger())
	}
	analyzer.File = ctx.FilePath
	if ctx.Settings.MaxMatrixSize > 0 {
		analyzer.MaxMatrixSize = ctx.Settings.MaxMatrixSize
	}
	errors := analyzer.Analyze(ctx.AstRoot)

	ctx.TypeMap = analyzer.TypeMap
	ctx.ProgramTypes = analyzer.ProgramTypes
	for _, err := range errors {
		ctx.AddError(err)
	}
	return ctx
}
