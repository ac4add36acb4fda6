package pipeline

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/token"
	"github.com/funvibe/matx/internal/typesystem"
)

// TokenStream is the lexer output consumed by the parser.
type TokenStream interface {
	Next() token.Token
	Peek(n int) []token.Token
}

// PipelineContext carries the state shared by all pipeline stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string
	RunID      uuid.UUID

	TokenStream TokenStream
	AstRoot     ast.Node
	Errors      []*diagnostics.DiagnosticError

	// TypeMap holds the type inferred for every checked node.
	TypeMap map[ast.Node]typesystem.Type
	// ProgramTypes is the program-level scope as the checker left it.
	ProgramTypes map[string]typesystem.Type

	Settings config.Settings
	Out      io.Writer

	logger *slog.Logger
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		RunID:      uuid.New(),
		Settings:   config.DefaultSettings(),
		Out:        os.Stdout,
	}
}

// SetLogger installs logger, tagged with this run's ID.
func (ctx *PipelineContext) SetLogger(logger *slog.Logger) {
	if logger == nil {
		ctx.logger = nil
		return
	}
	ctx.logger = logger.With(slog.String("run", ctx.RunID.String()))
}

// Logger returns the trace logger; a discarding logger when none is set.
func (ctx *PipelineContext) Logger() *slog.Logger {
	if ctx.logger == nil {
		ctx.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return ctx.logger
}

// AddError records err, defaulting its file to the context's file.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}

// HasErrors reports whether any stage has failed.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
