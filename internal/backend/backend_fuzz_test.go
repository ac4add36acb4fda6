package backend_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/funvibe/matx/internal/analyzer"
	"github.com/funvibe/matx/internal/backend"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/lexer"
	"github.com/funvibe/matx/internal/parser"
	"github.com/funvibe/matx/internal/pipeline"
)

// FuzzExecution runs programs that pass the checker. Execution may fault,
// but only through an R001 diagnostic.
func FuzzExecution(f *testing.F) {
	f.Add("m = eye(3); m[0, 2] = 7; print m';")
	f.Add("v = [1, 2]; i = 0; while (i < 5) { print v[i]; i += 1; }")
	f.Add("for k = 0:0 { z = 1 / k; }")
	f.Add("s = \"ab\" * 3; print s, [s, 1.5];")
	f.Add("n = 1; while (1 == 1) n += 1;")

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 2000 {
			return
		}
		runCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		ctx := pipeline.NewPipelineContext(input)
		ctx.Out = io.Discard
		ctx = pipeline.New(
			&lexer.LexerProcessor{},
			&parser.ParserProcessor{},
			&analyzer.SemanticAnalyzerProcessor{},
		).Run(ctx)
		if ctx.HasErrors() {
			return
		}

		exec := backend.NewExecutionProcessor(&backend.TreeWalkBackend{Context: runCtx})
		ctx = exec.Process(ctx)
		for _, err := range ctx.Errors {
			if err.Code != diagnostics.ErrR001 {
				t.Errorf("%q: unexpected %s after a clean check: %v", input, err.Code, err)
			}
		}
	})
}
