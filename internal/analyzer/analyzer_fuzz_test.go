package analyzer_test

import (
	"testing"

	"github.com/funvibe/matx/internal/analyzer"
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/lexer"
	"github.com/funvibe/matx/internal/parser"
	"github.com/funvibe/matx/internal/pipeline"
)

// FuzzCheck checks every parseable input twice with the same analyzer and
// requires identical diagnostics.
func FuzzCheck(f *testing.F) {
	f.Add("a = [1, 2, 3] .+ [1, 2];")
	f.Add("v = [10, 20, 30]; x = v[3]; y = v[-1];")
	f.Add("m = zeros(2); m = m'; x = m[1, 1] + q;")
	f.Add("for i = 1:3 { if (i == 2) break; s = \"ab\" * i; }")
	f.Add("continue; x = -\"s\";")

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 2000 {
			return
		}
		ctx := pipeline.NewPipelineContext(input)
		ctx = (&lexer.LexerProcessor{}).Process(ctx)
		ctx = (&parser.ParserProcessor{}).Process(ctx)
		if len(ctx.Errors) > 0 {
			return
		}
		program := ctx.AstRoot.(*ast.Program)

		a := analyzer.New(nil)
		first := a.Analyze(program)
		second := a.Analyze(program)
		if len(first) != len(second) {
			t.Fatalf("%q: %d diagnostics, then %d", input, len(first), len(second))
		}
		for i := range first {
			if first[i].Code != second[i].Code || first[i].Error() != second[i].Error() {
				t.Errorf("%q: diagnostic %d changed: %v -> %v", input, i, first[i], second[i])
			}
		}
	})
}
