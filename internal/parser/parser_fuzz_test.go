package parser_test

import (
	"testing"

	"github.com/funvibe/matx/internal/lexer"
	"github.com/funvibe/matx/internal/parser"
	"github.com/funvibe/matx/internal/pipeline"
)

// FuzzParser feeds arbitrary source to the parser. Clean parses must print
// back to source that parses to the same program.
func FuzzParser(f *testing.F) {
	f.Add("x = (a + b) * c;")
	f.Add("m = [1, 2.5, 3; 4, -5, 6e2];")
	f.Add("for k = n:1:-1 { while (k > 0) { k -= 1; continue; } }")
	f.Add("if (a <= b) { } else print a;")
	f.Add("v[0, 1] += eye(3)';")
	f.Add("x = ;")

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
		if ctx.AstRoot == nil {
			t.Fatalf("no program and no errors for %q", input)
		}

		first := sourceOf(ctx.AstRoot)
		second := sourceOf(mustParse(t, first))
		if first != second {
			t.Errorf("round trip of %q changed:\n%s\n---\n%s", input, first, second)
		}
	})
}
