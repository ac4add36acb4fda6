package analyzer_test

import (
	"strings"
	"testing"

	"github.com/funvibe/matx/internal/analyzer"
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/lexer"
	"github.com/funvibe/matx/internal/parser"
	"github.com/funvibe/matx/internal/pipeline"
	"github.com/funvibe/matx/internal/token"
)

func runAnalyzer(t *testing.T, input string) *pipeline.PipelineContext {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("parse errors: %v", ctx.Errors)
	}
	return (&analyzer.SemanticAnalyzerProcessor{}).Process(ctx)
}

func expectNoErrors(t *testing.T, input string) *pipeline.PipelineContext {
	t.Helper()
	ctx := runAnalyzer(t, input)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, e := range ctx.Errors {
			msgs = append(msgs, string(e.Code)+": "+e.Error())
		}
		t.Fatalf("unexpected errors for %q:\n%s", input, strings.Join(msgs, "\n"))
	}
	return ctx
}

func expectAnalyzerError(t *testing.T, input string, code diagnostics.ErrorCode, line int, fragment string) {
	t.Helper()
	ctx := runAnalyzer(t, input)
	for _, e := range ctx.Errors {
		if e.Code == code && e.Token.Line == line && strings.Contains(e.Message, fragment) {
			return
		}
	}
	var msgs []string
	for _, e := range ctx.Errors {
		msgs = append(msgs, string(e.Code)+": "+e.Error())
	}
	t.Errorf("expected %s at line %d containing %q for %q, got:\n%s", code, line, fragment, input, strings.Join(msgs, "\n"))
}

func programType(t *testing.T, ctx *pipeline.PipelineContext, name string) string {
	t.Helper()
	typ, ok := ctx.ProgramTypes[name]
	if !ok {
		t.Fatalf("%s is not bound at program level", name)
	}
	return typ.String()
}

func TestInferredTypes(t *testing.T) {
	tests := []struct {
		input string
		name  string
		want  string
	}{
		{"a = 2 + 3 * 4;", "a", "Int(14)"},
		{"a = 7 / 2;", "a", "Int(3)"},
		{"a = -7 / 2;", "a", "Int(-3)"},
		{"a = 1 + 0.5;", "a", "Float(1.5)"},
		{"a = -2.5;", "a", "Float(-2.5)"},
		{"s = \"ab\" + \"cd\";", "s", `String("abcd")`},
		{"s = \"ab\" * 3;", "s", `String("ababab")`},
		{"s = 2 * \"x\";", "s", `String("xx")`},
		{"v = [1, 2, 3];", "v", "Vector[3]"},
		{"v = [1, 2] .+ [3, 4];", "v", "Vector[2]"},
		{"v = [1, 2] .* 2;", "v", "Vector[2]"},
		{"m = [1, 2, 3; 4, 5, 6];", "m", "Matrix[2,3]"},
		{"m = [1, 2, 3; 4, 5, 6]';", "m", "Matrix[3,2]"},
		{"m = eye(3);", "m", "Matrix[3,3]"},
		{"m = zeros(2) .- ones(2);", "m", "Matrix[2,2]"},
		{"n = 3; m = zeros(n);", "m", "Matrix[3,3]"},
		{"m = 1 ./ eye(4);", "m", "Matrix[4,4]"},
		{"m = [1, 2; 3, 4]; x = m[1, 0];", "x", "Int"},
		{"v = [1, 2.5]; x = v[1];", "x", "Float"},
		{"a = 1; a += 2;", "a", "Int(3)"},
		{"a = 1; a *= 2.0;", "a", "Float(2)"},
		{"c = 0; if (1 < 2) c = 1;", "c", "Int"},
		{"s = \"ab\" * 9223372036854775807;", "s", "String"},
		{"s = \"\" * 9223372036854775807;", "s", `String("")`},
		{"s = \"ab\" * -2;", "s", `String("")`},
	}
	for _, tt := range tests {
		ctx := expectNoErrors(t, tt.input)
		if got := programType(t, ctx, tt.name); got != tt.want {
			t.Errorf("%s: %s = %s, want %s", tt.input, tt.name, got, tt.want)
		}
	}
}

func TestDimensionMismatch(t *testing.T) {
	ctx := runAnalyzer(t, "v = [1, 2, 3] .+ [1, 2];")
	if len(ctx.Errors) != 1 || ctx.Errors[0].Code != diagnostics.ErrA003 {
		t.Fatalf("expected one A003, got %v", ctx.Errors)
	}
	if got := programType(t, ctx, "v"); got != "Unknown" {
		t.Errorf("v = %s, want Unknown", got)
	}
	if !strings.Contains(ctx.Errors[0].Error(), "Vector[3] and Vector[2] don't have the same sizes at line 1") {
		t.Errorf("unexpected message %q", ctx.Errors[0].Error())
	}

	expectAnalyzerError(t, "a = eye(2) .* zeros(3);", diagnostics.ErrA003, 1, "Matrix[2,2] and Matrix[3,3]")
	expectAnalyzerError(t, "a = [1, 2];\nif (a == [1, 2, 3]) print 1;", diagnostics.ErrA003, 2, "same sizes")
}

func TestOperatorTypes(t *testing.T) {
	expectAnalyzerError(t, "a = \"s\" - 1;", diagnostics.ErrA002, 1, "Types String and Int cannot perform operation -")
	expectAnalyzerError(t, "a = \"s\" * \"t\";", diagnostics.ErrA002, 1, "operation *")
	expectAnalyzerError(t, "a = [1, 2] + [3, 4];", diagnostics.ErrA002, 1, "operation +")
	expectAnalyzerError(t, "a = \"s\" .+ [1];", diagnostics.ErrA002, 1, "operation .+")
	expectAnalyzerError(t, "a = [1] .* eye(1);", diagnostics.ErrA002, 1, "operation .*")
	expectAnalyzerError(t, "if (\"a\" < 1) print 1;", diagnostics.ErrA002, 1, "operation <")
	expectAnalyzerError(t, "a = 1 / 0;", diagnostics.ErrA016, 1, "Division by zero")
	expectAnalyzerError(t, "a = 1.5 / (2 - 2);", diagnostics.ErrA016, 1, "Division by zero")
	expectAnalyzerError(t, "a = [1, 2] ./ 0;", diagnostics.ErrA016, 1, "Division by zero")
}

func TestUnknownAbsorbsErrors(t *testing.T) {
	ctx := runAnalyzer(t, "a = b + 1;\nc = a * \"s\";\nd = a[0] .+ [1];")
	if len(ctx.Errors) != 1 {
		t.Fatalf("expected only the uninitialized b, got %v", ctx.Errors)
	}
	if ctx.Errors[0].Code != diagnostics.ErrA001 || ctx.Errors[0].Message != "Variable b not initialized" {
		t.Errorf("unexpected error %v", ctx.Errors[0])
	}
	ctx = runAnalyzer(t, "if (q < 1) print 1;")
	cond := ctx.AstRoot.(*ast.Program).Statements[0].(*ast.IfStatement).Condition
	if got := ctx.TypeMap[cond]; got == nil || got.String() != "Unknown" {
		t.Errorf("comparison with an unknown operand = %v, want Unknown", got)
	}
}

func TestIndexing(t *testing.T) {
	expectNoErrors(t, "v = [1, 2, 3]; v[0] = 10; x = v[2]; i = 5; i -= 5; y = v[i];")
	expectNoErrors(t, "m = zeros(3); for i = 0:2 m[i, i] = 1;")
	expectNoErrors(t, "n = 2; n += n; m = zeros(n); x = m[3, 3];")
	expectAnalyzerError(t, "v = [1, 2, 3];\nx = v[3];", diagnostics.ErrA006, 2, "Index out of boundaries")
	expectAnalyzerError(t, "v = [1, 2, 3];\nx = v[-1];", diagnostics.ErrA007, 2, "Negative index -1")
	expectAnalyzerError(t, "v = [1, 2, 3];\nx = v[1.5];", diagnostics.ErrA008, 2, "Index must be Int, got Float")
	expectAnalyzerError(t, "v = [1, 2, 3];\nx = v[0, 1];", diagnostics.ErrA005, 2, "Vector needs 1 index")
	expectAnalyzerError(t, "m = eye(2);\nx = m[1];", diagnostics.ErrA005, 2, "Matrix needs 2 indexes")
	expectAnalyzerError(t, "m = [1, 2, 3; 4, 5, 6];\nx = m[2, 0];", diagnostics.ErrA006, 2, "2 not below 2")
	expectAnalyzerError(t, "m = [1, 2, 3; 4, 5, 6];\nx = m[1, 3];", diagnostics.ErrA006, 2, "3 not below 3")
	expectAnalyzerError(t, "s = 1;\nx = s[0];", diagnostics.ErrA009, 2, "Int cannot be indexed")
	expectAnalyzerError(t, "v = [1];\nv[4] = 2;", diagnostics.ErrA006, 2, "Index out of boundaries")
}

func TestMatrixLiteralRows(t *testing.T) {
	expectAnalyzerError(t, "m = [1, 2; 3];", diagnostics.ErrA011, 1, "incompatible vectors")
	ctx := runAnalyzer(t, "m = [1, 2; 3];")
	if got := programType(t, ctx, "m"); got != "Matrix[?,?]" {
		t.Errorf("m = %s, want Matrix[?,?]", got)
	}
}

func TestTranspositionAndNegation(t *testing.T) {
	expectAnalyzerError(t, "v = [1, 2]';", diagnostics.ErrA013, 1, "Transposition of Vector[2]")
	expectAnalyzerError(t, "s = -\"a\";", diagnostics.ErrA014, 1, "Negation of String")
	expectNoErrors(t, "m = -eye(2);")
}

func TestBuiltinArguments(t *testing.T) {
	expectAnalyzerError(t, "m = zeros(-1);", diagnostics.ErrA010, 1, "negative size -1")
	expectAnalyzerError(t, "m = ones(\"3\");", diagnostics.ErrA010, 1, "wrong parameter String")
	expectAnalyzerError(t, "m = eye(2.0);", diagnostics.ErrA010, 1, "wrong parameter Float")
	expectAnalyzerError(t, "m = zeros(3000000000);", diagnostics.ErrA010, 1, "size 3000000000 above limit 1024")
	expectNoErrors(t, "m = ones(1024);")

	program := parseProgram(t, "m = eye(3);")
	a := analyzer.New(nil)
	a.MaxMatrixSize = 2
	if errs := a.Analyze(program); len(errs) != 1 || errs[0].Code != diagnostics.ErrA010 {
		t.Errorf("eye(3) with a limit of 2: %v", errs)
	}
	ctx := expectNoErrors(t, "n = 0; m = eye(n);")
	if got := programType(t, ctx, "m"); got != "Matrix[0,0]" {
		t.Errorf("m = %s", got)
	}
}

func TestLoopControl(t *testing.T) {
	expectAnalyzerError(t, "a = 1;\nbreak;", diagnostics.ErrA004, 2, "Break outside of loop")
	expectAnalyzerError(t, "if (1 > 0) continue;", diagnostics.ErrA004, 1, "Continue outside of loop")
	expectNoErrors(t, "for i = 1:3 { if (i == 2) break; else continue; }")
	expectNoErrors(t, "while (1 > 0) { { break; } }")
}

func TestRanges(t *testing.T) {
	expectAnalyzerError(t, "for i = 1:2.5 print i;", diagnostics.ErrA015, 1, "got Float")
	expectAnalyzerError(t, "for i = \"a\":3:1 print i;", diagnostics.ErrA015, 1, "got String")
	expectNoErrors(t, "n = 10; for i = n:0:-2 print i;")
}

func TestCompoundAssignment(t *testing.T) {
	expectAnalyzerError(t, "x += 1;", diagnostics.ErrA012, 1, "Variable x not initialized before +=")
	expectAnalyzerError(t, "s = \"a\";\ns -= 1;", diagnostics.ErrA002, 2, "operation -")
	expectNoErrors(t, "v = [1, 2]; v[0] += 3; v = v .* 2;")
}

func TestScopes(t *testing.T) {
	// Assignment rebinds the outer variable instead of shadowing it.
	ctx := expectNoErrors(t, "a = 1; for i = 1:3 { a = 2.5; }")
	if got := programType(t, ctx, "a"); got != "Float" {
		t.Errorf("a = %s: a loop may or may not run, Int joined with Float is Float", got)
	}

	ctx = expectNoErrors(t, "a = 1; if (a > 0) { a = 2; }")
	if got := programType(t, ctx, "a"); got != "Int" {
		t.Errorf("a = %s, want Int", got)
	}

	// Names first bound inside an if are gone after it.
	expectAnalyzerError(t, "if (1 > 0) { b = 1; }\nc = b;", diagnostics.ErrA001, 2, "Variable b not initialized")
	expectAnalyzerError(t, "for i = 1:3 { t = i; }\nprint t;", diagnostics.ErrA001, 2, "Variable t not initialized")
	expectAnalyzerError(t, "{ k = 1; }\nprint k;", diagnostics.ErrA001, 2, "Variable k not initialized")
}

func TestPathsWithUnrelatedKinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fragment string
	}{
		{"if", "a = 1;\nif (1 < 2) { a = \"s\"; }\nb = a - 1;", "Variable a may hold String or Int"},
		{"if else", "a = 0;\nif (1 < 2) a = [1, 2]; else a = \"s\";\nb = a - 1;", "Variable a may hold Vector[2] or String"},
		{"for", "a = 1;\nfor i = 1:2 { a = \"s\"; }\nb = a - 1;", "Variable a may hold String or Int"},
		{"while", "a = eye(2);\nwhile (1 < 2) { a = 3; break; }\nb = a';", "Variable a may hold Int or Matrix[2,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := runAnalyzer(t, tt.input)
			if len(ctx.Errors) != 1 {
				t.Fatalf("expected one error, got %v", ctx.Errors)
			}
			err := ctx.Errors[0]
			if err.Code != diagnostics.ErrA017 || err.Token.Line != 2 || !strings.Contains(err.Message, tt.fragment) {
				t.Errorf("unexpected error %s: %v", err.Code, err)
			}
		})
	}

	// Numbers join to Float and Unknown stays silent.
	expectNoErrors(t, "a = 1;\nif (1 < 2) a = 0.5;\nb = a - 1;")
	ctx := runAnalyzer(t, "a = q;\nif (1 < 2) a = \"s\";")
	if len(ctx.Errors) != 1 || ctx.Errors[0].Code != diagnostics.ErrA001 {
		t.Errorf("unexpected errors %v", ctx.Errors)
	}

	// Two names in the same statement are both reported.
	ctx = runAnalyzer(t, "a = 1; b = 2;\nif (1 < 2) { a = \"s\"; b = \"t\"; }")
	if len(ctx.Errors) != 2 || !strings.Contains(ctx.Errors[0].Message, "Variable a") || !strings.Contains(ctx.Errors[1].Message, "Variable b") {
		t.Errorf("unexpected errors %v", ctx.Errors)
	}
}

func TestLoopsForgetFoldedValues(t *testing.T) {
	// The body runs more than once, so i is not the constant 0 on later
	// iterations and 10 / i must not be flagged.
	expectNoErrors(t, "i = 1; while (i < 4) { x = 10 / i; i -= 1; i += 2; }")
	expectNoErrors(t, "i = 0; for k = 1:3 { i += 1; }\nx = 10 / (i - 1);")
	expectNoErrors(t, "d = 0; if (1 > 2) d = 1; else d = 2;\nx = 1 / (d - 1);")

	ctx := expectNoErrors(t, "x = 1; if (1 > 0) x = 1; else x = 1;")
	if got := programType(t, ctx, "x"); got != "Int(1)" {
		t.Errorf("x = %s, agreeing branches keep the constant", got)
	}
}

func TestDiagnosticsAreSortedAndStable(t *testing.T) {
	input := "a = q;\nb = [1, 2] .+ [1];\nbreak;\nc = r + s;"
	first := runAnalyzer(t, input).Errors
	second := runAnalyzer(t, input).Errors
	if len(first) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(first), first)
	}
	for i := range first {
		if first[i].Error() != second[i].Error() || first[i].Code != second[i].Code {
			t.Errorf("run differs at %d: %v vs %v", i, first[i], second[i])
		}
		if i > 0 && first[i-1].Token.Line > first[i].Token.Line {
			t.Errorf("errors not sorted: %v", first)
		}
	}

	// The same Analyzer checking the same tree twice gives the same result.
	program := parseProgram(t, input)
	a := analyzer.New(nil)
	x := a.Analyze(program)
	y := a.Analyze(program)
	if len(x) != len(y) {
		t.Fatalf("%d vs %d errors", len(x), len(y))
	}
}

func TestCheck(t *testing.T) {
	errs, hasErrors := analyzer.Check(parseProgram(t, "v = [1, 2, 3];\nprint v[3];"))
	if !hasErrors || len(errs) != 1 || errs[0].Code != diagnostics.ErrA006 {
		t.Errorf("unexpected result %v %v", errs, hasErrors)
	}
	if _, hasErrors := analyzer.Check(parseProgram(t, "v = [1, 2, 3];\nprint v[0];")); hasErrors {
		t.Errorf("well-typed program reported errors")
	}
}

func TestUnknownFunction(t *testing.T) {
	tok := token.Token{Type: token.IDENT, Lexeme: "rand", Line: 1, Column: 7}
	program := &ast.Program{Statements: []ast.Statement{
		&ast.PrintStatement{
			Token: token.Token{Type: token.PRINT, Lexeme: "print", Line: 1, Column: 1},
			Values: &ast.SequenceLiteral{Token: tok, Elements: []ast.Expression{
				&ast.FunctionCall{Token: tok, Function: "rand", Argument: &ast.IntegerLiteral{Token: tok, Value: 2}},
			}},
		},
	}}
	errs, hasErrors := analyzer.Check(program)
	if !hasErrors || len(errs) != 1 || errs[0].Error() != "Unknown function rand at line 1" {
		t.Errorf("unexpected result %v", errs)
	}
}

func TestSessionKeepsBindings(t *testing.T) {
	a := analyzer.NewSession(nil)
	if errs := a.Analyze(parseProgram(t, "x = [1, 2];")); len(errs) > 0 {
		t.Fatal(errs)
	}
	if errs := a.Analyze(parseProgram(t, "y = x .+ [3, 4];")); len(errs) > 0 {
		t.Fatal(errs)
	}
	if got := a.Bindings()["y"].String(); got != "Vector[2]" {
		t.Errorf("y = %s", got)
	}

	// A failed run leaves the session untouched.
	if errs := a.Analyze(parseProgram(t, "x = 5; z = q;")); len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if got := a.Bindings()["x"].String(); got != "Vector[2]" {
		t.Errorf("x = %s after failed run", got)
	}
	if _, ok := a.Bindings()["z"]; ok {
		t.Errorf("z leaked from a failed run")
	}

	a.Reset()
	if len(a.Bindings()) != 0 {
		t.Errorf("reset kept %v", a.Bindings())
	}
}

func TestTypeMapCoversExpressions(t *testing.T) {
	ctx := expectNoErrors(t, "a = [1, 2] .+ 3;")
	program := ctx.AstRoot.(*ast.Program)
	stmt := program.Statements[0].(*ast.AssignmentStatement)
	if got := ctx.TypeMap[stmt.Value]; got == nil || got.String() != "Vector[2]" {
		t.Errorf("type of value = %v", got)
	}
	bin := stmt.Value.(*ast.BinaryExpression)
	if got := ctx.TypeMap[bin.Right]; got == nil || got.String() != "Int(3)" {
		t.Errorf("type of right operand = %v", got)
	}
}

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("parse errors: %v", ctx.Errors)
	}
	return ctx.AstRoot.(*ast.Program)
}
