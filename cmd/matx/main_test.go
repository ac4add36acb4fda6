package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/matx/internal/config"
	"github.com/funvibe/matx/internal/diagnostics"
)

var update = flag.Bool("update", false, "update golden files")

const argsPrefix = "# args:"

// runMain runs the CLI and reports its output and exit code.
func runMain(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestGolden runs every testdata/*.m program. A first line "# args: ..."
// passes extra flags.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.m"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden programs found")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".m")
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			var args []string
			first, _, _ := strings.Cut(string(source), "\n")
			if strings.HasPrefix(first, argsPrefix) {
				args = strings.Fields(strings.TrimPrefix(first, argsPrefix))
			}
			args = append(args, filepath.ToSlash(file))

			stdout, stderr, code := runMain(t, "", args...)
			actual := fmt.Sprintf("%s--- stderr\n%s--- exit %d\n", stdout, stderr, code)

			wantFile := strings.TrimSuffix(file, ".m") + ".want"
			if *update {
				if err := os.WriteFile(wantFile, []byte(actual), 0644); err != nil {
					t.Fatalf("failed to update golden file: %v", err)
				}
				return
			}
			want, err := os.ReadFile(wantFile)
			if err != nil {
				t.Fatalf("failed to read golden file %s: %v", wantFile, err)
			}
			if actual != string(want) {
				t.Errorf("output mismatch for %s\n--- want ---\n%s\n--- got ---\n%s", file, want, actual)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	prog := writeFile(t, dir, "prog.m", "print 1;")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"ok", []string{prog}, exitOK},
		{"help", []string{"-h"}, exitOK},
		{"unknown flag", []string{"-nope", prog}, exitUsage},
		{"two files", []string{prog, prog}, exitUsage},
		{"bad color", []string{"-color", "pink", prog}, exitUsage},
		{"missing config", []string{"-config", filepath.Join(dir, "none.yaml"), prog}, exitUsage},
		{"missing file", []string{filepath.Join(dir, "missing.m")}, exitIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runMain(t, "", tt.args...)
			if code != tt.want {
				t.Errorf("exit %d, want %d (stderr %q)", code, tt.want, stderr)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	prog := writeFile(t, t.TempDir(), "prog.m", "a = 1;")
	stdout, stderr, code := runMain(t, "", "-tokens", prog)
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	want := "(1,1): ID(a)\n(1,3): =(=)\n(1,5): INT(1)\n(1,6): ;(;)\n"
	if stdout != want {
		t.Errorf("tokens:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestTypes(t *testing.T) {
	prog := writeFile(t, t.TempDir(), "prog.m", "v = [1, 2, 3];\nn = 4;\nm = zeros(2);")
	stdout, stderr, code := runMain(t, "", "-types", "-check", prog)
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for _, fragment := range []string{`"v"`, "Vector[3]", `"n"`, "Int(4)", "Matrix[2,2]"} {
		if !strings.Contains(stdout, fragment) {
			t.Errorf("-types output lacks %q:\n%s", fragment, stdout)
		}
	}
	if strings.Index(stdout, `"m"`) > strings.Index(stdout, `"n"`) {
		t.Errorf("bindings are not sorted by name:\n%s", stdout)
	}
}

func TestStdin(t *testing.T) {
	stdout, stderr, code := runMain(t, "x = 1 + 2;\nprint x;\nprint y;")
	if code != exitFailed {
		t.Fatalf("exit %d, want %d", code, exitFailed)
	}
	if stdout != "" {
		t.Errorf("program ran despite check errors: %q", stdout)
	}
	if stderr != "Variable y not initialized at line 3\n" {
		t.Errorf("stderr %q", stderr)
	}

	stdout, _, code = runMain(t, "print 1 + 2;")
	if code != exitOK || stdout != "3\n" {
		t.Errorf("got %q, exit %d", stdout, code)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "matx.yaml", "print_separator: \"|\"\ncolor: never\n")
	prog := writeFile(t, dir, "prog.m", "print 1, 2.5, \"s\";")

	stdout, stderr, code := runMain(t, "", prog)
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if stdout != "1|2.5|s\n" {
		t.Errorf("stdout %q", stdout)
	}

	writeFile(t, dir, "matx.yaml", "max_matrix_size: 2\ncolor: never\n")
	writeFile(t, dir, "prog.m", "print eye(2);\nm = zeros(3);")
	stdout, stderr, code = runMain(t, "", prog)
	if code != exitFailed || stdout != "" || !strings.Contains(stderr, "size 3 above limit 2 at line 2") {
		t.Errorf("max_matrix_size: exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}

	writeFile(t, dir, "matx.yaml", "max_eval_depth: -1\n")
	if _, _, code := runMain(t, "", prog); code != exitUsage {
		t.Errorf("invalid config: exit %d, want %d", code, exitUsage)
	}
}

func TestParseErrors(t *testing.T) {
	prog := writeFile(t, t.TempDir(), "prog.m", "x = ;\nprint 1;")
	stdout, stderr, code := runMain(t, "", "-color", "never", prog)
	if code != exitFailed {
		t.Fatalf("exit %d, want %d", code, exitFailed)
	}
	if stdout != "" {
		t.Errorf("stdout %q", stdout)
	}
	if !strings.HasPrefix(stderr, prog+": ") || !strings.Contains(stderr, "at line 1") {
		t.Errorf("stderr %q", stderr)
	}
}

func newTestSession() (*session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	settings := config.DefaultSettings()
	settings.Color = diagnostics.ColorNever
	return newSession(settings, nil, &out, &errOut), &out, &errOut
}

func TestSessionPersistsBindings(t *testing.T) {
	s, out, errOut := newTestSession()
	for _, input := range []string{"x = [1, 2];", "x = x .* 3;", "print x;"} {
		if s.handle(input) {
			t.Fatalf("%q ended the session", input)
		}
	}
	if errOut.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %s", errOut)
	}
	if out.String() != "[3, 6]\n" {
		t.Errorf("output %q", out)
	}

	out.Reset()
	s.handle(":env")
	if !strings.Contains(out.String(), "[3, 6] : Vector[2]") {
		t.Errorf(":env output %q", out)
	}
}

func TestSessionErrorsKeepState(t *testing.T) {
	s, out, errOut := newTestSession()
	s.handle("a = 2;")
	s.handle("b = a + q;")
	if !strings.Contains(errOut.String(), "Variable q not initialized at line 1") {
		t.Errorf("missing check error: %q", errOut)
	}

	errOut.Reset()
	s.handle("for k = 0:0 { z = a / k; }")
	if !strings.Contains(errOut.String(), "internal error: division by zero at line 1") {
		t.Errorf("missing runtime fault: %q", errOut)
	}

	errOut.Reset()
	s.handle("print a;")
	if errOut.Len() > 0 || out.String() != "2\n" {
		t.Errorf("session lost a: out %q, errors %q", out, errOut)
	}
}

func TestSessionCommands(t *testing.T) {
	s, out, errOut := newTestSession()

	s.handle("x = 1;")
	s.handle(":reset")
	s.handle("print x;")
	if !strings.Contains(errOut.String(), "Variable x not initialized") {
		t.Errorf("binding survived :reset: %q", errOut)
	}

	out.Reset()
	s.handle(":ast a = 5;")
	if out.String() != "=\n| a\n| 5\n" {
		t.Errorf(":ast output %q", out)
	}

	out.Reset()
	s.handle(":bogus")
	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("unknown command output %q", out)
	}

	if s.handle("   ") {
		t.Error("blank input ended the session")
	}
	if !s.handle(":quit") || !s.handle(":exit") {
		t.Error(":quit and :exit must end the session")
	}
}

func TestIsIncomplete(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"x = 1;", false},
		{"for i = 1:3 {", true},
		{"for i = 1:3 {\n print i;\n}", false},
		{"v = [1, 2,", true},
		{`s = "{[(";`, false},
		{"# {\nx = 1;", false},
	}
	for _, tt := range tests {
		if got := isIncomplete(tt.input); got != tt.want {
			t.Errorf("isIncomplete(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
