package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/matx/internal/analyzer"
	"github.com/funvibe/matx/internal/backend"
	"github.com/funvibe/matx/internal/config"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/evaluator"
	"github.com/funvibe/matx/internal/lexer"
	"github.com/funvibe/matx/internal/parser"
	"github.com/funvibe/matx/internal/pipeline"
	"github.com/funvibe/matx/internal/prettyprinter"
)

const (
	promptMain = "matx> "
	promptCont = "....> "
	banner     = "matx interactive session. Type :help for help, :quit to leave."
)

const helpText = `Statements end with ';'. Bindings persist between inputs.

  :help         show this text
  :quit         leave the session
  :reset        forget every binding
  :env          show bindings with their values and types
  :ast <code>   print the syntax tree of code
`

// session checks and runs REPL inputs against persistent scopes.
type session struct {
	checker  *analyzer.Analyzer
	eval     *evaluator.Evaluator
	settings config.Settings
	logger   *slog.Logger
	out      io.Writer
	printer  *diagnostics.Printer
}

func newSession(settings config.Settings, logger *slog.Logger, out, errOut io.Writer) *session {
	return &session{
		checker:  analyzer.NewSession(logger),
		eval:     evaluator.NewSession(logger),
		settings: settings,
		logger:   logger,
		out:      out,
		printer:  diagnostics.NewPrinter(errOut, settings.Color),
	}
}

// handle processes one complete input and reports whether the session
// should end.
func (s *session) handle(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ":") {
		return s.command(trimmed)
	}
	s.execute(input)
	return false
}

func (s *session) command(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		fmt.Fprint(s.out, helpText)
	case ":quit", ":exit":
		return true
	case ":reset":
		s.checker.Reset()
		s.eval.Reset()
		fmt.Fprintln(s.out, "session reset.")
	case ":env":
		s.printEnv()
	case ":ast":
		code := strings.TrimSpace(strings.TrimPrefix(line, ":ast"))
		if code == "" {
			fmt.Fprintln(s.out, "usage: :ast <code>")
			return false
		}
		s.printTree(code)
	default:
		fmt.Fprintln(s.out, "unknown command. Type :help for help.")
	}
	return false
}

func (s *session) execute(input string) {
	ctx := s.newContext(input)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	exec := backend.NewExecutionProcessor(&backend.TreeWalkBackend{Evaluator: s.eval, Context: sigCtx})

	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{Analyzer: s.checker},
		exec,
	).Run(ctx)
	printRuntimeErrors(s.printer, ctx.Errors)
}

func (s *session) printTree(code string) {
	ctx := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(s.newContext(code))
	if ctx.HasErrors() {
		s.printer.PrintAll(ctx.Errors)
		return
	}
	tp := prettyprinter.NewTreePrinter()
	ctx.AstRoot.Accept(tp)
	fmt.Fprint(s.out, tp.String())
}

func (s *session) printEnv() {
	types := s.checker.Bindings()
	values := s.eval.Bindings()
	bindings := make([]binding, 0, len(values))
	for name, val := range values {
		desc := val.Inspect()
		if t, ok := types[name]; ok {
			desc += " : " + t.String()
		}
		bindings = append(bindings, binding{Name: name, Value: desc})
	}
	printBindings(s.out, bindings)
}

func (s *session) newContext(source string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	ctx.Settings = s.settings
	ctx.Out = s.out
	ctx.SetLogger(s.logger)
	return ctx
}

func runREPL(settings config.Settings, logger *slog.Logger, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, config.HistoryFileName)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	s := newSession(settings, logger, stdout, stderr)
	for {
		input, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(stdout)
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		if s.handle(input) {
			break
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return exitOK
}

// readInput reads lines until every opened brace, bracket and parenthesis
// is closed. ok is false on end of input.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !isIncomplete(b.String()) {
			return b.String(), true
		}
	}
}

// isIncomplete reports whether src still has unclosed delimiters, ignoring
// strings and comments.
func isIncomplete(src string) bool {
	depth := 0
	inString, inComment := false, false
	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case inComment:
			if ch == '\n' {
				inComment = false
			}
		case inString:
			if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '#':
			inComment = true
		case ch == '{' || ch == '[' || ch == '(':
			depth++
		case ch == '}' || ch == ']' || ch == ')':
			depth--
		}
	}
	return depth > 0
}
