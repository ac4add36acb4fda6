package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/kr/pretty"

	"github.com/funvibe/matx/internal/analyzer"
	"github.com/funvibe/matx/internal/backend"
	"github.com/funvibe/matx/internal/config"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/lexer"
	"github.com/funvibe/matx/internal/parser"
	"github.com/funvibe/matx/internal/pipeline"
	"github.com/funvibe/matx/internal/prettyprinter"
	"github.com/funvibe/matx/internal/token"
	"github.com/funvibe/matx/internal/typesystem"
)

// Exit codes
const (
	exitOK      = 0
	exitFailed  = 1  // lexical, syntax or type errors
	exitRuntime = 2  // runtime fault
	exitUsage   = 64 // bad flags or config
	exitIO      = 66 // unreadable input
)

type options struct {
	check      bool
	ast        bool
	tokens     bool
	types      bool
	trace      bool
	color      string
	configPath string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("matx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.check, "check", false, "check the program without running it")
	fs.BoolVar(&opts.ast, "ast", false, "print the syntax tree and exit")
	fs.BoolVar(&opts.tokens, "tokens", false, "print the token stream and exit")
	fs.BoolVar(&opts.types, "types", false, "print the program-level types after checking")
	fs.BoolVar(&opts.trace, "trace", false, "write debug traces to stderr")
	fs.StringVar(&opts.color, "color", "", "color diagnostics: auto, always or never")
	fs.StringVar(&opts.configPath, "config", "", "path to "+config.ConfigFileName)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: matx [flags] [file%s]\n", config.SourceFileExt)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	path := fs.Arg(0)
	settings, err := loadSettings(opts, path)
	if err != nil {
		fmt.Fprintf(stderr, "matx: %v\n", err)
		return exitUsage
	}
	logger := newLogger(settings, stderr)

	if path == "" {
		if f, ok := stdin.(*os.File); ok && diagnostics.IsTerminal(f) {
			return runREPL(settings, logger, stdout, stderr)
		}
		source, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "matx: read stdin: %v\n", err)
			return exitIO
		}
		return runSource(string(source), "", opts, settings, logger, stdout, stderr)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "matx: %v\n", err)
		return exitIO
	}
	return runSource(string(source), path, opts, settings, logger, stdout, stderr)
}

// loadSettings reads the config file, searched next to the source file and
// then in the working directory, and applies the flags on top.
func loadSettings(opts options, path string) (config.Settings, error) {
	var dirs []string
	if path != "" {
		dirs = append(dirs, filepath.Dir(path))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	settings, err := config.Load(opts.configPath, dirs...)
	if err != nil {
		return settings, err
	}
	if opts.trace {
		settings.Trace = true
	}
	if opts.color != "" {
		switch opts.color {
		case diagnostics.ColorAuto, diagnostics.ColorAlways, diagnostics.ColorNever:
			settings.Color = opts.color
		default:
			return settings, fmt.Errorf("-color must be auto, always or never, got %q", opts.color)
		}
	}
	return settings, nil
}

func newLogger(settings config.Settings, stderr io.Writer) *slog.Logger {
	if !settings.Trace {
		return nil
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func runSource(source, path string, opts options, settings config.Settings, logger *slog.Logger, stdout, stderr io.Writer) int {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path
	ctx.Settings = settings
	ctx.Out = stdout
	ctx.SetLogger(logger)
	printer := diagnostics.NewPrinter(stderr, settings.Color)

	if opts.tokens {
		return dumpTokens(ctx, printer, stdout)
	}

	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		printer.PrintAll(ctx.Errors)
		return exitFailed
	}
	if opts.ast {
		tp := prettyprinter.NewTreePrinter()
		ctx.AstRoot.Accept(tp)
		fmt.Fprint(stdout, tp.String())
		return exitOK
	}

	ctx = pipeline.New(&analyzer.SemanticAnalyzerProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		printer.PrintAll(ctx.Errors)
		return exitFailed
	}
	if opts.types {
		printTypes(stdout, ctx.ProgramTypes)
	}
	if opts.check {
		return exitOK
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	exec := backend.NewExecutionProcessor(&backend.TreeWalkBackend{Context: sigCtx})
	ctx = pipeline.New(exec).Run(ctx)
	if ctx.HasErrors() {
		printRuntimeErrors(printer, ctx.Errors)
		return exitRuntime
	}
	return exitOK
}

// dumpTokens lists every token as "(line,col): TYPE(value)".
func dumpTokens(ctx *pipeline.PipelineContext, printer *diagnostics.Printer, stdout io.Writer) int {
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	for {
		tok := ctx.TokenStream.Next()
		if tok.Type == token.EOF {
			break
		}
		fmt.Fprintln(stdout, tok.String())
	}
	if ctx.HasErrors() {
		printer.PrintAll(ctx.Errors)
		return exitFailed
	}
	return exitOK
}

func printRuntimeErrors(printer *diagnostics.Printer, errs []*diagnostics.DiagnosticError) {
	for _, err := range errs {
		if err.IsRuntime() {
			err.Message = "internal error: " + err.Message
		}
		printer.Print(err)
	}
}

// binding is one line of the -types and :env dumps.
type binding struct {
	Name  string
	Value string
}

// printTypes dumps the program-level bindings in name order.
func printTypes(w io.Writer, types map[string]typesystem.Type) {
	bindings := make([]binding, 0, len(types))
	for name, t := range types {
		bindings = append(bindings, binding{Name: name, Value: t.String()})
	}
	printBindings(w, bindings)
}

func printBindings(w io.Writer, bindings []binding) {
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Name < bindings[j].Name })
	pretty.Fprintf(w, "%# v\n", bindings)
}
