package analyzer

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/symbols"
	"github.com/funvibe/matx/internal/typesystem"
)

// Analyzer infers and validates the static type of every node.
type Analyzer struct {
	scopes  *symbols.ScopeTable[typesystem.Type]
	session bool

	TypeMap      map[ast.Node]typesystem.Type // Stores inferred types
	ProgramTypes map[string]typesystem.Type   // Program-level bindings after the last run
	File         string                       // Attached to diagnostics
	// MaxMatrixSize is the largest constant size accepted by zeros, ones
	// and eye.
	MaxMatrixSize int
}

// New creates an Analyzer that starts every run from an empty scope stack.
func New(logger *slog.Logger) *Analyzer {
	return &Analyzer{
		scopes:        symbols.NewScopeTable[typesystem.Type](logger),
		MaxMatrixSize: config.MaxMatrixSize,
	}
}

// NewSession creates an Analyzer whose root frame persists across runs.
// Programs are checked directly in the root frame. A run that reports
// errors leaves the root frame as it was.
func NewSession(logger *slog.Logger) *Analyzer {
	a := New(logger)
	a.session = true
	return a
}

// Reset forgets every binding of a session.
func (a *Analyzer) Reset() {
	a.scopes.Reset()
	a.ProgramTypes = nil
}

// Bindings returns the types bound in the root frame.
func (a *Analyzer) Bindings() map[string]typesystem.Type {
	return a.scopes.Root().Bindings()
}

// Analyze checks node and returns its diagnostics sorted by position.
func (a *Analyzer) Analyze(node ast.Node) []*diagnostics.DiagnosticError {
	if !a.session {
		a.scopes.Reset()
	}
	saved := a.scopes.Root().Bindings()

	w := &walker{
		scopes:      a.scopes,
		errorSet:    make(map[string]*diagnostics.DiagnosticError),
		TypeMap:     make(map[ast.Node]typesystem.Type),
		session:     a.session,
		currentFile: a.File,
		maxMatrix:   a.MaxMatrixSize,
	}
	w.check(node)

	a.TypeMap = w.TypeMap
	a.ProgramTypes = w.programTypes
	errs := w.getErrors()
	if a.session && len(errs) > 0 {
		a.scopes.Reset()
		for name, t := range saved {
			a.scopes.Define(name, t)
		}
	}
	return errs
}

// Check runs a fresh analysis of program.
func Check(program *ast.Program) ([]*diagnostics.DiagnosticError, bool) {
	errs := New(nil).Analyze(program)
	return errs, len(errs) > 0
}

type walker struct {
	scopes       *symbols.ScopeTable[typesystem.Type]
	errorSet     map[string]*diagnostics.DiagnosticError // Key: "line:col:code:message" for deduplication
	TypeMap      map[ast.Node]typesystem.Type
	session      bool
	currentFile  string
	programTypes map[string]typesystem.Type
	maxMatrix    int
}

// addError adds an error to the walker, deduplicating by position, code and message
func (w *walker) addError(err *diagnostics.DiagnosticError) {
	if err.File == "" && w.currentFile != "" {
		err.File = w.currentFile
	}
	key := fmt.Sprintf("%d:%d:%s:%s", err.Token.Line, err.Token.Column, err.Code, err.Message)
	if _, seen := w.errorSet[key]; seen {
		return
	}
	w.errorSet[key] = err
}

// getErrors returns all unique errors as a slice, sorted by position
func (w *walker) getErrors() []*diagnostics.DiagnosticError {
	result := make([]*diagnostics.DiagnosticError, 0, len(w.errorSet))
	for _, err := range w.errorSet {
		result = append(result, err)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Token.Line != result[j].Token.Line {
			return result[i].Token.Line < result[j].Token.Line
		}
		if result[i].Token.Column != result[j].Token.Column {
			return result[i].Token.Column < result[j].Token.Column
		}
		if result[i].Code != result[j].Code {
			return result[i].Code < result[j].Code
		}
		return result[i].Message < result[j].Message
	})

	return result
}

// check dispatches on the node kind and records the inferred type.
func (w *walker) check(node ast.Node) typesystem.Type {
	var t typesystem.Type
	switch n := node.(type) {
	case *ast.Program:
		t = w.checkProgram(n)
	case *ast.Block:
		t = w.checkBlock(n, config.BlockScope)
	case *ast.AssignmentStatement:
		t = w.checkAssignment(n)
	case *ast.PrintStatement:
		w.check(n.Values)
		t = typesystem.Void{}
	case *ast.IfStatement:
		t = w.checkIf(n)
	case *ast.WhileStatement:
		t = w.checkWhile(n)
	case *ast.ForStatement:
		t = w.checkFor(n)
	case *ast.BreakStatement:
		w.checkLoopControl(n.Token, "Break")
		t = typesystem.Void{}
	case *ast.ContinueStatement:
		w.checkLoopControl(n.Token, "Continue")
		t = typesystem.Void{}
	case *ast.ReturnStatement:
		t = w.check(n.Value)

	case *ast.IntegerLiteral:
		t = typesystem.IntOf(n.Value)
	case *ast.FloatLiteral:
		t = typesystem.FloatOf(n.Value)
	case *ast.StringLiteral:
		t = typesystem.StringOf(n.Value)
	case *ast.Identifier:
		t = w.checkIdentifier(n)
	case *ast.RangeExpression:
		t = w.checkRange(n)
	case *ast.ConditionExpression:
		t = w.checkCondition(n)
	case *ast.BinaryExpression:
		t = w.binary(n.Token, n.Operator, w.check(n.Left), w.check(n.Right))
	case *ast.TranspositionExpression:
		t = w.checkTransposition(n)
	case *ast.NegationExpression:
		t = w.checkNegation(n)
	case *ast.FunctionCall:
		t = w.checkFunctionCall(n)
	case *ast.AccessExpression:
		t = w.checkAccess(n)
	case *ast.MatrixLiteral:
		t = w.checkMatrix(n)
	case *ast.SequenceLiteral:
		t = w.checkSequence(n)
	case nil:
		return typesystem.Unknown{}
	default:
		tok := token0(node)
		w.addError(diagnostics.NewError(diagnostics.ErrA000, tok, "cannot check node %T", node))
		t = typesystem.Unknown{}
	}
	w.TypeMap[node] = t
	return t
}
