package config

const SourceFileExt = ".m"

// ConfigFileName is looked up next to the source file, then in the working directory.
const ConfigFileName = "matx.yaml"

// HistoryFileName is the REPL history file kept in the user's home directory.
const HistoryFileName = ".matx_history"

// MaxEvalDepth is the default nesting limit for evaluation.
const MaxEvalDepth = 10000

// MaxParseDepth bounds parser recursion on deeply nested expressions.
const MaxParseDepth = 500

// MaxStringLength bounds the result of string repetition, in bytes.
const MaxStringLength = 1 << 24

// MaxMatrixSize is the default largest n accepted by zeros, ones and eye.
const MaxMatrixSize = 1024

// Built-in function names
const (
	ZerosFuncName = "zeros"
	OnesFuncName  = "ones"
	EyeFuncName   = "eye"
)

// Scope frame tags
const (
	RootScope    = "root"
	ProgramScope = "program"
	BlockScope   = "block"
	LoopScope    = "loop"
	IfScope      = "if"
)

// IsBuiltinFunction reports whether name is one of the matrix constructors.
func IsBuiltinFunction(name string) bool {
	switch name {
	case ZerosFuncName, OnesFuncName, EyeFuncName:
		return true
	}
	return false
}
