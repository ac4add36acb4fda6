package diagnostics

import (
	"fmt"

	"github.com/funvibe/matx/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // Illegal character

	// Parser
	ErrP001 ErrorCode = "P001" // Unexpected token
	ErrP002 ErrorCode = "P002" // No prefix parse function
	ErrP003 ErrorCode = "P003" // Invalid number literal
	ErrP004 ErrorCode = "P004" // Invalid assignment target
	ErrP005 ErrorCode = "P005" // Missing statement terminator
	ErrP006 ErrorCode = "P006" // Expression too complex

	// Analyzer
	ErrA000 ErrorCode = "A000" // Node the checker cannot handle
	ErrA001 ErrorCode = "A001" // Variable not initialized
	ErrA002 ErrorCode = "A002" // Operator type mismatch
	ErrA003 ErrorCode = "A003" // Dimension mismatch
	ErrA004 ErrorCode = "A004" // Break/continue outside loop
	ErrA005 ErrorCode = "A005" // Index arity mismatch
	ErrA006 ErrorCode = "A006" // Index out of bounds
	ErrA007 ErrorCode = "A007" // Negative index
	ErrA008 ErrorCode = "A008" // Index not an integer
	ErrA009 ErrorCode = "A009" // Value is not indexable
	ErrA010 ErrorCode = "A010" // Bad matrix function argument
	ErrA011 ErrorCode = "A011" // Incompatible matrix literal rows
	ErrA012 ErrorCode = "A012" // Left side of compound assignment not initialized
	ErrA013 ErrorCode = "A013" // Transposition of non-matrix
	ErrA014 ErrorCode = "A014" // Negation of string
	ErrA015 ErrorCode = "A015" // Range bound is not an integer
	ErrA016 ErrorCode = "A016" // Constant division by zero
	ErrA017 ErrorCode = "A017" // Paths leave a variable with unrelated kinds

	// Runtime
	ErrR001 ErrorCode = "R001" // Runtime fault
)

// DiagnosticError is a positioned, coded error reported by any stage.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

// NewError builds a diagnostic. msg is a format string when args are given.
func NewError(code ErrorCode, tok token.Token, msg string, args ...interface{}) *DiagnosticError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

func (e *DiagnosticError) Error() string {
	if e.Token.Line > 0 {
		return fmt.Sprintf("%s at line %d", e.Message, e.Token.Line)
	}
	return e.Message
}

// IsRuntime reports whether the diagnostic comes from execution rather than
// from lexing, parsing or checking.
func (e *DiagnosticError) IsRuntime() bool {
	return e.Code == ErrR001
}
