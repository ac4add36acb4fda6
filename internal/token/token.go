package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT  TokenType = "ID"
	INT    TokenType = "INT"
	FLOAT  TokenType = "FLOAT"
	STRING TokenType = "STRING"

	// Arithmetic
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"

	// Element-wise matrix operators
	DOT_PLUS     TokenType = "M_PLUS"
	DOT_MINUS    TokenType = "M_MINUS"
	DOT_ASTERISK TokenType = "M_TIMES"
	DOT_SLASH    TokenType = "M_DIVIDE"

	// Assignment
	ASSIGN          TokenType = "="
	PLUS_ASSIGN     TokenType = "PLUS_ASSIGN"
	MINUS_ASSIGN    TokenType = "MINUS_ASSIGN"
	ASTERISK_ASSIGN TokenType = "TIMES_ASSIGN"
	SLASH_ASSIGN    TokenType = "DIVIDE_ASSIGN"

	// Comparison
	EQ     TokenType = "EQ"
	NOT_EQ TokenType = "NEQ"
	LT     TokenType = "<"
	GT     TokenType = ">"
	LTE    TokenType = "LE"
	GTE    TokenType = "GE"

	// Delimiters
	APOSTROPHE TokenType = "'"
	COLON      TokenType = ":"
	COMMA      TokenType = ","
	SEMICOLON  TokenType = ";"
	LPAREN     TokenType = "("
	RPAREN     TokenType = ")"
	LBRACKET   TokenType = "["
	RBRACKET   TokenType = "]"
	LBRACE     TokenType = "{"
	RBRACE     TokenType = "}"

	// Keywords
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	FOR      TokenType = "FOR"
	WHILE    TokenType = "WHILE"
	BREAK    TokenType = "BREAK"
	CONTINUE TokenType = "CONTINUE"
	RETURN   TokenType = "RETURN"
	EYE      TokenType = "EYE"
	ZEROS    TokenType = "ZEROS"
	ONES     TokenType = "ONES"
	PRINT    TokenType = "PRINT"
)

var keywords = map[string]TokenType{
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"eye":      EYE,
	"zeros":    ZEROS,
	"ones":     ONES,
	"print":    PRINT,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Token is a single lexeme with its position. Literal holds the decoded
// value: int64 for INT, float64 for FLOAT, string for everything else.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("(%d,%d): %s(%v)", t.Line, t.Column, t.Type, t.Literal)
}
