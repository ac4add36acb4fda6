package lexer

import (
	"strconv"

	"github.com/funvibe/matx/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekChar2() byte {
	if l.readPosition+1 >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition+1]
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespaceAndComments()

	line, column := l.line, l.column

	switch l.ch {
	case '+':
		tok = l.oneOrAssign(token.PLUS, token.PLUS_ASSIGN)
	case '-':
		tok = l.oneOrAssign(token.MINUS, token.MINUS_ASSIGN)
	case '*':
		tok = l.oneOrAssign(token.ASTERISK, token.ASTERISK_ASSIGN)
	case '/':
		tok = l.oneOrAssign(token.SLASH, token.SLASH_ASSIGN)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(token.EQ, "==", line, column)
		} else {
			tok = newToken(token.ASSIGN, "=", line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(token.NOT_EQ, "!=", line, column)
		} else {
			tok = newToken(token.ILLEGAL, "!", line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(token.LTE, "<=", line, column)
		} else {
			tok = newToken(token.LT, "<", line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(token.GTE, ">=", line, column)
		} else {
			tok = newToken(token.GT, ">", line, column)
		}
	case '.':
		switch l.peekChar() {
		case '+':
			l.readChar()
			tok = newToken(token.DOT_PLUS, ".+", line, column)
		case '-':
			l.readChar()
			tok = newToken(token.DOT_MINUS, ".-", line, column)
		case '*':
			l.readChar()
			tok = newToken(token.DOT_ASTERISK, ".*", line, column)
		case '/':
			l.readChar()
			tok = newToken(token.DOT_SLASH, "./", line, column)
		default:
			if isDigit(l.peekChar()) {
				return l.readNumber()
			}
			tok = newToken(token.ILLEGAL, ".", line, column)
		}
	case '\'':
		tok = newToken(token.APOSTROPHE, "'", line, column)
	case ':':
		tok = newToken(token.COLON, ":", line, column)
	case ',':
		tok = newToken(token.COMMA, ",", line, column)
	case ';':
		tok = newToken(token.SEMICOLON, ";", line, column)
	case '(':
		tok = newToken(token.LPAREN, "(", line, column)
	case ')':
		tok = newToken(token.RPAREN, ")", line, column)
	case '[':
		tok = newToken(token.LBRACKET, "[", line, column)
	case ']':
		tok = newToken(token.RBRACKET, "]", line, column)
	case '{':
		tok = newToken(token.LBRACE, "{", line, column)
	case '}':
		tok = newToken(token.RBRACE, "}", line, column)
	case '"':
		return l.readString()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Literal: "", Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Lexeme: ident, Literal: ident, Line: line, Column: column}
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = newToken(token.ILLEGAL, string(l.ch), line, column)
	}

	l.readChar()
	return tok
}

// oneOrAssign lexes op or op= (compound assignment).
func (l *Lexer) oneOrAssign(single, compound token.TokenType) token.Token {
	line, column := l.line, l.column
	ch := l.ch
	if l.peekChar() == '=' {
		l.readChar()
		return newToken(compound, string(ch)+"=", line, column)
	}
	return newToken(single, string(ch), line, column)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber lexes INT and FLOAT literals: 12, 1.5, 2., .5, 1e-3, 2.5e10.
// A '.' directly followed by an operator character belongs to an
// element-wise operator, so "1.+x" is INT(1) followed by ".+".
func (l *Lexer) readNumber() token.Token {
	line, column := l.line, l.column
	position := l.position
	isFloat := false

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && !isOperatorChar(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peekChar()) || (l.peekChar() == '-' && isDigit(l.peekChar2()))) {
		isFloat = true
		l.readChar()
		if l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.input[position:l.position]
	if isFloat {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return newToken(token.ILLEGAL, lexeme, line, column)
		}
		return token.Token{Type: token.FLOAT, Lexeme: lexeme, Literal: value, Line: line, Column: column}
	}
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return newToken(token.ILLEGAL, lexeme, line, column)
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: value, Line: line, Column: column}
}

// readString lexes "..." without escape sequences; the literal excludes quotes.
func (l *Lexer) readString() token.Token {
	line, column := l.line, l.column
	l.readChar() // opening quote
	position := l.position
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		lexeme := l.input[position-1 : l.position]
		return newToken(token.ILLEGAL, lexeme, line, column)
	}
	content := l.input[position:l.position]
	l.readChar() // closing quote
	return token.Token{Type: token.STRING, Lexeme: `"` + content + `"`, Literal: content, Line: line, Column: column}
}

func newToken(tokenType token.TokenType, lexeme string, line, column int) token.Token {
	return token.Token{Type: tokenType, Lexeme: lexeme, Literal: lexeme, Line: line, Column: column}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isOperatorChar(ch byte) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}
