package parser

import (
	"fmt"

	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/pipeline"
	"github.com/funvibe/matx/internal/token"
)

const (
	_ int = iota
	LOWEST
	SUM     // + - .+ .-
	PRODUCT // * / .* ./
	PREFIX  // -X
	POSTFIX // X'
)

var precedences = map[token.TokenType]int{
	token.PLUS:         SUM,
	token.MINUS:        SUM,
	token.DOT_PLUS:     SUM,
	token.DOT_MINUS:    SUM,
	token.ASTERISK:     PRODUCT,
	token.SLASH:        PRODUCT,
	token.DOT_ASTERISK: PRODUCT,
	token.DOT_SLASH:    PRODUCT,
	token.APOSTROPHE:   POSTFIX,
}

var assignOperators = map[token.TokenType]bool{
	token.ASSIGN:          true,
	token.PLUS_ASSIGN:     true,
	token.MINUS_ASSIGN:    true,
	token.ASTERISK_ASSIGN: true,
	token.SLASH_ASSIGN:    true,
}

var comparisonOperators = map[token.TokenType]bool{
	token.EQ:     true,
	token.NOT_EQ: true,
	token.LT:     true,
	token.GT:     true,
	token.LTE:    true,
	token.GTE:    true,
}

// MaxRecursionDepth bounds nested expressions and bodies.
var MaxRecursionDepth = config.MaxParseDepth

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	depth               int
	inRecursionRecovery bool
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifierOrAccess)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.MINUS, p.parseNegationExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseMatrixLiteral)
	p.registerPrefix(token.ZEROS, p.parseFunctionCall)
	p.registerPrefix(token.ONES, p.parseFunctionCall)
	p.registerPrefix(token.EYE, p.parseFunctionCall)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.DOT_PLUS, token.DOT_MINUS, token.DOT_ASTERISK, token.DOT_SLASH,
	} {
		p.registerInfix(tt, p.parseBinaryExpression)
	}
	p.registerInfix(token.APOSTROPHE, p.parseTranspositionExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances only when the next token has type t.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) addError(err *diagnostics.DiagnosticError) {
	p.ctx.AddError(err)
}

func (p *Parser) peekError(t token.TokenType) {
	code := diagnostics.ErrP001
	if t == token.SEMICOLON {
		code = diagnostics.ErrP005
	}
	p.addError(diagnostics.NewError(
		code,
		p.peekToken,
		"expected %s, got %s",
		describe(t), describeToken(p.peekToken),
	))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.addError(diagnostics.NewError(
		diagnostics.ErrP002,
		tok,
		"unexpected %s",
		describeToken(tok),
	))
}

// skipToStatementBoundary moves to the ';' ending the broken statement, or
// stops right before a '}' so the enclosing block can close.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.SEMICOLON) &&
		!p.curTokenIs(token.EOF) &&
		!p.peekTokenIs(token.RBRACE) &&
		!p.peekTokenIs(token.EOF) {
		p.nextToken()
	}
}

func describe(t token.TokenType) string {
	if lexeme, ok := tokenLexemes[t]; ok {
		return fmt.Sprintf("'%s'", lexeme)
	}
	return string(t)
}

func describeToken(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", tok.Lexeme)
}

var tokenLexemes = map[token.TokenType]string{
	token.SEMICOLON: ";",
	token.COLON:     ":",
	token.COMMA:     ",",
	token.ASSIGN:    "=",
	token.LPAREN:    "(",
	token.RPAREN:    ")",
	token.LBRACKET:  "[",
	token.RBRACKET:  "]",
	token.LBRACE:    "{",
	token.RBRACE:    "}",
}
