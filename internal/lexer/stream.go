package lexer

import "github.com/funvibe/matx/internal/token"

// TokenStream buffers lexer output so the parser can look ahead.
type TokenStream struct {
	lexer  *Lexer
	buffer []token.Token
	done   bool
}

func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l}
}

func (s *TokenStream) fill(n int) {
	for len(s.buffer) < n && !s.done {
		tok := s.lexer.NextToken()
		s.buffer = append(s.buffer, tok)
		if tok.Type == token.EOF {
			s.done = true
		}
	}
}

// Next consumes and returns the next token. After EOF it keeps returning EOF.
func (s *TokenStream) Next() token.Token {
	s.fill(1)
	if len(s.buffer) == 0 {
		return token.Token{Type: token.EOF}
	}
	tok := s.buffer[0]
	if tok.Type == token.EOF {
		return tok
	}
	s.buffer = s.buffer[1:]
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *TokenStream) Peek(n int) []token.Token {
	s.fill(n)
	if n > len(s.buffer) {
		n = len(s.buffer)
	}
	return s.buffer[:n]
}

// All drains the stream, EOF excluded.
func (s *TokenStream) All() []token.Token {
	var out []token.Token
	for {
		tok := s.Next()
		if tok.Type == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}
