package lexer

import (
	"github.com/funvibe/matx/internal/diagnostics"
	"github.com/funvibe/matx/internal/pipeline"
	"github.com/funvibe/matx/internal/token"
)

// LexerProcessor tokenizes ctx.SourceCode into ctx.TokenStream. Illegal
// characters are reported and dropped so the parser sees a clean stream.
type LexerProcessor struct{}

func (lp *LexerProcessor) Name() string { return "lexer" }

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			ctx.AddError(diagnostics.NewError(
				diagnostics.ErrL001,
				tok,
				"illegal character '%s'",
				tok.Lexeme,
			))
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	ctx.TokenStream = &sliceStream{tokens: tokens}
	return ctx
}

// sliceStream replays already-lexed tokens.
type sliceStream struct {
	tokens []token.Token
	pos    int
}

func (s *sliceStream) Next() token.Token {
	tok := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

func (s *sliceStream) Peek(n int) []token.Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}
