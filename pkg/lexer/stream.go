package lexer

// Stream is a forward-only cursor over a token sequence with bounded
// lookahead. The last token is always EOF and the cursor never moves past it.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream wraps tokens, appending an EOF token if the sequence lacks one
func NewStream(tokens []Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: TokenEOF, Literal: eofLiteral})
	}
	return &Stream{tokens: tokens}
}

// Current returns the token under the cursor
func (s *Stream) Current() Token {
	return s.tokens[s.pos]
}

// Peek returns the token offset positions ahead, or EOF past the end
func (s *Stream) Peek(offset int) Token {
	i := s.pos + offset
	if i < 0 || i >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[i]
}

// Advance moves past the current token and returns it. At EOF it is a no-op.
func (s *Stream) Advance() Token {
	tok := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

// Match reports whether the current token has type t
func (s *Stream) Match(t TokenType) bool {
	return s.tokens[s.pos].Type == t
}

// AtEOF reports whether the cursor is on the EOF token
func (s *Stream) AtEOF() bool {
	return s.Match(TokenEOF)
}

// Pos returns the cursor index
func (s *Stream) Pos() int {
	return s.pos
}

// Len returns the number of tokens including EOF
func (s *Stream) Len() int {
	return len(s.tokens)
}

// SkipGroup returns the offset of the token just past the ')' matching the
// '(' under the cursor, counting nested parentheses. It returns 0 when the
// cursor is not on '('. An unbalanced group yields the offset of EOF.
func (s *Stream) SkipGroup() int {
	if !s.Match(TokenLParen) {
		return 0
	}
	depth := 1
	offset := 1
	for depth > 0 && s.pos+offset < len(s.tokens)-1 {
		switch s.Peek(offset).Type {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		}
		offset++
	}
	return offset
}
