// Package parser implements a single-pass recursive descent translator from
// reversed-C tokens to C source text. No syntax tree is built: each construct
// emits its C text as soon as it is recognized.
package parser

import (
	"fmt"
	"strings"

	"github.com/raymyers/ydc/pkg/diag"
	"github.com/raymyers/ydc/pkg/emit"
	"github.com/raymyers/ydc/pkg/lexer"
)

// Parser translates a token sequence into C
type Parser struct {
	s      *lexer.Stream
	out    emit.Buffer
	errors diag.List
}

// New creates a new Parser over the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{s: lexer.NewStream(tokens)}
}

// Errors returns the grammar violations. Parsing stops at the first one, so
// the list holds at most one entry.
func (p *Parser) Errors() diag.List {
	return p.errors
}

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, diag.Grammarf(p.s.Current().Literal, format, args...))
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.s.Match(t)
}

// expect consumes a token of type t, or records "expected <what>"
func (p *Parser) expect(t lexer.TokenType, what string) (lexer.Token, bool) {
	if p.curTokenIs(t) {
		return p.s.Advance(), true
	}
	p.addError("expected %s, got '%s'", what, p.s.Current().Literal)
	return lexer.Token{}, false
}

func (p *Parser) expectKeyword(kw, what string) bool {
	if p.s.Current().Is(kw) {
		p.s.Advance()
		return true
	}
	p.addError("expected %s, got '%s'", what, p.s.Current().Literal)
	return false
}

// closeIndex returns the index of the ')' matching the '(' under the cursor
func (p *Parser) closeIndex() int {
	return p.s.Pos() + p.s.SkipGroup() - 1
}

// collect consumes tokens up to (not including) index end, or up to EOF.
// Illegal tokens such as '+' are copied through like any other lexeme.
func (p *Parser) collect(end int) []lexer.Token {
	var toks []lexer.Token
	for p.s.Pos() < end && !p.s.AtEOF() {
		toks = append(toks, p.s.Advance())
	}
	return toks
}

// joinSpaced joins lexemes with single spaces
func joinSpaced(toks []lexer.Token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.Literal
	}
	return strings.Join(parts, " ")
}

// joinArgs joins lexemes with single spaces, except before a comma
func joinArgs(toks []lexer.Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		sb.WriteString(tok.Literal)
		if i < len(toks)-1 && toks[i+1].Type != lexer.TokenComma {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// parseBody parses "{ statement... }". what names the block in diagnostics.
func (p *Parser) parseBody(what string) bool {
	if _, ok := p.expect(lexer.TokenLBrace, fmt.Sprintf("'{' before %s", what)); !ok {
		return false
	}
	p.out.Indent()
	for !p.curTokenIs(lexer.TokenRBrace) && !p.s.AtEOF() {
		if !p.parseStatement() {
			return false
		}
	}
	p.out.Dedent()
	_, ok := p.expect(lexer.TokenRBrace, fmt.Sprintf("'}' after %s", what))
	return ok
}
