package parser

import (
	"fmt"

	"github.com/raymyers/ydc/pkg/lexer"
)

func (p *Parser) parseStatement() bool {
	switch {
	case p.curTokenIs(lexer.TokenNumber):
		return p.parseVariableDeclaration()
	case p.curTokenIs(lexer.TokenLParen):
		return p.parseParenStatement()
	case p.curTokenIs(lexer.TokenKeyword), p.curTokenIs(lexer.TokenIdent):
		return p.parsePassthrough()
	}
	p.addError("unrecognized statement starting with '%s'", p.s.Current().Literal)
	return false
}

// parseParenStatement dispatches on the token following the parenthesized
// group under the cursor.
func (p *Parser) parseParenStatement() bool {
	offset := p.s.SkipGroup()
	after := p.s.Peek(offset)

	switch {
	case after.Is("for"), after.Is("while"):
		return p.parseLoop(after.Literal)
	case after.Is("if"):
		return p.parseIf()
	case after.Type == lexer.TokenIdent && p.s.Peek(offset+1).Type == lexer.TokenSemicolon:
		return p.parseReversedCall()
	case offset >= 3 &&
		p.s.Peek(offset-1).Type == lexer.TokenRParen &&
		p.s.Peek(offset-2).Type == lexer.TokenSemicolon:
		return p.parseGroup()
	}
	p.addError("unrecognized statement starting with '%s'", p.s.Current().Literal)
	return false
}

// parseVariableDeclaration: 5 = x int ;  =>  int x = 5;
func (p *Parser) parseVariableDeclaration() bool {
	value := p.s.Advance()
	if _, ok := p.expect(lexer.TokenEquals, "'=' after value in declaration"); !ok {
		return false
	}
	name, ok := p.expect(lexer.TokenIdent, "identifier name for variable")
	if !ok {
		return false
	}
	typ, ok := p.expect(lexer.TokenKeyword, "type keyword for variable")
	if !ok {
		return false
	}
	if _, ok := p.expect(lexer.TokenSemicolon, "';' after variable declaration"); !ok {
		return false
	}
	p.out.Line("%s %s = %s;", typ.Literal, name.Literal, value.Literal)
	return true
}

// parseReversedCall: (a , b) add ;  =>  add(a, b);
func (p *Parser) parseReversedCall() bool {
	end := p.closeIndex()
	if _, ok := p.expect(lexer.TokenLParen, "'(' for function call"); !ok {
		return false
	}
	args := p.collect(end)
	if _, ok := p.expect(lexer.TokenRParen, "')' to end function call arguments"); !ok {
		return false
	}
	name, ok := p.expect(lexer.TokenIdent, "function name")
	if !ok {
		return false
	}
	if _, ok := p.expect(lexer.TokenSemicolon, "';' after function call"); !ok {
		return false
	}
	p.out.Line("%s(%s);", name.Literal, joinArgs(args))
	return true
}

// parseCondition consumes "( cond ) kw" and returns the condition text
func (p *Parser) parseCondition(kw string) (string, bool) {
	end := p.closeIndex()
	if _, ok := p.expect(lexer.TokenLParen, fmt.Sprintf("'(' before %s condition", kw)); !ok {
		return "", false
	}
	cond := p.collect(end)
	if _, ok := p.expect(lexer.TokenRParen, fmt.Sprintf("')' after %s condition", kw)); !ok {
		return "", false
	}
	if !p.expectKeyword(kw, fmt.Sprintf("'%s' keyword after condition", kw)) {
		return "", false
	}
	return joinSpaced(cond), true
}

// parseLoop handles both (cond) for { ... } and (cond) while { ... }
func (p *Parser) parseLoop(kw string) bool {
	cond, ok := p.parseCondition(kw)
	if !ok {
		return false
	}
	p.out.Line("%s (%s) {", kw, cond)
	if !p.parseBody(kw + " loop body") {
		return false
	}
	p.out.Line("}")
	return true
}

// parseIf: (cond) if { ... } [else { ... }]
func (p *Parser) parseIf() bool {
	cond, ok := p.parseCondition("if")
	if !ok {
		return false
	}
	p.out.Line("if (%s) {", cond)
	if !p.parseBody("if body") {
		return false
	}
	if p.s.Current().Is("else") {
		p.s.Advance()
		p.out.Line("} else {")
		if !p.parseBody("else body") {
			return false
		}
	}
	p.out.Line("}")
	return true
}

// parseGroup: ( stmt ... ) emits the enclosed statements without the parens
func (p *Parser) parseGroup() bool {
	p.s.Advance() // consume '('
	for !p.curTokenIs(lexer.TokenRParen) && !p.s.AtEOF() {
		if !p.parseStatement() {
			return false
		}
	}
	_, ok := p.expect(lexer.TokenRParen, "')' after statement group")
	return ok
}

// parsePassthrough copies an ordinary statement such as "return n ;".
// A brace ends the statement early so a missing ';' cannot swallow the
// rest of the block.
func (p *Parser) parsePassthrough() bool {
	var toks []lexer.Token
	for !p.curTokenIs(lexer.TokenSemicolon) && !p.s.AtEOF() &&
		!p.curTokenIs(lexer.TokenLBrace) && !p.curTokenIs(lexer.TokenRBrace) {
		toks = append(toks, p.s.Advance())
	}
	if _, ok := p.expect(lexer.TokenSemicolon, "';' after statement"); !ok {
		return false
	}
	p.out.Line("%s;", joinSpaced(toks))
	return true
}
