package parser

import (
	"strings"

	"github.com/raymyers/ydc/pkg/lexer"
)

// ParseProgram translates the whole token sequence. On a grammar violation it
// returns "" and the violation is available from Errors.
func (p *Parser) ParseProgram() string {
	for !p.s.AtEOF() {
		switch {
		case p.curTokenIs(lexer.TokenPreprocessor):
			p.out.Raw(p.s.Advance().Literal)
			p.out.Raw("\n")
		case p.curTokenIs(lexer.TokenLParen):
			if !p.parseFunctionDeclaration() {
				return ""
			}
		default:
			p.addError("only preprocessor directives or function definitions allowed at top level, found '%s'",
				p.s.Current().Literal)
			return ""
		}
	}
	return p.out.String()
}

// parseFunctionDeclaration: (a int, b int) add int { ... }
func (p *Parser) parseFunctionDeclaration() bool {
	if _, ok := p.expect(lexer.TokenLParen, "'(' before function arguments"); !ok {
		return false
	}

	var params []string
	if !p.curTokenIs(lexer.TokenRParen) {
		for {
			name, ok := p.expect(lexer.TokenIdent, "argument name")
			if !ok {
				return false
			}
			typ, ok := p.expect(lexer.TokenKeyword, "argument type")
			if !ok {
				return false
			}
			params = append(params, typ.Literal+" "+name.Literal)
			if !p.curTokenIs(lexer.TokenComma) {
				break
			}
			p.s.Advance()
		}
	}
	if _, ok := p.expect(lexer.TokenRParen, "',' or ')' in argument list"); !ok {
		return false
	}

	name, ok := p.expect(lexer.TokenIdent, "function name")
	if !ok {
		return false
	}
	ret, ok := p.expect(lexer.TokenKeyword, "function return type")
	if !ok {
		return false
	}

	p.out.Line("%s %s(%s) {", ret.Literal, name.Literal, strings.Join(params, ", "))
	if !p.parseBody("function body") {
		return false
	}
	p.out.Line("}")
	p.out.Raw("\n")
	return true
}
