// Package lexer tokenizes reversed-C source text.
package lexer

import (
	"github.com/raymyers/ydc/pkg/diag"
)

// Lexer tokenizes reversed-C source code
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // next reading position
	ch      byte // current character
	diags   diag.List
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize scans the whole input. The returned sequence always ends with
// exactly one EOF token; unknown characters yield ILLEGAL tokens and are
// reported in the returned list.
func Tokenize(input string) ([]Token, diag.List) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens, l.Diagnostics()
}

// Diagnostics returns the lexical anomalies seen so far
func (l *Lexer) Diagnostics() diag.List {
	return l.diags
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
		l.pos = len(l.input)
		return
	}
	l.ch = l.input[l.readPos]
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token from the input. Once the input is
// exhausted it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	if l.atEnd() {
		return Token{Type: TokenEOF, Literal: eofLiteral}
	}

	switch l.ch {
	case '#':
		return Token{Type: TokenPreprocessor, Literal: l.readLine()}
	case '>', '<', '=', '!':
		if l.peekChar() == '=' {
			lit := l.input[l.pos : l.pos+2]
			l.readChar()
			l.readChar()
			return Token{Type: TokenIdent, Literal: lit}
		}
		if l.ch == '>' || l.ch == '<' {
			return l.single(TokenIdent)
		}
		// a lone '=' is assignment, a lone '!' is illegal
	}

	switch l.ch {
	case '(':
		return l.single(TokenLParen)
	case ')':
		return l.single(TokenRParen)
	case '{':
		return l.single(TokenLBrace)
	case '}':
		return l.single(TokenRBrace)
	case '=':
		return l.single(TokenEquals)
	case ';':
		return l.single(TokenSemicolon)
	case ',':
		return l.single(TokenComma)
	}

	switch {
	case isDigit(l.ch):
		return Token{Type: TokenNumber, Literal: l.readNumber()}
	case isLetter(l.ch):
		lit := l.readIdentifier()
		return Token{Type: LookupIdent(lit), Literal: lit}
	case l.ch == '"':
		return Token{Type: TokenIdent, Literal: l.readString()}
	}

	tok := l.single(TokenIllegal)
	l.diags = append(l.diags, diag.Lexicalf(tok.Literal, "unknown character '%s'", tok.Literal))
	return tok
}

// single emits the current character as a one-character token
func (l *Lexer) single(tokenType TokenType) Token {
	tok := Token{Type: tokenType, Literal: l.input[l.pos : l.pos+1]}
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case isSpace(l.ch):
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			// stop at the newline so a following '#' line survives
			for l.ch != '\n' && !l.atEnd() {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readLine() string {
	pos := l.pos
	for l.ch != '\n' && !l.atEnd() {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for !l.atEnd() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

func (l *Lexer) readNumber() string {
	pos := l.pos
	for !l.atEnd() && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readString returns the literal including both quotes. An unterminated
// literal runs to end of input.
func (l *Lexer) readString() string {
	pos := l.pos
	l.readChar() // consume opening quote
	for l.ch != '"' && !l.atEnd() {
		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar() // skip escape char
		}
		l.readChar()
	}
	if !l.atEnd() {
		l.readChar() // consume closing quote
	}
	return l.input[pos:l.pos]
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
