package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenIdent   // main, x, "hello", ==, <
	TokenNumber  // 42
	TokenKeyword // int, for, ...

	// #include <stdio.h>
	TokenPreprocessor

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenEquals    // =
	TokenSemicolon // ;
	TokenComma     // ,
)

var tokenNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenIllegal:      "ILLEGAL",
	TokenIdent:        "IDENT",
	TokenNumber:       "NUMBER",
	TokenKeyword:      "KEYWORD",
	TokenPreprocessor: "PREPROCESSOR",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenLBrace:       "{",
	TokenRBrace:       "}",
	TokenEquals:       "=",
	TokenSemicolon:    ";",
	TokenComma:        ",",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
}

// Is reports whether the token is the keyword kw
func (t Token) Is(kw string) bool {
	return t.Type == TokenKeyword && t.Literal == kw
}

// eofLiteral is the lexeme carried by the end-of-stream token
const eofLiteral = "EOF"

// keywords is the reserved word set
var keywords = map[string]bool{
	"int":    true,
	"void":   true,
	"char":   true,
	"for":    true,
	"while":  true,
	"if":     true,
	"else":   true,
	"return": true,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) TokenType {
	if keywords[ident] {
		return TokenKeyword
	}
	return TokenIdent
}
