package lexer

import (
	"errors"
	"testing"

	"github.com/raymyers/ydc/pkg/diag"
)

func TestNextToken(t *testing.T) {
	input := `(n int) square int { 5 = x int; return n; }`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenLParen, "("},
		{TokenIdent, "n"},
		{TokenKeyword, "int"},
		{TokenRParen, ")"},
		{TokenIdent, "square"},
		{TokenKeyword, "int"},
		{TokenLBrace, "{"},
		{TokenNumber, "5"},
		{TokenEquals, "="},
		{TokenIdent, "x"},
		{TokenKeyword, "int"},
		{TokenSemicolon, ";"},
		{TokenKeyword, "return"},
		{TokenIdent, "n"},
		{TokenSemicolon, ";"},
		{TokenRBrace, "}"},
		{TokenEOF, "EOF"},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `== != <= >= < > = ,`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenIdent, "=="},
		{TokenIdent, "!="},
		{TokenIdent, "<="},
		{TokenIdent, ">="},
		{TokenIdent, "<"},
		{TokenIdent, ">"},
		{TokenEquals, "="},
		{TokenComma, ","},
		{TokenEOF, "EOF"},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}

	if len(l.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics, got %v", l.Diagnostics())
	}
}

func TestCommentsAndPreprocessor(t *testing.T) {
	input := `// leading comment
#include <stdio.h>
#define N 10 // kept verbatim
(x int) f void { } // trailing`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenPreprocessor, "#include <stdio.h>"},
		{TokenPreprocessor, "#define N 10 // kept verbatim"},
		{TokenLParen, "("},
		{TokenIdent, "x"},
		{TokenKeyword, "int"},
		{TokenRParen, ")"},
		{TokenIdent, "f"},
		{TokenKeyword, "void"},
		{TokenLBrace, "{"},
		{TokenRBrace, "}"},
		{TokenEOF, "EOF"},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `"hello"`, `"hello"`},
		{"escaped quote", `"say \"hi\"\n"`, `"say \"hi\"\n"`},
		{"with spaces", `"%d items, ok"`, `"%d items, ok"`},
		{"unterminated", `"runs off`, `"runs off`},
		{"trailing backslash", `"abc\`, `"abc\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Tokenize(tt.input)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			if len(tokens) != 2 {
				t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != TokenIdent || tokens[0].Literal != tt.want {
				t.Errorf("expected IDENT %q, got %s %q", tt.want, tokens[0].Type, tokens[0].Literal)
			}
			if tokens[1].Type != TokenEOF {
				t.Errorf("expected EOF, got %s", tokens[1].Type)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	for _, kw := range []string{"int", "void", "char", "for", "while", "if", "else", "return"} {
		if got := LookupIdent(kw); got != TokenKeyword {
			t.Errorf("LookupIdent(%q) = %s, want KEYWORD", kw, got)
		}
	}
	for _, id := range []string{"main", "Int", "returns", "_if", "x1"} {
		if got := LookupIdent(id); got != TokenIdent {
			t.Errorf("LookupIdent(%q) = %s, want IDENT", id, got)
		}
	}
}

func TestNumbersAndIdentifiers(t *testing.T) {
	tokens, _ := Tokenize("123abc _x9 007")
	want := []Token{
		{TokenNumber, "123"},
		{TokenIdent, "abc"},
		{TokenIdent, "_x9"},
		{TokenNumber, "007"},
		{TokenEOF, "EOF"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d]: expected %v, got %v", i, want[i], tokens[i])
		}
	}
}

func TestIllegalCharacters(t *testing.T) {
	tokens, diags := Tokenize("x + 1 ! @")

	wantTypes := []TokenType{TokenIdent, TokenIllegal, TokenNumber, TokenIllegal, TokenIllegal, TokenEOF}
	if len(tokens) != len(wantTypes) {
		t.Fatalf("expected %d tokens, got %d: %v", len(wantTypes), len(tokens), tokens)
	}
	for i, typ := range wantTypes {
		if tokens[i].Type != typ {
			t.Errorf("tokens[%d]: expected %s, got %s", i, typ, tokens[i].Type)
		}
	}

	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(diags))
	}
	for _, d := range diags {
		if !errors.Is(d, diag.ErrLexical) {
			t.Errorf("expected lexical diagnostic, got %v", d)
		}
	}
	if diags[0].Lexeme != "+" {
		t.Errorf("expected first diagnostic to name '+', got %q", diags[0].Lexeme)
	}
}

func TestSingleSlashIsIllegal(t *testing.T) {
	tokens, diags := Tokenize("a / b")
	if tokens[1].Type != TokenIllegal || tokens[1].Literal != "/" {
		t.Errorf("expected ILLEGAL '/', got %s %q", tokens[1].Type, tokens[1].Literal)
	}
	if len(diags) != 1 {
		t.Errorf("expected 1 diagnostic, got %d", len(diags))
	}
}

func TestTokenizeAlwaysEndsWithOneEOF(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "// only a comment", "#pragma once"} {
		tokens, _ := Tokenize(input)
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
			t.Fatalf("input %q: sequence does not end with EOF: %v", input, tokens)
		}
		for _, tok := range tokens[:len(tokens)-1] {
			if tok.Type == TokenEOF {
				t.Errorf("input %q: EOF appears before the end", input)
			}
		}
	}

	l := New("x")
	l.NextToken()
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != TokenEOF {
			t.Errorf("call %d past end: expected EOF, got %s", i, tok.Type)
		}
	}
}
