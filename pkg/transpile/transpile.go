// Package transpile runs the whole front end: lex, then translate.
package transpile

import (
	"errors"

	"github.com/raymyers/ydc/pkg/diag"
	"github.com/raymyers/ydc/pkg/lexer"
	"github.com/raymyers/ydc/pkg/parser"
)

// Result holds the products of one translation
type Result struct {
	Tokens   []lexer.Token
	Output   string    // C source, empty on failure
	Warnings diag.List // lexical anomalies; these alone do not fail a translation
}

// Translate converts reversed-C source into C. Only a grammar violation
// fails the translation: the error is then a diag.List and Output is empty.
// Unknown characters are reported in Warnings and copied through wherever
// the grammar takes tokens verbatim.
func Translate(source string) (*Result, error) {
	tokens, warnings := lexer.Tokenize(source)
	res := &Result{Tokens: tokens, Warnings: warnings}

	p := parser.New(tokens)
	output := p.ParseProgram()

	if err := p.Errors().Err(); err != nil {
		return res, err
	}
	res.Output = output
	return res, nil
}

// Diagnostics extracts the diagnostics carried by err, if any
func Diagnostics(err error) diag.List {
	var l diag.List
	if errors.As(err, &l) {
		return l
	}
	return nil
}
