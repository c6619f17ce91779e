// Package diag defines the diagnostics shared by the lexer and parser.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a diagnostic
type Kind int

const (
	// Lexical marks an unrecognized character. Scanning continues past it.
	Lexical Kind = iota
	// Grammar marks a missing token or an unrecognized construct. It ends
	// the translation.
	Grammar
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical anomaly"
	case Grammar:
		return "grammar violation"
	}
	return "UNKNOWN"
}

// Sentinel errors matched by errors.Is against a *Diagnostic of that kind
var (
	ErrLexical = errors.New("lexical anomaly")
	ErrGrammar = errors.New("grammar violation")
)

// Diagnostic is a single reported problem
type Diagnostic struct {
	Kind   Kind
	Msg    string
	Lexeme string // offending lexeme, if any
}

// Lexicalf builds a lexical diagnostic
func Lexicalf(lexeme, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: Lexical, Msg: fmt.Sprintf(format, args...), Lexeme: lexeme}
}

// Grammarf builds a grammar diagnostic
func Grammarf(lexeme, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: Grammar, Msg: fmt.Sprintf(format, args...), Lexeme: lexeme}
}

func (d *Diagnostic) Error() string {
	return d.Kind.String() + ": " + d.Msg
}

// Unwrap exposes the sentinel for the diagnostic's kind
func (d *Diagnostic) Unwrap() error {
	if d.Kind == Lexical {
		return ErrLexical
	}
	return ErrGrammar
}

// List is an ordered collection of diagnostics
type List []*Diagnostic

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, d := range l {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap lets errors.Is and errors.As see every entry
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, d := range l {
		errs[i] = d
	}
	return errs
}

// Err returns nil for an empty list and the list itself otherwise
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
