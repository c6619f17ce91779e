// Package emit accumulates generated C text.
package emit

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// Buffer is an append-only text accumulator with an indentation level.
// Fragments are kept in the order they were written.
type Buffer struct {
	b      strings.Builder
	indent int
}

// Raw appends s verbatim
func (b *Buffer) Raw(s string) {
	b.b.WriteString(s)
}

// Line appends one indented line
func (b *Buffer) Line(format string, args ...any) {
	b.b.WriteString(strings.Repeat(indentUnit, b.indent))
	fmt.Fprintf(&b.b, format, args...)
	b.b.WriteByte('\n')
}

// Indent increases the indentation of subsequent lines
func (b *Buffer) Indent() {
	b.indent++
}

// Dedent decreases the indentation of subsequent lines
func (b *Buffer) Dedent() {
	if b.indent > 0 {
		b.indent--
	}
}

// Len returns the number of bytes written
func (b *Buffer) Len() int {
	return b.b.Len()
}

func (b *Buffer) String() string {
	return b.b.String()
}
