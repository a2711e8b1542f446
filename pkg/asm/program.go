package asm

import (
	"fmt"
	"io"
	"strings"

	"hackasm/pkg/symtab"
)

// Instruction is one emitted machine word and where it came from.
type Instruction struct {
	Address int
	Word    string
	LineNo  int
	Source  string
}

type Program struct {
	Instructions []Instruction

	// SourceMap maps an instruction address to its 1-based source line.
	SourceMap map[int]int

	// Symbols is the final symbol table, ordered by address.
	Symbols []symtab.Entry
}

// Words returns the machine words in source order.
func (p *Program) Words() []string {
	words := make([]string, len(p.Instructions))
	for i, ins := range p.Instructions {
		words[i] = ins.Word
	}
	return words
}

// String renders the program in .hack form: one word per line, each line
// newline-terminated.
func (p *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p.Instructions) * 17)
	for _, ins := range p.Instructions {
		sb.WriteString(ins.Word)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Program) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}

// Listing renders address, word and source text side by side.
func (p *Program) Listing() string {
	var sb strings.Builder
	for _, ins := range p.Instructions {
		fmt.Fprintf(&sb, "%5d  %s  %4d: %s\n", ins.Address, ins.Word, ins.LineNo, ins.Source)
	}
	return sb.String()
}
