package asm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/glog"

	"hackasm/pkg/code"
	"hackasm/pkg/parser"
	"hackasm/pkg/symtab"
)

const (
	// AddressBits is the width of an address instruction's value field.
	AddressBits = 15
	MaxAddress  = 1<<AddressBits - 1
)

type Options struct {
	Table  code.Table
	Strict bool
}

type Option func(*Options)

// WithLegacyTables selects code.Legacy instead of code.Canonical.
func WithLegacyTables(legacy bool) Option {
	return func(o *Options) {
		if legacy {
			o.Table = code.Legacy
		} else {
			o.Table = code.Canonical
		}
	}
}

// WithStrict makes addresses that do not fit in 15 bits an error instead of
// truncating them.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

func WithTable(t code.Table) Option {
	return func(o *Options) {
		o.Table = t
	}
}

// Assembler translates one program. It owns the symbol table for the run,
// so a new Assembler is needed for every source.
type Assembler struct {
	symbols *symtab.Table
	table   code.Table
	strict  bool
}

func NewAssembler(opts ...Option) *Assembler {
	o := Options{Table: code.Canonical}
	for _, opt := range opts {
		opt(&o)
	}
	return &Assembler{
		symbols: symtab.New(),
		table:   o.Table,
		strict:  o.Strict,
	}
}

func Assemble(source string, opts ...Option) (*Program, error) {
	return NewAssembler(opts...).Assemble(source)
}

// Assemble runs both passes over source. No output is produced when the
// first pass fails.
func (a *Assembler) Assemble(source string) (*Program, error) {
	lines := splitLines(source)

	if err := a.pass1(lines); err != nil {
		return nil, err
	}

	return a.pass2(lines)
}

// Symbols exposes the table for inspection after Assemble.
func (a *Assembler) Symbols() *symtab.Table {
	return a.symbols
}

func (a *Assembler) pass1(lines []string) error {
	var counter int

	for i, raw := range lines {
		lineNo := i + 1
		p := parser.Parse(raw, lineNo)

		switch p.Kind {
		case parser.Label:
			if err := a.symbols.BindLabel(p.Label, counter); err != nil {
				return fmt.Errorf("label on line %d: %w", lineNo, err)
			}
			glog.V(2).Infof("line %d: label %s -> %d", lineNo, p.Label, counter)
		case parser.Address, parser.Compute:
			counter++
		}
	}

	glog.V(1).Infof("pass 1: %d instructions, %d symbols", counter, a.symbols.Len())
	return nil
}

func (a *Assembler) pass2(lines []string) (*Program, error) {
	prog := &Program{SourceMap: make(map[int]int)}
	var counter int

	for i, raw := range lines {
		lineNo := i + 1
		p := parser.Parse(raw, lineNo)

		var word string
		var err error
		switch p.Kind {
		case parser.Address:
			word, err = a.encodeAddress(p)
		case parser.Compute:
			word, err = a.encodeCompute(p)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			Address: counter,
			Word:    word,
			LineNo:  lineNo,
			Source:  strings.TrimSpace(raw),
		})
		prog.SourceMap[counter] = lineNo
		glog.V(2).Infof("line %d: %04d %s", lineNo, counter, word)
		counter++
	}

	prog.Symbols = a.symbols.Snapshot()
	glog.V(1).Infof("pass 2: %d words, next variable at %d", len(prog.Instructions), a.symbols.NextVariable())
	return prog, nil
}

func (a *Assembler) encodeAddress(p parser.Line) (string, error) {
	value, overflow, numeric := parseLiteral(p.Operand)
	if !numeric {
		a.symbols.AllocateVariable(p.Operand)
		addr, err := a.symbols.Resolve(p.Operand)
		if err != nil {
			return "", fmt.Errorf("internal error on line %d: %w", p.LineNo, err)
		}
		overflow = addr > MaxAddress
		value = addr & MaxAddress
	}

	if overflow {
		if a.strict {
			return "", &AddressOverflowError{Line: p.LineNo, Operand: p.Operand}
		}
		glog.Warningf("address '%s' on line %d does not fit in %d bits, truncated to %d", p.Operand, p.LineNo, AddressBits, value)
	}

	return fmt.Sprintf("0%015b", value), nil
}

func (a *Assembler) encodeCompute(p parser.Line) (string, error) {
	comp, ok := a.table.Comp(p.Comp)
	if !ok {
		return "", &MnemonicError{Line: p.LineNo, Field: "comp", Mnemonic: p.Comp}
	}
	dest, ok := a.table.Dest(p.Dest)
	if !ok {
		return "", &MnemonicError{Line: p.LineNo, Field: "dest", Mnemonic: p.Dest}
	}
	jump, ok := a.table.Jump(p.Jump)
	if !ok {
		return "", &MnemonicError{Line: p.LineNo, Field: "jump", Mnemonic: p.Jump}
	}
	return "111" + comp + dest + jump, nil
}

// parseLiteral reports whether s is a decimal literal and returns its value
// reduced to 15 bits. overflow is set when the full value did not fit.
func parseLiteral(s string) (value int, overflow bool, ok bool) {
	if s == "" {
		return 0, false, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false, false
		}
		value = value*10 + int(r-'0')
		if value > MaxAddress {
			overflow = true
			value &= MaxAddress
		}
	}
	return value, overflow, true
}

func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// IsDuplicateLabel reports whether err was caused by a conflicting label.
func IsDuplicateLabel(err error) bool {
	var dup *symtab.DuplicateLabelError
	return errors.As(err, &dup)
}
