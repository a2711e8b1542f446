package symtab

import (
	"fmt"
	"sort"
	"strings"
)

// FirstVariable is the address given to the first allocated variable.
const FirstVariable = 16

type Origin int

const (
	Predefined Origin = iota
	Label
	Variable
)

func (o Origin) String() string {
	switch o {
	case Predefined:
		return "predefined"
	case Label:
		return "label"
	case Variable:
		return "variable"
	default:
		return "unknown"
	}
}

type Symbol struct {
	Address int
	Origin  Origin
}

// Entry is one named binding, as returned by Snapshot.
type Entry struct {
	Name    string
	Address int
	Origin  Origin
}

type DuplicateLabelError struct {
	Name      string
	Existing  int
	Requested int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("duplicate label '%s': already bound to %d, cannot rebind to %d", e.Name, e.Existing, e.Requested)
}

type UnknownSymbolError struct {
	Name string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol '%s'", e.Name)
}

var predefined = map[string]int{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": 16384,
	"KBD":    24576,
}

// Table maps symbol names to addresses. Names are case-sensitive.
// Labels are bound during the first pass, variables during the second.
type Table struct {
	symbols map[string]Symbol

	// Next free variable address (monotonically increasing, no upper bound).
	nextVariable int
}

// New returns a table holding only the predefined symbols.
func New() *Table {
	t := &Table{
		symbols:      make(map[string]Symbol, len(predefined)+16),
		nextVariable: FirstVariable,
	}
	for name, addr := range predefined {
		t.symbols[name] = Symbol{Address: addr, Origin: Predefined}
	}
	for i := 0; i < 16; i++ {
		t.symbols[fmt.Sprintf("R%d", i)] = Symbol{Address: i, Origin: Predefined}
	}
	return t
}

// BindLabel binds name to address. Binding a name again to the same address
// is a no-op; binding it to a different one is a *DuplicateLabelError.
func (t *Table) BindLabel(name string, address int) error {
	if sym, ok := t.symbols[name]; ok {
		if sym.Address != address {
			return &DuplicateLabelError{Name: name, Existing: sym.Address, Requested: address}
		}
		return nil
	}
	t.symbols[name] = Symbol{Address: address, Origin: Label}
	return nil
}

func (t *Table) Resolve(name string) (int, error) {
	sym, ok := t.symbols[name]
	if !ok {
		return 0, &UnknownSymbolError{Name: name}
	}
	return sym.Address, nil
}

// AllocateVariable returns the address bound to name, binding it to the next
// free variable address first if it is unbound.
func (t *Table) AllocateVariable(name string) int {
	if sym, ok := t.symbols[name]; ok {
		return sym.Address
	}
	addr := t.nextVariable
	t.symbols[name] = Symbol{Address: addr, Origin: Variable}
	t.nextVariable++
	return addr
}

func (t *Table) Lookup(name string) (Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

func (t *Table) Contains(name string) bool {
	_, ok := t.symbols[name]
	return ok
}

func (t *Table) Len() int {
	return len(t.symbols)
}

func (t *Table) NextVariable() int {
	return t.nextVariable
}

// Snapshot returns every binding ordered by address, then name.
func (t *Table) Snapshot() []Entry {
	entries := make([]Entry, 0, len(t.symbols))
	for name, sym := range t.symbols {
		entries = append(entries, Entry{Name: name, Address: sym.Address, Origin: sym.Origin})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Filter returns the Snapshot entries with the given origin.
func (t *Table) Filter(origin Origin) []Entry {
	var out []Entry
	for _, e := range t.Snapshot() {
		if e.Origin == origin {
			out = append(out, e)
		}
	}
	return out
}

// String returns a deterministically ordered dump of the user symbols.
func (t *Table) String() string {
	var sb strings.Builder
	labels := t.Filter(Label)
	variables := t.Filter(Variable)

	if len(labels) == 0 {
		sb.WriteString("Labels: (empty)\n")
	} else {
		sb.WriteString("Labels:\n")
		for _, e := range labels {
			fmt.Fprintf(&sb, "  %-20s  %5d\n", e.Name, e.Address)
		}
	}

	if len(variables) == 0 {
		sb.WriteString("Variables: (empty)\n")
	} else {
		sb.WriteString("Variables:\n")
		for _, e := range variables {
			fmt.Fprintf(&sb, "  %-20s  %5d\n", e.Name, e.Address)
		}
	}
	return sb.String()
}
