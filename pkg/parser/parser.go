// Package parser classifies single lines of Hack assembly and extracts
// their textual fields. It keeps no state beyond the line it is given.
package parser

import (
	"strings"
	"unicode"
)

// Kind is the instruction kind of one source line.
type Kind int

const (
	Ignorable Kind = iota
	Address
	Compute
	Label
)

func (k Kind) String() string {
	switch k {
	case Address:
		return "address"
	case Compute:
		return "compute"
	case Label:
		return "label"
	default:
		return "ignorable"
	}
}

// CommentMarker starts a full-line comment. A line containing it anywhere
// is ignorable, even when it also holds an instruction.
const CommentMarker = "//"

// Line is a classified source line with its fields extracted.
type Line struct {
	LineNo  int
	Raw     string
	Kind    Kind
	Operand string
	Label   string
	Dest    string
	Comp    string
	Jump    string
}

// Parse classifies raw and fills in the fields that belong to its kind.
func Parse(raw string, lineNo int) Line {
	l := Line{LineNo: lineNo, Raw: raw, Kind: Classify(raw)}

	switch l.Kind {
	case Address:
		l.Operand = Operand(raw)
	case Label:
		l.Label = LabelName(raw)
	case Compute:
		l.Dest = Dest(raw)
		l.Comp = Comp(raw)
		l.Jump = Jump(raw)
	}

	return l
}

// Classify returns the kind of line. It never fails: anything it does not
// recognise, including a recognised shape with an empty required field,
// is Ignorable.
func Classify(line string) Kind {
	if strings.Contains(line, CommentMarker) {
		return Ignorable
	}

	switch {
	case strings.Contains(line, "@"):
		if Operand(line) == "" {
			return Ignorable
		}
		return Address
	case strings.ContainsAny(line, ";="):
		if Comp(line) == "" {
			return Ignorable
		}
		return Compute
	case strings.Contains(line, "(") && strings.Contains(line, ")"):
		if LabelName(line) == "" {
			return Ignorable
		}
		return Label
	}

	return Ignorable
}

// Operand returns the text after the first '@'.
func Operand(line string) string {
	s := stripSpace(line)
	_, after, found := strings.Cut(s, "@")
	if !found {
		return ""
	}
	return after
}

// LabelName returns the text between the first '(' and the first ')'.
func LabelName(line string) string {
	s := stripSpace(line)
	open := strings.IndexByte(s, '(')
	closing := strings.IndexByte(s, ')')
	if open < 0 || closing <= open {
		return ""
	}
	return s[open+1 : closing]
}

func Dest(line string) string {
	dest, _, _ := splitCompute(line)
	return dest
}

func Comp(line string) string {
	_, comp, _ := splitCompute(line)
	return comp
}

func Jump(line string) string {
	_, _, jump := splitCompute(line)
	return jump
}

// splitCompute cuts dest=comp;jump. dest and jump are empty when their
// separator is missing.
func splitCompute(line string) (dest, comp, jump string) {
	rest := stripSpace(line)
	if before, after, found := strings.Cut(rest, "="); found {
		dest = before
		rest = after
	}
	comp, jump, _ = strings.Cut(rest, ";")
	return dest, comp, jump
}

func stripSpace(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}
