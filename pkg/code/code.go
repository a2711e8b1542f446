// Package code maps Hack mnemonics to their control bits.
//
// A compute instruction is laid out as 111 a c1..c6 d1 d2 d3 j1 j2 j3.
// Comp returns the a-bit together with the six c-bits.
package code

import "strings"

// Dest bits: A is bit 2, D is bit 1, M is bit 0.
var destBits = map[string]string{
	"":    "000",
	"M":   "001",
	"D":   "010",
	"MD":  "011",
	"A":   "100",
	"AM":  "101",
	"AD":  "110",
	"AMD": "111",
}

var compBits = map[string]string{
	"0":   "0101010",
	"1":   "0111111",
	"-1":  "0111010",
	"D":   "0001100",
	"A":   "0110000",
	"M":   "1110000",
	"!D":  "0001101",
	"!A":  "0110001",
	"!M":  "1110001",
	"-D":  "0001111",
	"-A":  "0110011",
	"-M":  "1110011",
	"D+1": "0011111",
	"A+1": "0110111",
	"M+1": "1110111",
	"D-1": "0001110",
	"A-1": "0110010",
	"M-1": "1110010",
	"D+A": "0000010",
	"D+M": "1000010",
	"D-A": "0010011",
	"D-M": "1010011",
	"A-D": "0000111",
	"M-D": "1000111",
	"D&A": "0000000",
	"D&M": "1000000",
	"D|A": "0010101",
	"D|M": "1010101",
}

var jumpBits = map[string]string{
	"":    "000",
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}

// Entries where the first version of this tool disagreed with the
// published table.
var (
	legacyComp = map[string]string{"!A": "0110011"}
	legacyJump = map[string]string{"JGE": "001"}
)

// Table is one complete set of dest, comp and jump lookups.
type Table struct {
	Name string
	dest map[string]string
	comp map[string]string
	jump map[string]string
}

// Canonical is the published Hack machine language table.
var Canonical = Table{Name: "canonical", dest: destBits, comp: compBits, jump: jumpBits}

// Legacy reproduces the first release's output, where !A encodes like -A
// and JGE encodes like JGT.
var Legacy = Table{
	Name: "legacy",
	dest: destBits,
	comp: withOverrides(compBits, legacyComp),
	jump: withOverrides(jumpBits, legacyJump),
}

func withOverrides(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Dest returns the three dest bits. The letters may appear in any order.
func (t Table) Dest(mnemonic string) (string, bool) {
	bits, ok := t.dest[normalizeDest(mnemonic)]
	return bits, ok
}

// Comp returns the a-bit followed by the six c-bits.
func (t Table) Comp(mnemonic string) (string, bool) {
	bits, ok := t.comp[strings.ToUpper(mnemonic)]
	return bits, ok
}

func (t Table) Jump(mnemonic string) (string, bool) {
	bits, ok := t.jump[strings.ToUpper(mnemonic)]
	return bits, ok
}

// CompMnemonics lists the 28 comp mnemonics in the order of the published
// table.
func CompMnemonics() []string {
	return append([]string(nil), compOrder...)
}

var compOrder = []string{
	"0", "1", "-1", "D", "A", "M", "!D", "!A", "!M", "-D", "-A", "-M",
	"D+1", "A+1", "M+1", "D-1", "A-1", "M-1", "D+A", "D+M", "D-A", "D-M",
	"A-D", "M-D", "D&A", "D&M", "D|A", "D|M",
}

func Dest(mnemonic string) (string, bool) { return Canonical.Dest(mnemonic) }
func Comp(mnemonic string) (string, bool) { return Canonical.Comp(mnemonic) }
func Jump(mnemonic string) (string, bool) { return Canonical.Jump(mnemonic) }

// normalizeDest upper-cases m and orders its letters as A, M, D so that
// "MD", "DM" and "md" share one key. Repeated or foreign letters are left
// in place and fail the lookup.
func normalizeDest(m string) string {
	m = strings.ToUpper(m)
	if len(m) > 3 {
		return m
	}
	var a, md, d int
	for _, r := range m {
		switch r {
		case 'A':
			a++
		case 'M':
			md++
		case 'D':
			d++
		default:
			return m
		}
	}
	if a > 1 || md > 1 || d > 1 {
		return m
	}
	var sb strings.Builder
	if a == 1 {
		sb.WriteByte('A')
	}
	if md == 1 {
		sb.WriteByte('M')
	}
	if d == 1 {
		sb.WriteByte('D')
	}
	return sb.String()
}
