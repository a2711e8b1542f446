package parser

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{"@2", Address},
		{"   @LOOP  ", Address},
		{"@R15", Address},
		{"D=A", Compute},
		{"0;JMP", Compute},
		{"AMD=D+1;JGT", Compute},
		{"  M = M - 1  ", Compute},
		{"(LOOP)", Label},
		{"  ( END )", Label},
		{"", Ignorable},
		{"    ", Ignorable},
		{"// just a comment", Ignorable},
		{"garbage", Ignorable},
		{"(unterminated", Ignorable},
		// A trailing comment silences the whole line.
		{"@2 // load two", Ignorable},
		{"D=A // copy", Ignorable},
		{"0;JMP // forever", Ignorable},
		{"(LOOP) // top", Ignorable},
		// '@' wins over '=' and '(' ... ')'.
		{"@foo=bar", Address},
		{"@(x)", Address},
		// '=' or ';' wins over '(' ... ')'.
		{"D=(A)", Compute},
		// Empty required fields degrade.
		{"@", Ignorable},
		{"()", Ignorable},
		{")(", Ignorable},
		{"D=", Ignorable},
		{";JMP", Ignorable},
	}

	for _, tc := range tests {
		if got := Classify(tc.line); got != tc.want {
			t.Errorf("Classify(%q) = %v; want %v", tc.line, got, tc.want)
		}
	}
}

func TestFieldExtraction(t *testing.T) {
	tests := []struct {
		line string
		want Line
	}{
		{
			"@2",
			Line{Kind: Address, Operand: "2"},
		},
		{
			"  @ sum ",
			Line{Kind: Address, Operand: "sum"},
		},
		{
			"(OUTPUT_FIRST)",
			Line{Kind: Label, Label: "OUTPUT_FIRST"},
		},
		{
			"D=A",
			Line{Kind: Compute, Dest: "D", Comp: "A"},
		},
		{
			"D;JGT",
			Line{Kind: Compute, Comp: "D", Jump: "JGT"},
		},
		{
			"AM = M + 1 ; JNE",
			Line{Kind: Compute, Dest: "AM", Comp: "M+1", Jump: "JNE"},
		},
		{
			"\tM=D|M",
			Line{Kind: Compute, Dest: "M", Comp: "D|M"},
		},
	}

	for _, tc := range tests {
		got := Parse(tc.line, 7)
		tc.want.LineNo = 7
		tc.want.Raw = tc.line
		if got != tc.want {
			t.Errorf("Parse(%q) = %+v; want %+v", tc.line, got, tc.want)
		}
	}
}

func TestFieldsOnIgnorableLines(t *testing.T) {
	got := Parse("@2 // comment", 1)
	if got.Kind != Ignorable {
		t.Fatalf("kind = %v; want ignorable", got.Kind)
	}
	if got.Operand != "" || got.Comp != "" || got.Label != "" {
		t.Errorf("ignorable line carried fields: %+v", got)
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		Address:   "address",
		Compute:   "compute",
		Label:     "label",
		Ignorable: "ignorable",
	}
	for k, want := range names {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q; want %q", int(k), got, want)
		}
	}
}
