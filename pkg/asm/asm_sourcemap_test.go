package asm

import (
	"testing"
)

func TestAssembleSourceMap(t *testing.T) {
	code := `// Line 1: Comment
@i        // Line 2: silenced by its comment
@i
M=1
                // Line 5: Empty
(LOOP)
@i
D=M
@LOOP
D;JGT
`
	// Expected layout:
	// 0x0000 -> 3  (@i)
	// 0x0001 -> 4  (M=1)
	// LOOP binds to 2
	// 0x0002 -> 7  (@i)
	// 0x0003 -> 8  (D=M)
	// 0x0004 -> 9  (@LOOP)
	// 0x0005 -> 10 (D;JGT)

	prog, err := Assemble(code)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	tests := []struct {
		addr int
		line int
	}{
		{0, 3},
		{1, 4},
		{2, 7},
		{3, 8},
		{4, 9},
		{5, 10},
	}

	if len(prog.SourceMap) != len(tests) {
		t.Errorf("len(SourceMap) = %d; want %d", len(prog.SourceMap), len(tests))
	}
	for _, tc := range tests {
		if got := prog.SourceMap[tc.addr]; got != tc.line {
			t.Errorf("SourceMap[%d] = %d; want %d", tc.addr, got, tc.line)
		}
		if got := prog.Instructions[tc.addr].Address; got != tc.addr {
			t.Errorf("Instructions[%d].Address = %d", tc.addr, got)
		}
	}

	if got := prog.Instructions[4].Word; got != "0000000000000010" {
		t.Errorf("@LOOP = %s; want address 2", got)
	}
	if got := prog.Instructions[3].Source; got != "D=M" {
		t.Errorf("Instructions[3].Source = %q; want %q", got, "D=M")
	}
}
