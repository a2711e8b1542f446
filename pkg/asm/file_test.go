package asm

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAssembleFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Max.asm")
	out := filepath.Join(dir, "Max.hack")
	if err := os.WriteFile(in, []byte(maxProgram), 0o644); err != nil {
		t.Fatal(err)
	}

	prog, err := AssembleFile(in, out)
	if err != nil {
		t.Fatalf("AssembleFile failed: %v", err)
	}
	if len(prog.Instructions) != len(maxWords) {
		t.Errorf("instructions = %d; want %d", len(prog.Instructions), len(maxWords))
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	want := strings.Join(maxWords, "\n") + "\n"
	if string(data) != want {
		t.Errorf("output =\n%s\nwant\n%s", data, want)
	}
}

func TestAssembleFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := AssembleFile(filepath.Join(dir, "nope.asm"), filepath.Join(dir, "nope.hack"))

	var nf *SourceNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v; want *SourceNotFoundError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v; want it to wrap fs.ErrNotExist", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "nope.hack")); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("output file created for missing source")
	}
}

func TestAssembleFileDuplicateLabelWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Dup.asm")
	out := filepath.Join(dir, "Dup.hack")
	if err := os.WriteFile(in, []byte("(X)\n@1\n(X)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := AssembleFile(in, out)
	if !IsDuplicateLabel(err) {
		t.Fatalf("err = %v; want duplicate label", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("output file written despite duplicate label")
	}
}

func TestAssembleFileLegacyOption(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Jge.asm")
	out := filepath.Join(dir, "Jge.hack")
	if err := os.WriteFile(in, []byte("D;JGE\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := AssembleFile(in, out, WithLegacyTables(true)); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(out)
	if string(data) != "1110001100000001\n" {
		t.Errorf("output = %q", data)
	}
}
