package asm

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

// AssembleFile assembles the source at inPath and writes the .hack text to
// outPath. The output file is only created once assembly has succeeded.
func AssembleFile(inPath, outPath string, opts ...Option) (*Program, error) {
	source, err := os.ReadFile(inPath)
	if err != nil {
		return nil, &SourceNotFoundError{Path: inPath, Err: err}
	}
	glog.V(1).Infof("read %d bytes from %s", len(source), inPath)

	prog, err := Assemble(string(source), opts...)
	if err != nil {
		return nil, fmt.Errorf("assembly of %s failed: %w", inPath, err)
	}

	if err := writeProgram(outPath, prog); err != nil {
		return nil, fmt.Errorf("failed to write output file %q: %w", outPath, err)
	}
	return prog, nil
}

func writeProgram(path string, prog *Program) error {
	return os.WriteFile(path, []byte(prog.String()), 0o644)
}
