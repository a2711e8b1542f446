package asm

import "fmt"

// MnemonicError is returned for a compute instruction whose dest, comp or
// jump field is not in the encoding table.
type MnemonicError struct {
	Line     int
	Field    string
	Mnemonic string
}

func (e *MnemonicError) Error() string {
	return fmt.Sprintf("unknown %s mnemonic '%s' on line %d", e.Field, e.Mnemonic, e.Line)
}

// AddressOverflowError is returned in strict mode for an address that does
// not fit in 15 bits.
type AddressOverflowError struct {
	Line    int
	Operand string
}

func (e *AddressOverflowError) Error() string {
	return fmt.Sprintf("address '%s' on line %d does not fit in %d bits", e.Operand, e.Line, AddressBits)
}

type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("failed to read source file %q: %v", e.Path, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}
