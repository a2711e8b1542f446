// Package term detects whether a file is attached to a terminal.
package term

import "os"

// IsTerminal reports whether f is a terminal. It is false for pipes,
// regular files and platforms without termios.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(int(f.Fd()))
}
