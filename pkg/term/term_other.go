//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package term

func isTerminal(fd int) bool {
	return false
}
