//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows

package terminal

// IsTerminal always reports false where terminal detection is unsupported
func IsTerminal(fd uintptr) bool {
	return false
}
