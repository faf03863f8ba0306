package terminal

import "os"

// IsInteractive reports whether both stdin and stdout are attached to a terminal
func IsInteractive() bool {
	return IsTerminal(os.Stdin.Fd()) && IsTerminal(os.Stdout.Fd())
}
