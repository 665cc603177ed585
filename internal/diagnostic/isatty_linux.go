//go:build linux

package diagnostic

import "golang.org/x/sys/unix"

// isTerminal reports whether fd refers to a real terminal, so the
// pretty-printer only emits ANSI color codes when a human is actually
// going to see them.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)

	return err == nil
}
