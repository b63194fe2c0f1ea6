package cliutil

import "golang.org/x/term"

// IsTty reports whether the file descriptor is attached to a terminal.
func IsTty(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
