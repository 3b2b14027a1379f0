//go:build unix

package main

import "golang.org/x/sys/unix"

// terminalSize returns the size of the terminal on fd in cells.
func terminalSize(fd int) (cols, rows int, ok bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}
