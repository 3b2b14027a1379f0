//go:build !unix

package main

// terminalSize is not supported on this platform.
func terminalSize(fd int) (cols, rows int, ok bool) {
	return 0, 0, false
}
