package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// shouldColorize reports whether decorated output is wanted on w for the
// configured mode. "always" and "never" are absolute; "auto" requires a
// terminal and no NO_COLOR override.
func shouldColorize(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	return ok && isTerminal(file)
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
