// Package logx configures the process-wide logger and adds a warning level
// on top of the standard library's log package.
package logx

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

var colorize = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

// Setup configures the standard logger the way every command expects it.
func Setup() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stderr)
}

// Warnf logs a warning. The prefix is colored when stderr is a terminal.
func Warnf(format string, args ...any) {
	prefix := "WARNING"
	if colorize {
		prefix = "\x1b[33m" + prefix + "\x1b[0m"
	}
	log.Printf("%s: %s", prefix, fmt.Sprintf(format, args...))
}
