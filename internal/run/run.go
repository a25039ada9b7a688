// Package run invokes external build tools with inherited stdio. Exit
// status is propagated verbatim; there is no retry policy here.
package run

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

// Command runs name with args in the current directory.
func Command(name string, args ...string) error {
	return InDir("", name, args...)
}

// InDir runs name with args inside dir (the current directory when empty).
// The command line is logged before the process starts.
func InDir(dir, name string, args ...string) error {
	log.Printf("running: %s", strings.Join(append([]string{name}, args...), " "))
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
