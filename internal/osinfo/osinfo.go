// Package osinfo probes the flavour of operating system the helper runs on.
package osinfo

import (
	"os/exec"
	"runtime"
	"sync"
)

// OnWindows reports whether the current OS is Windows (Cygwin included).
func OnWindows() bool { return runtime.GOOS == "windows" }

// OnLinux reports whether the current OS is Linux.
func OnLinux() bool { return runtime.GOOS == "linux" }

var cygwinOnce = sync.OnceValue(func() bool {
	if !OnWindows() {
		return false
	}
	// cygpath ships with every Cygwin installation and with nothing else.
	_, err := exec.LookPath("cygpath")
	return err == nil
})

// OnCygwin reports whether we appear to be running inside a Cygwin
// environment on Windows.
func OnCygwin() bool { return cygwinOnce() }
