// Package pathsearch resolves logical compiler names to the spelling the
// build tools accept on the current OS.
package pathsearch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ccbuild/ccbuild/internal/osinfo"
)

// FullExeName resolves exe to the name b2 and friends want on this OS.
//
// On Linux there are no implicit executable extensions, so the name is
// returned untouched. On Windows the name is resolved through the search
// path (honoring PATHEXT): a name found in PATH comes back as its basename
// with the extension included, while a directory-qualified name comes back
// as the fully resolved path. Under Cygwin, when both a bare symlink and
// its .exe target exist, the .exe spelling wins, since b2 refuses the
// extensionless one.
func FullExeName(exe string) (string, error) {
	if !osinfo.OnWindows() {
		return exe, nil
	}
	path, err := exec.LookPath(exe)
	if err != nil {
		return "", fmt.Errorf("executable %q was not found in PATH: %w", exe, err)
	}
	if osinfo.OnCygwin() {
		// shutil-style quirk: /usr/bin/gcc is a symlink to gcc.exe and
		// both resolve, but only the .exe name works everywhere.
		if _, err := os.Stat(path + ".exe"); err == nil {
			path += ".exe"
		}
	}
	if filepath.Dir(exe) != "." {
		return path, nil
	}
	return filepath.Base(path), nil
}
