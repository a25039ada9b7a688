// Package boost normalizes Boost.Build (b2) invocations: bootstrapping b2,
// picking a toolset and expanding a platform/configuration/linkage request
// into the per-combination argument lists b2 actually wants.
package boost

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ccbuild/ccbuild/internal/osinfo"
	"github.com/ccbuild/ccbuild/internal/run"
	"github.com/ccbuild/ccbuild/target"
)

// Dir is an unpacked Boost source tree.
type Dir struct {
	path string
}

// NewDir wraps the Boost root directory at path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the Boost root directory.
func (d *Dir) Path() string { return d.path }

func (d *Dir) b2Path() string {
	if osinfo.OnWindows() {
		return filepath.Join(d.path, "b2.exe")
	}
	return "./b2"
}

func (d *Dir) bootstrapScript() string {
	if osinfo.OnWindows() {
		return filepath.Join(d.path, "bootstrap.bat")
	}
	return "./bootstrap.sh"
}

func (d *Dir) b2Exists() bool {
	path := d.b2Path()
	if !osinfo.OnWindows() {
		path = filepath.Join(d.path, "b2")
	}
	_, err := os.Stat(path)
	return err == nil
}

// Bootstrap builds b2 using the bootstrap script, unless a b2 binary is
// already there.
func (d *Dir) Bootstrap(hint target.ToolchainType) error {
	if d.b2Exists() {
		log.Print("b2 already exists, skipping bootstrap")
		return nil
	}
	bootstrap, err := DetectBootstrap(hint)
	if err != nil {
		return err
	}
	args := bootstrap.ShArgs()
	if osinfo.OnWindows() {
		args = bootstrap.BatArgs()
	}
	if err := run.InDir(d.path, d.bootstrapScript(), args...); err != nil {
		return fmt.Errorf("bootstrap Boost: %w", err)
	}
	return nil
}

// Build bootstraps b2 if needed, then runs it once per combination in
// params.
func (d *Dir) Build(params *BuildParameters) error {
	params.setDefaults()
	if err := d.Bootstrap(params.Toolset); err != nil {
		return err
	}
	return params.EnumB2Args(func(args []string) error {
		return run.InDir(d.path, d.b2Path(), args...)
	})
}
