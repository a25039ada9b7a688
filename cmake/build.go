// Package cmake normalizes cmake configure/build/install invocations across
// platforms and toolchains.
package cmake

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ccbuild/ccbuild/internal/logx"
	"github.com/ccbuild/ccbuild/internal/run"
	"github.com/ccbuild/ccbuild/target"
)

// BuildParameters describes one cmake build: a single platform and
// configuration, unlike the Boost side, because cmake build trees don't
// mix architectures.
type BuildParameters struct {
	SourceDir  string
	BuildDir   string // temporary directory when empty
	InstallDir string // skip the install step when empty
	BoostDir   string // sets BOOST_ROOT when non-empty

	Platform      target.Platform      // zero: let cmake pick
	Configuration target.Configuration // default: debug
	Toolset       target.ToolchainType // default: auto

	// CMakeArgs are appended to the configure step verbatim, last, so
	// callers can override anything we set.
	CMakeArgs []string
}

// NewBuildParameters returns a build request for the project at sourceDir
// with every defaulted field filled in.
func NewBuildParameters(sourceDir string) *BuildParameters {
	p := &BuildParameters{SourceDir: sourceDir}
	p.setDefaults()
	return p
}

func (p *BuildParameters) setDefaults() {
	if p.Configuration == 0 {
		p.Configuration = target.Debug
	}
	if p.Toolset == 0 {
		p.Toolset = target.Auto
	}
}

// ConfigureArgs returns the complete argument list for the configure step,
// given the toolchain and the resolved build directory.
func (p *BuildParameters) ConfigureArgs(toolchain Toolchain, buildDir string) []string {
	args := []string{
		"-S", p.SourceDir,
		"-B", buildDir,
		"-D", "CMAKE_BUILD_TYPE=" + p.Configuration.CMakeBuildType(),
	}
	if p.InstallDir != "" {
		args = append(args, "-D", "CMAKE_INSTALL_PREFIX="+p.InstallDir)
	}
	if p.BoostDir != "" {
		args = append(args, "-D", "BOOST_ROOT="+p.BoostDir)
	}
	args = append(args, toolchain.ConfigureArgs()...)
	args = append(args, p.CMakeArgs...)
	return args
}

// BuildArgs returns the argument list for the build step.
func (p *BuildParameters) BuildArgs(toolchain Toolchain, buildDir string) []string {
	args := []string{"--build", buildDir, "--config", p.Configuration.CMakeBuildType()}
	if extra := toolchain.BuildArgs(); len(extra) > 0 {
		args = append(args, "--")
		args = append(args, extra...)
	}
	return args
}

// InstallArgs returns the argument list for the install step.
func (p *BuildParameters) InstallArgs(buildDir string) []string {
	return []string{
		"--install", buildDir,
		"--prefix", p.InstallDir,
		"--config", p.Configuration.CMakeBuildType(),
	}
}

// Build configures and builds the project, then installs it when an
// install directory was given. A temporary build directory (when none was
// requested) is removed before Build returns, success or not.
func Build(p *BuildParameters) error {
	p.setDefaults()
	buildDir, cleanup, err := p.createBuildDir()
	if err != nil {
		return err
	}
	defer cleanup()

	toolchain, err := DetectToolchain(p.Toolset, p.Platform, buildDir)
	if err != nil {
		return err
	}
	if err := run.Command("cmake", p.ConfigureArgs(toolchain, buildDir)...); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	if err := run.Command("cmake", p.BuildArgs(toolchain, buildDir)...); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if p.InstallDir != "" {
		if err := run.Command("cmake", p.InstallArgs(buildDir)...); err != nil {
			return fmt.Errorf("install: %w", err)
		}
	}
	return nil
}

func (p *BuildParameters) createBuildDir() (string, func(), error) {
	if p.BuildDir != "" {
		if err := os.MkdirAll(p.BuildDir, 0o755); err != nil {
			return "", nil, fmt.Errorf("create build directory: %w", err)
		}
		log.Printf("build directory: %s", p.BuildDir)
		return p.BuildDir, func() {}, nil
	}
	buildDir, err := os.MkdirTemp(filepath.Dir(p.SourceDir), "cmake-build-")
	if err != nil {
		return "", nil, fmt.Errorf("create build directory: %w", err)
	}
	log.Printf("build directory: %s", buildDir)
	cleanup := func() {
		log.Printf("removing build directory: %s", buildDir)
		if err := os.RemoveAll(buildDir); err != nil {
			logx.Warnf("could not remove %s: %v", buildDir, err)
		}
	}
	return buildDir, cleanup, nil
}
