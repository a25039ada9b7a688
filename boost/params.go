package boost

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ccbuild/ccbuild/internal/logx"
	"github.com/ccbuild/ccbuild/policy"
	"github.com/ccbuild/ccbuild/target"
)

// stageDirName is where b2 puts built libraries, relative to the Boost
// root. Every (platform, configuration) pair gets its own subdirectory so
// that building several combinations into one tree never clashes.
const stageDirName = "stage"

// BuildParameters describes a full build request: the cross product of
// platforms, configurations and linkages, plus the toolset driving them.
type BuildParameters struct {
	BoostDir string
	BuildDir string // temporary directory when empty

	Platforms      []target.Platform      // default: all
	Configurations []target.Configuration // default: all
	Link           []target.Linkage       // default: all
	RuntimeLink    target.Linkage         // default: static
	Toolset        target.ToolchainType   // default: auto

	Policy *policy.Linkage // default: policy.Default()

	// B2Args are passed to b2 verbatim, after everything else, so callers
	// can override any flag we set.
	B2Args []string
}

// NewBuildParameters returns a request for boostDir with every defaulted
// field filled in.
func NewBuildParameters(boostDir string) *BuildParameters {
	p := &BuildParameters{BoostDir: boostDir}
	p.setDefaults()
	return p
}

func (p *BuildParameters) setDefaults() {
	if len(p.Platforms) == 0 {
		p.Platforms = target.AllPlatforms()
	}
	if len(p.Configurations) == 0 {
		p.Configurations = target.AllConfigurations()
	}
	if len(p.Link) == 0 {
		p.Link = target.AllLinkages()
	}
	if p.RuntimeLink == 0 {
		p.RuntimeLink = target.Static
	}
	if p.Toolset == 0 {
		p.Toolset = target.Auto
	}
	if p.Policy == nil {
		p.Policy = policy.Default()
	}
}

// EnumB2Args calls fn once per combination, platforms outermost and
// linkages innermost, with the complete b2 argument list for that
// combination. Enumeration stops at the first error. A temporary build
// directory (when none was requested) is removed before EnumB2Args
// returns, whether fn succeeded or not.
func (p *BuildParameters) EnumB2Args(fn func(args []string) error) error {
	p.setDefaults()
	buildDir, cleanup, err := p.createBuildDir()
	if err != nil {
		return err
	}
	defer cleanup()

	for _, platform := range p.Platforms {
		toolchain, tcCleanup, err := DetectToolchain(p.Toolset, platform)
		if err != nil {
			return err
		}
		err = p.enumPlatform(buildDir, platform, toolchain, fn)
		tcCleanup()
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *BuildParameters) enumPlatform(buildDir string, platform target.Platform, toolchain Toolchain, fn func(args []string) error) error {
	for _, configuration := range p.Configurations {
		for _, link := range p.Link {
			runtimeLink := resolveRuntimeLink(link, p.RuntimeLink, p.Policy, runtime.GOOS)
			args := p.combinationArgs(buildDir, platform, configuration, link, runtimeLink, toolchain)
			if err := fn(args); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *BuildParameters) combinationArgs(buildDir string, platform target.Platform, configuration target.Configuration, link, runtimeLink target.Linkage, toolchain Toolchain) []string {
	args := []string{
		"--build-dir=" + buildDir,
		"--stagedir=" + filepath.Join(stageDirName, platform.String(), configuration.String()),
		"link=" + link.String(),
		"runtime-link=" + runtimeLink.String(),
		fmt.Sprintf("address-model=%d", platform.AddressModel()),
		"variant=" + configuration.B2Variant(),
	}
	args = append(args, toolchain.B2Args()...)
	args = append(args, p.B2Args...)
	return args
}

// createBuildDir returns the requested build directory, or a temporary
// sibling of the Boost tree whose cleanup removes it.
func (p *BuildParameters) createBuildDir() (string, func(), error) {
	if p.BuildDir != "" {
		log.Printf("build directory: %s", p.BuildDir)
		return p.BuildDir, func() {}, nil
	}
	parent := filepath.Dir(p.BoostDir)
	buildDir, err := os.MkdirTemp(parent, "boost-build-")
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

// resolveRuntimeLink applies the linkage legality rules. It never fails:
// an illegal combination is downgraded with a warning. Linking the runtime
// statically into a shared library is never legal; linking it statically at
// all is only legal where the policy says the C runtime supports it.
func resolveRuntimeLink(link, runtimeLink target.Linkage, pol *policy.Linkage, goos string) target.Linkage {
	if runtimeLink != target.Static {
		return runtimeLink
	}
	if link == target.Shared {
		logx.Warnf("cannot link the runtime statically to a dynamic library, going to link dynamically")
		return target.Shared
	}
	if !pol.StaticRuntimeAllowed(goos) {
		logx.Warnf("cannot link the C runtime statically on %s, going to link dynamically", goos)
		return target.Shared
	}
	return runtimeLink
}
