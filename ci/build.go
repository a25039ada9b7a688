package ci

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ccbuild/ccbuild/boost"
	"github.com/ccbuild/ccbuild/cmake"
	"github.com/ccbuild/ccbuild/internal/fetch"
	"github.com/ccbuild/ccbuild/policy"
	"github.com/ccbuild/ccbuild/target"
)

// BoostOptions carries the command-line side of a CI Boost build; the rest
// comes from the provider.
type BoostOptions struct {
	Link        []target.Linkage
	RuntimeLink target.Linkage
	Toolset     target.ToolchainType
	Policy      *policy.Linkage
	B2Args      []string
}

// BuildBoost downloads the Boost release the provider names and builds it
// for the provider's platform and configuration.
func BuildBoost(p Provider, opts BoostOptions) error {
	version, err := p.BoostVersion()
	if err != nil {
		return err
	}
	platform, err := p.Platform()
	if err != nil {
		return err
	}
	configuration, err := p.Configuration()
	if err != nil {
		return err
	}
	buildDir, err := p.BuildDir()
	if err != nil {
		return err
	}
	boostDir, err := p.BoostDir()
	if err != nil {
		return err
	}

	if err := stageBoost(version, buildDir, boostDir); err != nil {
		return err
	}

	params := boost.NewBuildParameters(boostDir)
	params.Platforms = []target.Platform{platform}
	params.Configurations = []target.Configuration{configuration}
	params.Link = opts.Link
	params.RuntimeLink = opts.RuntimeLink
	params.Toolset = opts.Toolset
	params.Policy = opts.Policy
	params.B2Args = opts.B2Args
	return boost.NewDir(boostDir).Build(params)
}

// stageBoost makes sure the unpacked Boost tree sits at boostDir, whatever
// directory name the archive unpacked to.
func stageBoost(version boost.Version, buildDir, boostDir string) error {
	if _, err := os.Stat(boostDir); err == nil {
		log.Printf("%s already exists, skipping download", boostDir)
		return nil
	}
	unpacked, err := fetch.Boost(version, buildDir)
	if err != nil {
		return err
	}
	if filepath.Clean(unpacked) == filepath.Clean(boostDir) {
		return nil
	}
	if err := os.Rename(unpacked, boostDir); err != nil {
		return fmt.Errorf("move %s to %s: %w", unpacked, boostDir, err)
	}
	return nil
}

// CMakeOptions carries the command-line side of a CI cmake build.
type CMakeOptions struct {
	Install   bool
	BoostDir  string // override; defaults to the provider's Boost location
	Toolset   target.ToolchainType
	CMakeArgs []string
}

// BuildCMake builds (and optionally installs) the checked-out project for
// the provider's platform and configuration.
func BuildCMake(p Provider, opts CMakeOptions) error {
	sourceDir, err := p.SourceDir()
	if err != nil {
		return err
	}
	cmakeDir, err := p.CMakeDir()
	if err != nil {
		return err
	}
	platform, err := p.Platform()
	if err != nil {
		return err
	}
	configuration, err := p.Configuration()
	if err != nil {
		return err
	}
	providerArgs, err := p.CMakeArgs()
	if err != nil {
		return err
	}

	params := cmake.NewBuildParameters(sourceDir)
	params.BuildDir = cmakeDir
	params.Platform = platform
	params.Configuration = configuration
	params.Toolset = opts.Toolset
	params.CMakeArgs = append(providerArgs, opts.CMakeArgs...)

	params.BoostDir = opts.BoostDir
	if params.BoostDir == "" {
		if boostDir, err := p.BoostDir(); err == nil {
			if _, statErr := os.Stat(boostDir); statErr == nil {
				params.BoostDir = boostDir
			}
		}
	}
	if opts.Install {
		installDir, err := p.InstallDir()
		if err != nil {
			return err
		}
		params.InstallDir = installDir
	}
	return cmake.Build(params)
}
