package internal

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccbuild/ccbuild/boost"
	"github.com/ccbuild/ccbuild/target"
)

var boostFlags struct {
	platforms      target.PlatformSet
	configurations target.ConfigurationSet
	link           target.LinkageSet
	runtimeLink    target.Linkage
	toolset        target.ToolchainType
	buildDir       string
	policyFile     string
}

var boostCmd = &cobra.Command{
	Use:   "boost [flags] boost-dir [-- b2-arg...]",
	Short: "Build the Boost libraries",
	Long: `Build the Boost libraries for every requested platform/configuration/linkage
combination. Each combination stages into its own stage/ subdirectory so the
built libraries never clash. Arguments after -- go to b2 verbatim.`,
	Args: cobra.ArbitraryArgs,
	RunE: runBoost,
}

func init() {
	f := boostCmd.Flags()
	f.Var(&boostFlags.platforms, "platform", "target platform (x86/x64), repeatable")
	f.Var(&boostFlags.configurations, "configuration", "build configuration (Debug/Release), repeatable")
	f.Var(&boostFlags.link, "link", "library linkage (static/shared), repeatable")
	f.Var(&boostFlags.runtimeLink, "runtime-link", "runtime linkage (static/shared)")
	f.Var(&boostFlags.toolset, "toolset", "toolset to use (auto/msvc/gcc/mingw/clang/clang-cl)")
	f.StringVar(&boostFlags.buildDir, "build", "", "build directory (temporary unless specified)")
	f.StringVar(&boostFlags.policyFile, "policy", "", "linkage policy file")
	rootCmd.AddCommand(boostCmd)
}

func runBoost(cmd *cobra.Command, args []string) error {
	positional, passthrough := splitDashArgs(cmd, args)
	if len(positional) != 1 {
		return fmt.Errorf("expected exactly one Boost directory, got %d", len(positional))
	}
	boostDir, err := filepath.Abs(positional[0])
	if err != nil {
		return err
	}
	pol, err := loadPolicy(boostFlags.policyFile)
	if err != nil {
		return err
	}
	buildDir := boostFlags.buildDir
	if buildDir != "" {
		if buildDir, err = filepath.Abs(buildDir); err != nil {
			return err
		}
	}

	params := boost.NewBuildParameters(boostDir)
	params.BuildDir = buildDir
	params.Platforms = boostFlags.platforms
	params.Configurations = boostFlags.configurations
	params.Link = boostFlags.link
	params.RuntimeLink = boostFlags.runtimeLink
	params.Toolset = boostFlags.toolset
	params.Policy = pol
	params.B2Args = passthrough
	return boost.NewDir(boostDir).Build(params)
}
