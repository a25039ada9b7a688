package internal

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccbuild/ccbuild/cmake"
	"github.com/ccbuild/ccbuild/target"
)

var cmakeFlags struct {
	platform      target.Platform
	configuration target.Configuration
	toolset       target.ToolchainType
	buildDir      string
	installDir    string
	boostDir      string
}

var cmakeCmd = &cobra.Command{
	Use:   "cmake [flags] source-dir [-- cmake-arg...]",
	Short: "Build a CMake project",
	Long: `Configure, build and optionally install a CMake project. Arguments after --
go to the configure step verbatim, last, so they can override anything.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCMake,
}

func init() {
	f := cmakeCmd.Flags()
	f.Var(&cmakeFlags.platform, "platform", "target platform (x86/x64)")
	f.Var(&cmakeFlags.configuration, "configuration", "build configuration (Debug/Release)")
	f.Var(&cmakeFlags.toolset, "toolset", "toolset to use (auto/msvc/gcc/mingw/clang/clang-cl)")
	f.StringVar(&cmakeFlags.buildDir, "build", "", "build directory (temporary unless specified)")
	f.StringVar(&cmakeFlags.installDir, "install", "", "install directory (skip the install step unless specified)")
	f.StringVar(&cmakeFlags.boostDir, "boost", "", "Boost root directory (sets BOOST_ROOT)")
	rootCmd.AddCommand(cmakeCmd)
}

func runCMake(cmd *cobra.Command, args []string) error {
	positional, passthrough := splitDashArgs(cmd, args)
	if len(positional) != 1 {
		return fmt.Errorf("expected exactly one source directory, got %d", len(positional))
	}
	sourceDir, err := filepath.Abs(positional[0])
	if err != nil {
		return err
	}
	dirs := []*string{&cmakeFlags.buildDir, &cmakeFlags.installDir, &cmakeFlags.boostDir}
	for _, dir := range dirs {
		if *dir == "" {
			continue
		}
		if *dir, err = filepath.Abs(*dir); err != nil {
			return err
		}
	}

	params := cmake.NewBuildParameters(sourceDir)
	params.BuildDir = cmakeFlags.buildDir
	params.InstallDir = cmakeFlags.installDir
	params.BoostDir = cmakeFlags.boostDir
	params.Platform = cmakeFlags.platform
	params.Configuration = cmakeFlags.configuration
	params.Toolset = cmakeFlags.toolset
	params.CMakeArgs = passthrough
	return cmake.Build(params)
}
