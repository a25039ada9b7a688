package internal

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ccbuild/ccbuild/ci"
	"github.com/ccbuild/ccbuild/target"
)

var ciCmd = &cobra.Command{
	Use:   "ci",
	Short: "Build under a CI provider",
	Long: `Fill in the build parameters from the CI provider's environment variables.
The provider is detected from its sentinel variable; running these commands
outside a supported provider is an error.`,
}

var ciBoostFlags struct {
	link        target.LinkageSet
	runtimeLink target.Linkage
	toolset     target.ToolchainType
	policyFile  string
}

var ciBoostCmd = &cobra.Command{
	Use:   "boost [flags] [-- b2-arg...]",
	Short: "Download and build Boost on a CI worker",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCIBoost,
}

var ciCMakeFlags struct {
	install  bool
	boostDir string
	toolset  target.ToolchainType
}

var ciCMakeCmd = &cobra.Command{
	Use:   "cmake [flags] [-- cmake-arg...]",
	Short: "Build the checked-out CMake project on a CI worker",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCICMake,
}

func init() {
	f := ciBoostCmd.Flags()
	f.Var(&ciBoostFlags.link, "link", "library linkage (static/shared), repeatable")
	f.Var(&ciBoostFlags.runtimeLink, "runtime-link", "runtime linkage (static/shared)")
	f.Var(&ciBoostFlags.toolset, "toolset", "toolset to use (auto/msvc/gcc/mingw/clang/clang-cl)")
	f.StringVar(&ciBoostFlags.policyFile, "policy", "", "linkage policy file")

	g := ciCMakeCmd.Flags()
	g.BoolVar(&ciCMakeFlags.install, "install", false, "install the project")
	g.StringVar(&ciCMakeFlags.boostDir, "boost", "", "Boost root directory (sets BOOST_ROOT)")
	g.Var(&ciCMakeFlags.toolset, "toolset", "toolset to use (auto/msvc/gcc/mingw/clang/clang-cl)")

	ciCmd.AddCommand(ciBoostCmd)
	ciCmd.AddCommand(ciCMakeCmd)
	rootCmd.AddCommand(ciCmd)
}

func runCIBoost(cmd *cobra.Command, args []string) error {
	_, passthrough := splitDashArgs(cmd, args)
	provider, err := ci.Detect()
	if err != nil {
		return err
	}
	log.Printf("CI provider: %s", provider.Name())
	pol, err := loadPolicy(ciBoostFlags.policyFile)
	if err != nil {
		return err
	}
	return ci.BuildBoost(provider, ci.BoostOptions{
		Link:        ciBoostFlags.link,
		RuntimeLink: ciBoostFlags.runtimeLink,
		Toolset:     ciBoostFlags.toolset,
		Policy:      pol,
		B2Args:      passthrough,
	})
}

func runCICMake(cmd *cobra.Command, args []string) error {
	_, passthrough := splitDashArgs(cmd, args)
	provider, err := ci.Detect()
	if err != nil {
		return err
	}
	log.Printf("CI provider: %s", provider.Name())
	return ci.BuildCMake(provider, ci.CMakeOptions{
		Install:   ciCMakeFlags.install,
		BoostDir:  ciCMakeFlags.boostDir,
		Toolset:   ciCMakeFlags.toolset,
		CMakeArgs: passthrough,
	})
}
