package internal

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ccbuild/ccbuild/internal/logx"
	"github.com/ccbuild/ccbuild/policy"
)

var rootCmd = &cobra.Command{
	Use:   "ccbuild",
	Short: "ccbuild builds Boost and CMake projects across toolchains",
	Long: `ccbuild normalizes the command lines of Boost.Build and CMake so that one
set of flags drives any platform, configuration and toolset combination.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	logx.Setup()
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

// splitDashArgs separates positional arguments from the pass-through
// arguments following "--".
func splitDashArgs(cmd *cobra.Command, args []string) (positional, passthrough []string) {
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		return args[:dash], args[dash:]
	}
	return args, nil
}

// loadPolicy reads the linkage policy file, or returns the default policy
// when no file was named.
func loadPolicy(path string) (*policy.Linkage, error) {
	if path == "" {
		return policy.Default(), nil
	}
	return policy.Load(path)
}
