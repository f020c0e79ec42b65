// zkfit profiles compiled zero-knowledge circuit artifacts against Solana's
// transaction size and compute budget limits. It is a thin console front-end
// over the profiler package.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes. A FAIL verdict and an engine error are told apart so scripts
// can distinguish "the proof does not fit" from "the tool could not run".
const (
	exitFail  = 1
	exitError = 2
)

var rootCmd = &cobra.Command{
	Use:          "zkfit",
	Short:        "estimate whether a zk proof verifies within Solana's limits",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitError)
	}
}
