package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zkfit/zkfit"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the zkfit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("zkfit v" + zkfit.Version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
