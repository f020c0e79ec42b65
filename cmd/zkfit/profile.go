package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zkfit/zkfit/profiler"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile [circuit dir]",
	Short: "profile compiled circuit artifacts against Solana transaction limits",
	Args:  cobra.MaximumNArgs(1),
	RunE:  cmdProfile,
}

var (
	fLookupTables bool
	fCircuit      string
	fBuildDir     string
	fAll          bool
	fJSON         bool
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().BoolVar(&fLookupTables, "lookup-tables", false, "price the transaction for address lookup table compression")
	profileCmd.Flags().StringVar(&fCircuit, "circuit", "", "circuit name to profile -- default picks the proof artifact in the build directory")
	profileCmd.Flags().StringVar(&fBuildDir, "build-dir", "", "build output subdirectory -- default is target")
	profileCmd.Flags().BoolVar(&fAll, "all", false, "profile every circuit in the build directory")
	profileCmd.Flags().BoolVar(&fJSON, "json", false, "emit reports as JSON instead of rendering them")
}

func cmdProfile(cmd *cobra.Command, args []string) error {
	circuitDir := "."
	if len(args) == 1 {
		circuitDir = filepath.Clean(args[0])
	}

	var opts []profiler.Option
	if fLookupTables {
		opts = append(opts, profiler.WithLookupTables())
	}
	if fCircuit != "" {
		opts = append(opts, profiler.WithCircuitName(fCircuit))
	}
	if fBuildDir != "" {
		opts = append(opts, profiler.WithBuildDir(fBuildDir))
	}

	var reports []*profiler.Report
	if fAll {
		rs, err := profiler.ProfileAll(circuitDir, opts...)
		if err != nil {
			return err
		}
		reports = rs
	} else {
		r, err := profiler.Profile(circuitDir, opts...)
		if err != nil {
			return err
		}
		reports = []*profiler.Report{r}
	}

	if fJSON {
		if err := renderJSON(os.Stdout, reports, fAll); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			render(r)
		}
	}

	for _, r := range reports {
		if r.Status == profiler.StatusFail {
			os.Exit(exitFail)
		}
	}
	return nil
}
