package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cargo-stitch",
		Short:   "Patch workspace crate sources at build time without forking them",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Directory to resolve the workspace from")

	cmd.AddCommand(
		newStitchCmd(),
		newStatusCmd(),
		newDoctorCmd(),
	)

	return cmd
}
