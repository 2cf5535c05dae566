package main

import (
	"github.com/spf13/cobra"
)

// versionsCmd groups the version subcommands
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Manage a script's versions",
	Long: `List and prune the versions of a Workers script.

A version is an immutable snapshot of a script's code and configuration;
preview URLs are bound to versions. The newest version is referenced by
the active deployment and is never deleted.`,
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}
