package main

import (
	"github.com/spf13/cobra"
)

// deploymentsCmd groups the deployment subcommands
var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "Manage a script's deployments",
	Long: `List and prune the deployments of a Workers script.

A deployment is the routing record indicating which version(s) receive
traffic. The newest deployment is the active one and is never deleted.`,
}

func init() {
	rootCmd.AddCommand(deploymentsCmd)
}
