package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deploymentsPruneFlags pruneFlags

// deploymentsPruneCmd represents the deployments prune command
var deploymentsPruneCmd = &cobra.Command{
	Use:   "prune <script>",
	Short: "Bulk-delete a script's inactive deployments",
	Long: `Delete preview deployments of a Workers script. The active
deployment (the newest) is always kept.

Without flags an interactive picker is shown. --all selects every
inactive deployment; --ids selects specific ones. Deletions run one at
a time with pacing, and a rate-limited request is retried once after
the platform's suggested wait.

Examples:
  sweepctl deployments prune my-worker --all
  sweepctl deployments prune my-worker --ids 8d3a...,f41b... --yes
  sweepctl deployments prune my-worker --all --dry-run`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPrune(deploymentOps, args[0], deploymentsPruneFlags); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to prune deployments: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addPruneFlags(deploymentsPruneCmd, &deploymentsPruneFlags)
	deploymentsCmd.AddCommand(deploymentsPruneCmd)
}
