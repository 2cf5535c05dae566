package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// deploymentsListCmd represents the deployments list command
var deploymentsListCmd = &cobra.Command{
	Use:   "list <script>",
	Short: "List a script's deployments, newest first",
	Long: `List the deployments of a Workers script in the order the API
returns them: newest first, with the active deployment on top.

Example:
  sweepctl deployments list my-worker`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(deploymentOps, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list deployments: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	deploymentsCmd.AddCommand(deploymentsListCmd)
}
