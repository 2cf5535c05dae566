package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionsPruneFlags pruneFlags

// versionsPruneCmd represents the versions prune command
var versionsPruneCmd = &cobra.Command{
	Use:   "prune <script>",
	Short: "Bulk-delete a script's inactive versions",
	Long: `Delete preview versions of a Workers script. The newest version
is always kept; it is the snapshot the active deployment references.

Without flags an interactive picker is shown. --all selects every
inactive version; --ids selects specific ones.

Examples:
  sweepctl versions prune my-worker --all
  sweepctl versions prune my-worker --ids 3f0e... --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPrune(versionOps, args[0], versionsPruneFlags); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to prune versions: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addPruneFlags(versionsPruneCmd, &versionsPruneFlags)
	versionsCmd.AddCommand(versionsPruneCmd)
}
