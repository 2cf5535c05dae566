package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// versionsListCmd represents the versions list command
var versionsListCmd = &cobra.Command{
	Use:   "list <script>",
	Short: "List a script's versions, newest first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(versionOps, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list versions: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	versionsCmd.AddCommand(versionsListCmd)
}
