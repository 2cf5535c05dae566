package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweepctl/sweepctl/pkg/config"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Verify the configured API token",
	Long: `Verify that the configured API token is valid by asking the
platform for its status. Useful as a preflight before pruning.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWhoami(); err != nil {
			fmt.Fprintf(os.Stderr, "Token verification failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func runWhoami() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	status, err := client.VerifyToken(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Token %s is %s (account %s)\n", status.ID, status.Status, cfg.AccountID)
	return nil
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
