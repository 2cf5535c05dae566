package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sweepctl",
	Short: "Clean up Cloudflare Workers preview deployments and versions",
	Long: `sweepctl enumerates and bulk-deletes the preview deployments and
versions of a Cloudflare Workers script, always protecting the resource
that is currently serving traffic.

Credentials come from the CLOUDFLARE_API_TOKEN and CLOUDFLARE_ACCOUNT_ID
environment variables (a .env file in the working directory is honored).`,
}

// debugf prints diagnostics when --verbose is set. Never pass
// credential material through here.
func debugf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output")
}

func main() {
	Execute()
}
