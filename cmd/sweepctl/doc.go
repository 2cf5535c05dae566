// Package main implements sweepctl, a CLI for cleaning up the preview
// deployments and versions of a Cloudflare Workers script.
//
// # Quick Start
//
//	export CLOUDFLARE_API_TOKEN=...
//	export CLOUDFLARE_ACCOUNT_ID=...
//
//	# Check the credential
//	sweepctl whoami
//
//	# See what exists
//	sweepctl deployments list my-worker
//
//	# Delete every inactive preview deployment
//	sweepctl deployments prune my-worker --all
//
//	# Pick versions interactively, or pass IDs explicitly
//	sweepctl versions prune my-worker
//	sweepctl versions prune my-worker --ids 3f0e...,9a1c...
//
// The entry at the top of each list is the active resource and is never
// deleted, regardless of flags. Use --dry-run to preview a prune and
// --yes to skip the confirmation prompt. The exit code is non-zero when
// any selected resource could not be deleted.
//
// # Environment Variables
//
//   - CLOUDFLARE_API_TOKEN: API token with Workers read+edit scope
//   - CLOUDFLARE_ACCOUNT_ID: account that owns the script
//   - SWEEPCTL_API_BASE: API endpoint override (testing)
//   - SWEEPCTL_DELAY_MS: inter-request pacing override
//   - SWEEPCTL_CONFIG_PATH: path to a sweepctl.yml settings file
package main
