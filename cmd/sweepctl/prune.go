package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sweepctl/sweepctl/pkg/cloudflare"
	"github.com/sweepctl/sweepctl/pkg/config"
	"github.com/sweepctl/sweepctl/pkg/sweep"
	"github.com/sweepctl/sweepctl/pkg/term"
)

// resourceOps binds the shared list/prune flow to one resource kind.
type resourceOps struct {
	kind   string
	list   func(ctx context.Context, client *cloudflare.Client, script string) ([]cloudflare.Resource, error)
	delete func(client *cloudflare.Client, script string) sweep.DeleteFunc
}

var deploymentOps = resourceOps{
	kind: "deployment",
	list: func(ctx context.Context, client *cloudflare.Client, script string) ([]cloudflare.Resource, error) {
		return client.ListDeployments(ctx, script)
	},
	delete: func(client *cloudflare.Client, script string) sweep.DeleteFunc {
		return func(ctx context.Context, id string) error {
			return client.DeleteDeployment(ctx, script, id)
		}
	},
}

var versionOps = resourceOps{
	kind: "version",
	list: func(ctx context.Context, client *cloudflare.Client, script string) ([]cloudflare.Resource, error) {
		return client.ListVersions(ctx, script)
	},
	delete: func(client *cloudflare.Client, script string) sweep.DeleteFunc {
		return func(ctx context.Context, id string) error {
			return client.DeleteVersion(ctx, script, id)
		}
	},
}

type pruneFlags struct {
	all     bool
	yes     bool
	dryRun  bool
	delayMS int
	ids     []string
}

func addPruneFlags(cmd *cobra.Command, flags *pruneFlags) {
	cmd.Flags().BoolVar(&flags.all, "all", false, "delete every inactive entry without prompting for a selection")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show what would be deleted without deleting anything")
	cmd.Flags().IntVar(&flags.delayMS, "delay", 0, "inter-request delay in milliseconds (default 200)")
	cmd.Flags().StringSliceVar(&flags.ids, "ids", nil, "explicit resource IDs to delete instead of selecting interactively")
}

func newClient(cfg *config.Config) *cloudflare.Client {
	var opts []cloudflare.Option
	if cfg.APIBase != "" {
		opts = append(opts, cloudflare.WithBaseURL(cfg.APIBase))
	}
	return cloudflare.NewClient(cfg.AccountID, cfg.APIToken, opts...)
}

func runList(ops resourceOps, script string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	resources, err := ops.list(context.Background(), client, script)
	if err != nil {
		return fmt.Errorf("list %ss for script '%s': %w", ops.kind, script, err)
	}
	debugf("listed %d %s(s) for script %s (account %s)", len(resources), ops.kind, script, cfg.AccountID)

	term.RenderResources(os.Stdout, ops.kind, resources)
	return nil
}

func runPrune(ops resourceOps, script string, flags pruneFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := context.Background()

	resources, err := ops.list(ctx, client, script)
	if err != nil {
		return fmt.Errorf("list %ss for script '%s': %w", ops.kind, script, err)
	}

	eligible := sweep.Eligible(resources)
	debugf("listed %d %s(s), %d eligible for deletion", len(resources), ops.kind, len(eligible))
	if len(eligible) == 0 {
		fmt.Printf("Nothing to delete: script '%s' has no inactive %ss\n", script, ops.kind)
		return nil
	}

	var chosen []cloudflare.Resource
	switch {
	case len(flags.ids) > 0:
		chosen = sweep.Narrow(eligible, flags.ids)
	case flags.all:
		chosen = eligible
	default:
		chosen, err = term.ChooseSubset(os.Stdin, os.Stdout, ops.kind, eligible)
		if err != nil {
			return err
		}
	}
	if len(chosen) == 0 {
		fmt.Println("Nothing selected")
		return nil
	}

	if flags.dryRun {
		// Dry run never touches the engine's delete path.
		term.RenderDryRun(os.Stdout, ops.kind, chosen)
		return nil
	}

	if !flags.yes {
		summary := fmt.Sprintf("Delete %d %s(s) of script '%s'?", len(chosen), ops.kind, script)
		if !term.Confirm(os.Stdin, os.Stdout, summary) {
			fmt.Println("Aborted")
			return nil
		}
	}

	delayMS := flags.delayMS
	if delayMS == 0 {
		delayMS = cfg.DelayMS
	}
	debugf("deleting %d %s(s) with %dms pacing", len(chosen), ops.kind, delayMS)

	engine := sweep.Engine{
		Delete:     ops.delete(client, script),
		Delay:      time.Duration(delayMS) * time.Millisecond,
		OnProgress: term.Progress(os.Stdout),
	}
	report := engine.Run(ctx, sweep.ActiveID(resources), sweep.IDs(chosen))

	term.RenderReport(os.Stdout, ops.kind, report)
	if report.HasFailures() {
		return fmt.Errorf("%d %s(s) could not be deleted", len(report.Failed), ops.kind)
	}
	return nil
}
