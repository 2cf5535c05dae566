// Package term renders sweepctl's terminal output and prompts. It is
// the external collaborator the sweep engine reports into; nothing in
// here affects what gets deleted beyond relaying the user's choices.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/sweepctl/sweepctl/pkg/cloudflare"
	"github.com/sweepctl/sweepctl/pkg/sweep"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

const timeLayout = "2006-01-02 15:04"

// RenderResources prints a script's resource list, newest first, with
// the active entry marked.
func RenderResources(w io.Writer, kind string, resources []cloudflare.Resource) {
	if len(resources) == 0 {
		fmt.Fprintf(w, "No %ss found\n", kind)
		return
	}
	for i, r := range resources {
		marker := " "
		if i == 0 {
			marker = green("*")
		}
		fmt.Fprintf(w, "%s %s  %s  %s\n", marker, cyan(r.ID), r.CreatedOn.Format(timeLayout), r.Author)
	}
	fmt.Fprintf(w, "%s = active %s, protected from deletion\n", green("*"), kind)
}

// RenderDryRun prints what a prune run would delete without deleting.
func RenderDryRun(w io.Writer, kind string, chosen []cloudflare.Resource) {
	fmt.Fprintf(w, "%s would delete %d %s(s):\n", yellow("DRY RUN:"), len(chosen), kind)
	for _, r := range chosen {
		fmt.Fprintf(w, "  %s  %s\n", cyan(r.ID), r.CreatedOn.Format(timeLayout))
	}
}

// Confirm prints a summary and asks for a y/N answer. Anything but an
// explicit yes declines.
func Confirm(in io.Reader, out io.Writer, summary string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", summary)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		// A destructive prompt only accepts a complete,
		// newline-terminated answer; truncated input declines.
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// ChooseSubset presents the eligible resources as a numbered list and
// reads a selection: comma-separated numbers, "all", or an empty line
// to abort (returning an empty selection).
func ChooseSubset(in io.Reader, out io.Writer, kind string, eligible []cloudflare.Resource) ([]cloudflare.Resource, error) {
	for i, r := range eligible {
		fmt.Fprintf(out, "  [%d] %s  %s  %s\n", i+1, cyan(r.ID), r.CreatedOn.Format(timeLayout), r.Author)
	}
	fmt.Fprintf(out, "Select %ss to delete (e.g. 1,3 or 'all', empty to abort): ", kind)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return nil, nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	if strings.EqualFold(line, "all") {
		return eligible, nil
	}

	seen := make(map[int]bool)
	var chosen []cloudflare.Resource
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(eligible) {
			return nil, fmt.Errorf("invalid selection %q: expected numbers between 1 and %d", field, len(eligible))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		chosen = append(chosen, eligible[n-1])
	}
	return chosen, nil
}

// Progress returns a callback for the engine that prints one line per
// successful deletion.
func Progress(out io.Writer) sweep.ProgressFunc {
	return func(completed, total int, id string) {
		fmt.Fprintf(out, "%s deleted %s (%d/%d)\n", green("OK"), id, completed, total)
	}
}

// RenderReport prints the final outcome of a run.
func RenderReport(out io.Writer, kind string, report sweep.Report) {
	fmt.Fprintf(out, "Deleted %d %s(s)\n", len(report.Succeeded), kind)
	if !report.HasFailures() {
		return
	}
	fmt.Fprintf(out, "%s %d %s(s) could not be deleted:\n", red("FAILED:"), len(report.Failed), kind)
	for _, f := range report.Failed {
		fmt.Fprintf(out, "  %s: %s\n", f.ID, f.Message)
	}
}
