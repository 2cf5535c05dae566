package sweep

import (
	"context"
	"time"

	"github.com/sweepctl/sweepctl/pkg/cloudflare"
)

// DefaultDelay is the pause between consecutive delete requests.
const DefaultDelay = 200 * time.Millisecond

// minBackoff is the floor for the rate-limit wait, applied even when
// the platform suggests a shorter Retry-After.
const minBackoff = 60 * time.Second

// DeleteFunc deletes a single resource by identifier. The engine is
// instantiated once per resource kind by binding the client call.
type DeleteFunc func(ctx context.Context, id string) error

// ProgressFunc is invoked after every successful deletion with the
// number completed so far, the batch total, and the identifier.
type ProgressFunc func(completed, total int, id string)

// Failure records one identifier that could not be deleted.
type Failure struct {
	ID      string
	Message string
}

// Report is the partitioned outcome of a run. Every dispatched
// identifier appears in exactly one of the two lists, exactly once:
// Succeeded in completion order, Failed in input order.
type Report struct {
	Succeeded []string
	Failed    []Failure
}

// HasFailures reports whether any identifier failed.
func (r Report) HasFailures() bool {
	return len(r.Failed) > 0
}

// Engine deletes batches of resource identifiers sequentially.
type Engine struct {
	// Delete performs a single deletion attempt. Required.
	Delete DeleteFunc

	// Delay is the unconditional pause between identifiers.
	// DefaultDelay when zero.
	Delay time.Duration

	// OnProgress, when set, is called after each success.
	OnProgress ProgressFunc

	// Sleep is swapped out in tests. time.Sleep when nil.
	Sleep func(time.Duration)
}

// Run deletes the given identifiers one at a time and returns the
// partitioned report. Failures never abort the batch.
//
// The identifier equal to activeID is refused here regardless of what
// the caller selected; protecting the serving resource cannot be left
// to the UI layer alone. Duplicates and empty identifiers are dropped.
//
// Per identifier: one attempt, and on a rate-limit failure one more
// after waiting max(Retry-After, 60s). Any other failure, or a failed
// retry, marks the identifier failed with that error's message. Between
// identifiers the engine always pauses for Delay, success or not.
func (e *Engine) Run(ctx context.Context, activeID string, ids []string) Report {
	delay := e.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	sleep := e.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	seen := make(map[string]bool, len(ids))
	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == activeID || seen[id] {
			continue
		}
		seen[id] = true
		queue = append(queue, id)
	}

	var report Report
	for i, id := range queue {
		err := e.Delete(ctx, id)
		if err != nil {
			if retryAfter, ok := cloudflare.IsRateLimited(err); ok {
				sleep(backoff(retryAfter))
				err = e.Delete(ctx, id)
			}
		}

		if err != nil {
			report.Failed = append(report.Failed, Failure{ID: id, Message: err.Error()})
		} else {
			report.Succeeded = append(report.Succeeded, id)
			if e.OnProgress != nil {
				e.OnProgress(len(report.Succeeded), len(queue), id)
			}
		}

		if i < len(queue)-1 {
			sleep(delay)
		}
	}
	return report
}

func backoff(retryAfterSeconds int) time.Duration {
	wait := time.Duration(retryAfterSeconds) * time.Second
	if wait < minBackoff {
		wait = minBackoff
	}
	return wait
}
