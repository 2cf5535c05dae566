// Package sweep implements the batched deletion engine and the safety
// policy around it.
//
// The policy side decides what may be deleted: given the API's
// newest-first resource list, the entry at position 0 is the active
// resource and is never eligible. The engine side deletes an
// already-vetted list of identifiers one at a time, pacing requests to
// stay under the platform's rolling quota and retrying exactly once
// when the platform reports a rate limit.
//
// A run never aborts on a per-identifier failure. The outcome is a
// Report partitioning every identifier into succeeded (completion
// order) or failed (input order, with the error message that stuck).
//
// Typical use:
//
//	eligible := sweep.Eligible(resources)
//	engine := sweep.Engine{
//	    Delete: func(ctx context.Context, id string) error {
//	        return client.DeleteDeployment(ctx, script, id)
//	    },
//	}
//	report := engine.Run(ctx, sweep.ActiveID(resources), sweep.IDs(eligible))
//
// The engine is strictly sequential: one outstanding network call at a
// time, by design.
package sweep
