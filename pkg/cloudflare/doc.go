// Package cloudflare provides a minimal client for the Workers resources
// of the Cloudflare v4 API.
//
// The client covers exactly the surface the sweep engine needs: listing
// and deleting a script's deployments and versions, plus a token
// verification call. Responses use the standard v4 envelope:
//
//	{"success": bool, "result": T, "errors": [{"code", "message"}], "messages": []}
//
// # Error classification
//
// Every non-success response is classified into one of four kinds:
//
//   - KindNotFound: HTTP 404 (script, account, or resource is gone)
//   - KindPermissionDenied: HTTP 403 (token lacks the required scope)
//   - KindRateLimited: HTTP 429, carrying the Retry-After hint if present
//   - KindTransport: anything else, including unparseable bodies and
//     envelopes whose success flag is false
//
// Callers switch on the kind via errors.As or the Is* helpers:
//
//	if retryAfter, ok := cloudflare.IsRateLimited(err); ok {
//	    // back off for at least retryAfter seconds
//	}
//
// # Redaction
//
// Error messages can echo request contents, including the Authorization
// header. Every message leaving this package is scrubbed of the
// configured API token before it can reach a log line or the terminal.
//
// The client performs exactly one HTTP request per method call and never
// retries; pacing and retry policy live in the sweep package.
package cloudflare
