package cloudflare

import (
	"errors"
	"fmt"
)

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform lower -output kind.gen.go

// Kind classifies an API failure. The set is closed: every error the
// client returns carries exactly one of these.
type Kind int

const (
	KindTransport Kind = iota
	KindNotFound
	KindPermissionDenied
	KindRateLimited
)

// APIError is the error type for every failed API call.
type APIError struct {
	Kind    Kind
	Message string

	// RetryAfter is the wait the platform suggested, in seconds.
	// Only meaningful for KindRateLimited; zero means no hint was given.
	RetryAfter int
}

func (e *APIError) Error() string {
	if e.Kind == KindRateLimited && e.RetryAfter > 0 {
		return fmt.Sprintf("%s: %s (retry after %ds)", e.Kind, e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsRateLimited reports whether err is a rate-limit failure and, if so,
// returns the suggested wait in seconds (0 when the platform gave none).
func IsRateLimited(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindRateLimited {
		return apiErr.RetryAfter, true
	}
	return 0, false
}

// IsNotFound reports whether err means the target no longer exists.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsPermissionDenied reports whether err means the token lacks scope.
func IsPermissionDenied(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindPermissionDenied
}
