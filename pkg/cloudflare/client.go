package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production Cloudflare API endpoint.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// RedactionMarker replaces the API token wherever it would otherwise
// appear in an error message.
const RedactionMarker = "[REDACTED]"

// maxErrorBody bounds how much of an unparseable response is echoed
// into an error message.
const maxErrorBody = 512

// Client issues authenticated calls against the Workers API for a single
// account. It is safe for reuse across calls; credentials are fixed at
// construction.
type Client struct {
	baseURL    string
	accountID  string
	apiToken   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the given account using a bearer token.
func NewClient(accountID, apiToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		accountID:  accountID,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListDeployments returns the script's deployments, newest first. The
// entry at position 0 is the deployment currently routing traffic.
func (c *Client) ListDeployments(ctx context.Context, scriptName string) ([]Resource, error) {
	raw, err := c.do(ctx, http.MethodGet, c.scriptPath(scriptName, "deployments"))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Deployments []deploymentItem `json:"deployments"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, c.transportErrf("unexpected deployments payload: %v", err)
	}

	resources := make([]Resource, 0, len(payload.Deployments))
	for _, d := range payload.Deployments {
		resources = append(resources, Resource{
			ID:        d.ID,
			CreatedOn: d.CreatedOn,
			Author:    d.AuthorEmail,
		})
	}
	return resources, nil
}

// DeleteDeployment deletes a single deployment by ID.
func (c *Client) DeleteDeployment(ctx context.Context, scriptName, deploymentID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.scriptPath(scriptName, "deployments", deploymentID))
	return err
}

// ListVersions returns the script's versions, newest first.
func (c *Client) ListVersions(ctx context.Context, scriptName string) ([]Resource, error) {
	raw, err := c.do(ctx, http.MethodGet, c.scriptPath(scriptName, "versions"))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []versionItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, c.transportErrf("unexpected versions payload: %v", err)
	}

	resources := make([]Resource, 0, len(payload.Items))
	for _, v := range payload.Items {
		resources = append(resources, Resource{
			ID:        v.ID,
			CreatedOn: v.Metadata.CreatedOn,
			Author:    v.Metadata.AuthorEmail,
		})
	}
	return resources, nil
}

// DeleteVersion deletes a single version by ID.
func (c *Client) DeleteVersion(ctx context.Context, scriptName, versionID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.scriptPath(scriptName, "versions", versionID))
	return err
}

// VerifyToken checks the API token against the token verification
// endpoint and returns its reported status.
func (c *Client) VerifyToken(ctx context.Context) (*TokenStatus, error) {
	raw, err := c.do(ctx, http.MethodGet, "/user/tokens/verify")
	if err != nil {
		return nil, err
	}

	var status TokenStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, c.transportErrf("unexpected token verify payload: %v", err)
	}
	return &status, nil
}

func (c *Client) scriptPath(scriptName string, parts ...string) string {
	segments := []string{
		"accounts", c.accountID, "workers", "scripts", scriptName,
	}
	segments = append(segments, parts...)
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(segments, "/")
}

// do issues exactly one request and classifies the response. It never
// retries; backoff on rate limits is the caller's concern.
func (c *Client) do(ctx context.Context, method, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, c.transportErrf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportErrf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportErrf("read response: %v", err)
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return nil, &APIError{
			Kind:       KindRateLimited,
			Message:    c.redact(firstAPIMessage(body, "rate limited")),
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	case http.StatusForbidden:
		return nil, &APIError{
			Kind:    KindPermissionDenied,
			Message: c.redact(firstAPIMessage(body, "permission denied")),
		}
	case http.StatusNotFound:
		return nil, &APIError{
			Kind:    KindNotFound,
			Message: c.redact(firstAPIMessage(body, "not found")),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// Redact before truncating: a token straddling the cut would
		// otherwise leak its prefix.
		return nil, c.transportErrf("unexpected response (status %d): %s",
			resp.StatusCode, truncate(c.redact(string(body)), maxErrorBody))
	}
	if !env.Success {
		return nil, &APIError{
			Kind:    KindTransport,
			Message: c.redact(firstAPIMessage(body, fmt.Sprintf("API error (status %d)", resp.StatusCode))),
		}
	}
	return env.Result, nil
}

func (c *Client) transportErrf(format string, args ...interface{}) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Message: c.redact(fmt.Sprintf(format, args...)),
	}
}

// redact scrubs the bearer token from a message. Responses can echo
// request headers back, so this runs on every outgoing error path.
func (c *Client) redact(message string) string {
	if c.apiToken == "" {
		return message
	}
	return strings.ReplaceAll(message, c.apiToken, RedactionMarker)
}

// firstAPIMessage pulls errors[0].message out of an envelope body,
// falling back when the body is not an envelope or reports no errors.
func firstAPIMessage(body []byte, fallback string) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fallback
	}
	if len(env.Errors) > 0 && env.Errors[0].Message != "" {
		return env.Errors[0].Message
	}
	return fallback
}

func parseRetryAfter(header string) int {
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
