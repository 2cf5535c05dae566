package cloudflare

import (
	"encoding/json"
	"time"
)

// Resource is a deletable Workers resource: a deployment or a version.
// Lists are ordered newest-first by the API; the entry at position 0 is
// the resource currently serving traffic.
type Resource struct {
	ID        string
	CreatedOn time.Time
	Author    string
}

// TokenStatus is the result of a token verification call.
type TokenStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// envelope is the standard Cloudflare v4 response wrapper.
type envelope struct {
	Success  bool            `json:"success"`
	Result   json.RawMessage `json:"result"`
	Errors   []apiMessage    `json:"errors"`
	Messages []string        `json:"messages"`
}

type apiMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type deploymentItem struct {
	ID          string    `json:"id"`
	CreatedOn   time.Time `json:"created_on"`
	AuthorEmail string    `json:"author_email"`
}

type versionItem struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Metadata struct {
		CreatedOn   time.Time `json:"created_on"`
		AuthorEmail string    `json:"author_email"`
	} `json:"metadata"`
}
