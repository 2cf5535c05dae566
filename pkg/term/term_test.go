package term

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepctl/sweepctl/pkg/cloudflare"
	"github.com/sweepctl/sweepctl/pkg/sweep"
)

func init() {
	// Keep assertions free of ANSI escapes.
	color.NoColor = true
}

func sampleResources(ids ...string) []cloudflare.Resource {
	out := make([]cloudflare.Resource, len(ids))
	for i, id := range ids {
		out[i] = cloudflare.Resource{
			ID:        id,
			CreatedOn: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Author:    "dev@example.com",
		}
	}
	return out
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "yes word", input: "YES\n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "empty declines", input: "\n", expected: false},
		{name: "garbage declines", input: "sure\n", expected: false},
		{name: "closed input declines", input: "", expected: false},
		{name: "truncated yes declines", input: "y", expected: false},
		{name: "truncated yes word declines", input: "yes", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Delete 3 deployment(s)?")
			assert.Equal(t, tt.expected, got)
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestChooseSubset(t *testing.T) {
	eligible := sampleResources("id1", "id2", "id3")

	tests := []struct {
		name     string
		input    string
		expected []string
		wantErr  bool
	}{
		{name: "all", input: "all\n", expected: []string{"id1", "id2", "id3"}},
		{name: "subset", input: "1,3\n", expected: []string{"id1", "id3"}},
		{name: "spaces tolerated", input: " 2 , 3 \n", expected: []string{"id2", "id3"}},
		{name: "duplicates collapse", input: "1,1,2\n", expected: []string{"id1", "id2"}},
		{name: "empty aborts", input: "\n", expected: []string{}},
		{name: "closed input aborts", input: "", expected: []string{}},
		{name: "out of range", input: "4\n", wantErr: true},
		{name: "zero", input: "0\n", wantErr: true},
		{name: "not a number", input: "id1\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			chosen, err := ChooseSubset(strings.NewReader(tt.input), &out, "deployment", eligible)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sweep.IDs(chosen))
		})
	}
}

func TestRenderResources(t *testing.T) {
	var out bytes.Buffer
	RenderResources(&out, "deployment", sampleResources("active", "id2"))

	text := out.String()
	assert.Contains(t, text, "active")
	assert.Contains(t, text, "id2")
	assert.Contains(t, text, "protected from deletion")

	out.Reset()
	RenderResources(&out, "deployment", nil)
	assert.Contains(t, out.String(), "No deployments found")
}

func TestProgress(t *testing.T) {
	var out bytes.Buffer
	progress := Progress(&out)
	progress(1, 4, "id1")
	progress(2, 4, "id2")

	text := out.String()
	assert.Contains(t, text, "deleted id1 (1/4)")
	assert.Contains(t, text, "deleted id2 (2/4)")
}

func TestRenderReport(t *testing.T) {
	var out bytes.Buffer
	RenderReport(&out, "version", sweep.Report{
		Succeeded: []string{"id1", "id2"},
		Failed:    []sweep.Failure{{ID: "id3", Message: "notfound: gone"}},
	})

	text := out.String()
	assert.Contains(t, text, "Deleted 2 version(s)")
	assert.Contains(t, text, "id3: notfound: gone")

	out.Reset()
	RenderReport(&out, "version", sweep.Report{Succeeded: []string{"id1"}})
	assert.NotContains(t, out.String(), "FAILED")
}

func TestRenderDryRun(t *testing.T) {
	var out bytes.Buffer
	RenderDryRun(&out, "deployment", sampleResources("id1", "id2"))

	text := out.String()
	assert.Contains(t, text, "would delete 2 deployment(s)")
	assert.Contains(t, text, "id1")
	assert.Contains(t, text, "id2")
}
