package sweep

import "github.com/sweepctl/sweepctl/pkg/cloudflare"

// Eligible returns the resources that may be deleted: everything except
// the entry at position 0, which is the resource currently serving
// traffic. Lists of length 0 or 1 have nothing eligible.
func Eligible(resources []cloudflare.Resource) []cloudflare.Resource {
	if len(resources) <= 1 {
		return nil
	}
	eligible := make([]cloudflare.Resource, len(resources)-1)
	copy(eligible, resources[1:])
	return eligible
}

// ActiveID returns the identifier of the active resource, or "" for an
// empty list.
func ActiveID(resources []cloudflare.Resource) string {
	if len(resources) == 0 {
		return ""
	}
	return resources[0].ID
}

// Narrow restricts a caller-supplied identifier selection to the
// eligible set. Identifiers outside the eligible set are dropped, as
// are duplicates (first occurrence wins). Order follows the request.
func Narrow(eligible []cloudflare.Resource, requested []string) []cloudflare.Resource {
	byID := make(map[string]cloudflare.Resource, len(eligible))
	for _, r := range eligible {
		byID[r.ID] = r
	}

	seen := make(map[string]bool, len(requested))
	var chosen []cloudflare.Resource
	for _, id := range requested {
		if seen[id] {
			continue
		}
		seen[id] = true
		if r, ok := byID[id]; ok {
			chosen = append(chosen, r)
		}
	}
	return chosen
}

// IDs extracts the identifiers from a resource list, preserving order.
func IDs(resources []cloudflare.Resource) []string {
	ids := make([]string, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}
	return ids
}
