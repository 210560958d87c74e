// Package reconcile removes allow-list entries already covered by the
// upstream baseline policy.
package reconcile

import (
	"github.com/p4th0r/pacbuild/internal/allowlist"
	"github.com/p4th0r/pacbuild/internal/baseline"
)

// Result is the outcome of reconciling an allow-list against the
// baseline. Both slices are sorted (the input list is sorted and order
// is preserved).
type Result struct {
	Kept    []string // domains surviving reconciliation
	Removed []string // domains already covered by the baseline
}

// Apply removes every allow-list domain whose apex is exactly present
// in the baseline set. No suffix matching: a baseline entry for foo.com
// never removes api.foo.com. A nil or empty set is a no-op: Kept
// equals the input list.
func Apply(list *allowlist.List, set *baseline.Set) Result {
	res := Result{Kept: make([]string, 0, len(list.Domains))}
	for _, d := range list.Domains {
		if set.Contains(d) {
			res.Removed = append(res.Removed, d)
		} else {
			res.Kept = append(res.Kept, d)
		}
	}
	return res
}
