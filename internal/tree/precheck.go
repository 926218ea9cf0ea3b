package tree

import (
	"slices"

	"github.com/vk/nodetree/internal/node"
)

// Precheck rejects lists that cannot form a tree before any graph work is
// done. All checks run in a single pass so simultaneous problems are
// reported together, in the order duplicates, top-left, null id.
func Precheck(nodes node.List) []Failure {
	seen := make(map[string]struct{}, len(nodes))
	var duplicates []string
	hasTopLeft := false
	hasNullID := false

	for _, n := range nodes {
		if _, ok := seen[n.ID]; ok {
			duplicates = append(duplicates, n.ID)
		} else {
			seen[n.ID] = struct{}{}
		}
		if n.IsTopLeft() {
			hasTopLeft = true
		}
		if n.ID == node.NullID {
			hasNullID = true
		}
	}

	var failures []Failure
	if len(duplicates) > 0 {
		slices.Sort(duplicates)
		failures = append(failures, DuplicateNodeIDs{NodeIDs: duplicates})
	}
	if !hasTopLeft {
		failures = append(failures, NoTopLeftNode{})
	}
	if hasNullID {
		failures = append(failures, NodeHasNullAsID{})
	}
	return failures
}
