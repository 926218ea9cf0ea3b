package tree

import (
	"slices"

	"github.com/vk/nodetree/internal/node"
)

// OrderSiblings reconstructs the chain implied by the previous-sibling
// references of one group. The head is the member without a previous
// sibling; each step follows to the member that names the current one.
//
// When two members claim the same predecessor, the first claim in group
// order is kept and the sorted pair is reported. Members the walk never
// reaches, through a dangling reference or a loop among siblings, are
// reported together as one sorted list. The returned order is nil whenever
// failures are returned.
func OrderSiblings(group []*node.TreeNode) ([]*node.TreeNode, []Failure) {
	var failures []Failure
	var head *node.TreeNode
	successor := make(map[string]*node.TreeNode, len(group))

	for _, tn := range group {
		if tn.IsChainHead() {
			if head != nil {
				failures = append(failures, conflict(head, tn))
				continue
			}
			head = tn
			continue
		}
		prev := *tn.PreviousSiblingID
		if first, ok := successor[prev]; ok {
			failures = append(failures, conflict(first, tn))
			continue
		}
		successor[prev] = tn
	}

	ordered := make([]*node.TreeNode, 0, len(group))
	placed := make(map[string]struct{}, len(group))
	for cur := head; cur != nil; cur = successor[cur.ID] {
		if _, seen := placed[cur.ID]; seen {
			break
		}
		placed[cur.ID] = struct{}{}
		ordered = append(ordered, cur)
	}

	var unplaced []string
	for _, tn := range successor {
		if _, ok := placed[tn.ID]; !ok {
			unplaced = append(unplaced, tn.ID)
		}
	}
	if len(unplaced) > 0 {
		slices.Sort(unplaced)
		failures = append(failures, InvalidChildrenList{NodeIDs: unplaced})
	}

	if len(failures) > 0 {
		return nil, failures
	}
	return ordered, nil
}

func conflict(a, b *node.TreeNode) Failure {
	pair := []string{a.ID, b.ID}
	slices.Sort(pair)
	return InvalidChildrenList{NodeIDs: pair}
}

// Order applies OrderSiblings to the top-level group and then to every
// parent group in ascending parent id, attaching each ordered group as its
// parent's children. Failures from all groups are returned together.
func (f *Forest) Order() ([]*node.TreeNode, []Failure) {
	roots, failures := OrderSiblings(f.TopLevel())
	for _, parentID := range f.ParentIDs() {
		children, groupFailures := OrderSiblings(f.Group(parentID))
		if len(groupFailures) > 0 {
			failures = append(failures, groupFailures...)
			continue
		}
		parent, _ := f.Lookup(parentID)
		parent.Children = children
	}
	if len(failures) > 0 {
		return nil, failures
	}
	return roots, nil
}
