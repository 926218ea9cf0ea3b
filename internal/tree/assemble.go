package tree

import (
	"maps"
	"slices"

	"github.com/vk/nodetree/internal/node"
)

// Forest is the unordered parent/children shape of a prechecked list. The
// id index is a lookup table only; a TreeNode is owned by the children
// slice of its parent once ordering has run.
type Forest struct {
	byID   map[string]*node.TreeNode
	top    []*node.TreeNode
	groups map[string][]*node.TreeNode
}

// Assemble indexes nodes by id and groups every node under its parent, or
// under the top level when it has none. Group members keep input order.
// Nodes whose parent is absent from the input are reported as a single
// DanglingParentReference.
func Assemble(nodes node.List) (*Forest, []Failure) {
	f := &Forest{
		byID:   make(map[string]*node.TreeNode, len(nodes)),
		groups: make(map[string][]*node.TreeNode),
	}
	for _, n := range nodes {
		f.byID[n.ID] = node.NewTreeNode(n)
	}

	var dangling []string
	for _, n := range nodes {
		tn := f.byID[n.ID]
		if n.IsTopLevel() {
			f.top = append(f.top, tn)
			continue
		}
		parentID := *n.ParentID
		if _, ok := f.byID[parentID]; !ok {
			dangling = append(dangling, n.ID)
			continue
		}
		f.groups[parentID] = append(f.groups[parentID], tn)
	}

	if len(dangling) > 0 {
		slices.Sort(dangling)
		return nil, []Failure{DanglingParentReference{NodeIDs: dangling}}
	}
	return f, nil
}

// Len returns the number of indexed nodes.
func (f *Forest) Len() int {
	return len(f.byID)
}

// Lookup returns the tree node with the given id.
func (f *Forest) Lookup(id string) (*node.TreeNode, bool) {
	tn, ok := f.byID[id]
	return tn, ok
}

// TopLevel returns the unordered top-level group.
func (f *Forest) TopLevel() []*node.TreeNode {
	return f.top
}

// Group returns the unordered children of parentID.
func (f *Forest) Group(parentID string) []*node.TreeNode {
	return f.groups[parentID]
}

// ParentIDs returns, in ascending order, the ids that have children.
func (f *Forest) ParentIDs() []string {
	return slices.Sorted(maps.Keys(f.groups))
}
