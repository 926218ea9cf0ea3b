// Package node defines the records a tree is built from and the ordered
// tree values a successful build produces.
package node

// NullID is the literal id text reserved as a sentinel. No node may use it.
const NullID = "null"

// Node is a single flat input record. It names its parent and the sibling
// that comes immediately before it; nil means "top level" and "first among
// my siblings" respectively.
type Node struct {
	// ID uniquely identifies the node within one input list.
	ID string `json:"nodeId" yaml:"nodeId"`
	// Name is the human-readable label carried through to the output.
	Name string `json:"name" yaml:"name"`
	// ParentID names the parent node, or nil for a top-level node.
	ParentID *string `json:"parentId" yaml:"parentId"`
	// PreviousSiblingID names the sibling ordered directly before this one,
	// or nil for the head of the sibling chain.
	PreviousSiblingID *string `json:"previousSiblingId" yaml:"previousSiblingId"`
}

// List is an ordered sequence of nodes. Its order only affects diagnostics.
type List []Node

// Ref returns a pointer to id, for building optional references.
func Ref(id string) *string {
	return &id
}

// IsTopLevel reports whether the node has no parent.
func (n Node) IsTopLevel() bool {
	return n.ParentID == nil
}

// IsChainHead reports whether the node is first among its siblings.
func (n Node) IsChainHead() bool {
	return n.PreviousSiblingID == nil
}

// IsTopLeft reports whether the node is the root of the tree: top level and
// first among the top-level siblings.
func (n Node) IsTopLeft() bool {
	return n.IsTopLevel() && n.IsChainHead()
}

// TreeNode is a Node together with its ordered children. Every TreeNode is
// owned by exactly one children slice, or by the top-level result.
type TreeNode struct {
	Node     `yaml:",inline"`
	Children []*TreeNode `json:"children" yaml:"children"`
}

// NewTreeNode wraps n with an empty, non-nil children list.
func NewTreeNode(n Node) *TreeNode {
	return &TreeNode{Node: n, Children: make([]*TreeNode, 0)}
}

// Flatten returns every node of the forest in depth-first, sibling order.
func Flatten(roots []*TreeNode) []*TreeNode {
	var out []*TreeNode
	var visit func(nodes []*TreeNode)
	visit = func(nodes []*TreeNode) {
		for _, n := range nodes {
			out = append(out, n)
			visit(n.Children)
		}
	}
	visit(roots)
	return out
}

// IDs returns the ids of nodes in order.
func IDs(nodes []*TreeNode) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids
}
