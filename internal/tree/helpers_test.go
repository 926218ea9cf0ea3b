package tree

import "github.com/vk/nodetree/internal/node"

// mk builds a node; empty parent or prev strings mean "none".
func mk(id, name, parent, prev string) node.Node {
	n := node.Node{ID: id, Name: name}
	if parent != "" {
		n.ParentID = node.Ref(parent)
	}
	if prev != "" {
		n.PreviousSiblingID = node.Ref(prev)
	}
	return n
}

func treeNodes(nodes ...node.Node) []*node.TreeNode {
	out := make([]*node.TreeNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, node.NewTreeNode(n))
	}
	return out
}

// permutations returns every ordering of list.
func permutations(list node.List) []node.List {
	if len(list) <= 1 {
		return []node.List{append(node.List(nil), list...)}
	}
	var out []node.List
	for i := range list {
		rest := make(node.List, 0, len(list)-1)
		rest = append(rest, list[:i]...)
		rest = append(rest, list[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append(node.List{list[i]}, p...))
		}
	}
	return out
}
