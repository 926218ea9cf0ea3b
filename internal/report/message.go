// Package report renders build results for people and for other programs.
package report

import (
	"fmt"
	"strings"

	"github.com/vk/nodetree/internal/tree"
)

// Message returns the human-readable sentence for one failure.
func Message(f tree.Failure) string {
	switch f := f.(type) {
	case tree.DuplicateNodeIDs:
		return "There are duplicate nodes in the tree: node ids are " + joinIDs(f.NodeIDs)
	case tree.NoTopLeftNode:
		return "There is no top left node"
	case tree.NodeHasNullAsID:
		return "A node has an id of 'null'"
	case tree.CircularParentChildLoop:
		return "There is a circular dependency in the parent-child relationships: node ids in the loop are " + joinIDs(f.NodeIDs)
	case tree.InvalidChildrenList:
		return "The children could not be built: invalid node ids are " + joinIDs(f.NodeIDs)
	case tree.DanglingParentReference:
		return "A node refers to a parent that does not exist: node ids are " + joinIDs(f.NodeIDs)
	default:
		return fmt.Sprintf("Unknown failure: %s", f.Kind())
	}
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
