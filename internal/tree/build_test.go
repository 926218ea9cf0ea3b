package tree

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nodetree/internal/node"
)

func leaf(n node.Node) *node.TreeNode {
	return node.NewTreeNode(n)
}

func branch(n node.Node, children ...*node.TreeNode) *node.TreeNode {
	tn := node.NewTreeNode(n)
	tn.Children = append(tn.Children, children...)
	return tn
}

func TestBuild_HappyPaths(t *testing.T) {
	testCases := []struct {
		name  string
		nodes node.List
		want  []*node.TreeNode
	}{
		{
			name:  "single node",
			nodes: node.List{mk("3", "Three", "", "")},
			want:  []*node.TreeNode{leaf(mk("3", "Three", "", ""))},
		},
		{
			name:  "parent listed before child",
			nodes: node.List{mk("1", "One", "", ""), mk("2", "Two", "1", "")},
			want: []*node.TreeNode{
				branch(mk("1", "One", "", ""), leaf(mk("2", "Two", "1", ""))),
			},
		},
		{
			name: "siblings in chain order",
			nodes: node.List{
				mk("1", "One", "", ""),
				mk("2", "Two", "1", "3"),
				mk("3", "Three", "1", ""),
				mk("4", "Four", "1", "2"),
			},
			want: []*node.TreeNode{
				branch(mk("1", "One", "", ""),
					leaf(mk("3", "Three", "1", "")),
					leaf(mk("2", "Two", "1", "3")),
					leaf(mk("4", "Four", "1", "2")),
				),
			},
		},
		{
			name: "several top level nodes and nested groups",
			nodes: node.List{
				mk("b1", "B1", "b", ""),
				mk("b", "B", "", "a"),
				mk("a2", "A2", "a", "a1"),
				mk("a", "A", "", ""),
				mk("a1", "A1", "a", ""),
				mk("a1x", "A1x", "a1", ""),
			},
			want: []*node.TreeNode{
				branch(mk("a", "A", "", ""),
					branch(mk("a1", "A1", "a", ""), leaf(mk("a1x", "A1x", "a1", ""))),
					leaf(mk("a2", "A2", "a", "a1")),
				),
				branch(mk("b", "B", "", "a"), leaf(mk("b1", "B1", "b", ""))),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Build(context.Background(), tc.nodes)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_SadPaths(t *testing.T) {
	testCases := []struct {
		name     string
		nodes    node.List
		stage    Stage
		failures []Failure
	}{
		{
			name:     "duplicate ids",
			nodes:    node.List{mk("1", "Two", "1", ""), mk("1", "One", "", "")},
			stage:    Prechecking,
			failures: []Failure{DuplicateNodeIDs{NodeIDs: []string{"1"}}},
		},
		{
			name:     "no top left node",
			nodes:    node.List{mk("1", "Two", "1", "")},
			stage:    Prechecking,
			failures: []Failure{NoTopLeftNode{}},
		},
		{
			name:     "null as id",
			nodes:    node.List{mk("null", "Two", "", "")},
			stage:    Prechecking,
			failures: []Failure{NodeHasNullAsID{}},
		},
		{
			name: "prechecks short-circuit later stages",
			nodes: node.List{
				mk("1", "One", "", ""),
				mk("1", "Again", "", ""),
				mk("2", "Orphan", "ghost", ""),
			},
			stage:    Prechecking,
			failures: []Failure{DuplicateNodeIDs{NodeIDs: []string{"1"}}},
		},
		{
			name:     "dangling parent",
			nodes:    node.List{mk("1", "One", "", ""), mk("2", "Two", "ghost", "")},
			stage:    Assembling,
			failures: []Failure{DanglingParentReference{NodeIDs: []string{"2"}}},
		},
		{
			name: "parent child loop",
			nodes: node.List{
				mk("Top", "Top", "", ""),
				mk("Loop1", "Loop1", "Loop2", ""),
				mk("Loop2", "Loop2", "Loop1", ""),
			},
			stage:    CycleChecking,
			failures: []Failure{CircularParentChildLoop{NodeIDs: []string{"Loop1", "Loop2"}}},
		},
		{
			name: "children with the same previous sibling",
			nodes: node.List{
				mk("1", "One", "", ""),
				mk("2", "Two", "1", ""),
				mk("3", "Three", "1", "2"),
				mk("4", "Four", "1", "2"),
			},
			stage:    Ordering,
			failures: []Failure{InvalidChildrenList{NodeIDs: []string{"3", "4"}}},
		},
		{
			name: "previous sibling missing from the group",
			nodes: node.List{
				mk("1", "One", "", ""),
				mk("2", "Two", "1", ""),
				mk("3", "Three", "1", "9"),
			},
			stage:    Ordering,
			failures: []Failure{InvalidChildrenList{NodeIDs: []string{"3"}}},
		},
		{
			name: "previous sibling under another parent",
			nodes: node.List{
				mk("1", "One", "", ""),
				mk("2", "Two", "1", ""),
				mk("3", "Three", "2", "1"),
			},
			stage: Ordering,
			failures: []Failure{
				InvalidChildrenList{NodeIDs: []string{"3"}},
			},
		},
		{
			name: "top level chain errors are reported",
			nodes: node.List{
				mk("1", "One", "", ""),
				mk("2", "Two", "", ""),
			},
			stage:    Ordering,
			failures: []Failure{InvalidChildrenList{NodeIDs: []string{"1", "2"}}},
		},
		{
			name: "ordering failures short-circuit cycle checking",
			nodes: node.List{
				mk("1", "One", "", ""),
				mk("x", "X", "y", ""),
				mk("y", "Y", "x", ""),
				mk("z", "Z", "x", ""),
			},
			stage:    Ordering,
			failures: []Failure{InvalidChildrenList{NodeIDs: []string{"y", "z"}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			roots, err := Build(context.Background(), tc.nodes)
			require.Error(t, err)
			assert.Nil(t, roots)
			assert.True(t, errors.Is(err, ErrInvalidTree))

			var buildErr *BuildError
			require.True(t, errors.As(err, &buildErr))
			assert.Equal(t, tc.stage, buildErr.Stage)
			assert.Equal(t, tc.failures, buildErr.Failures)
		})
	}
}

func TestBuild_PermutationInvariance(t *testing.T) {
	valid := node.List{
		mk("1", "One", "", ""),
		mk("2", "Two", "1", "3"),
		mk("3", "Three", "1", ""),
		mk("4", "Four", "", "1"),
		mk("5", "Five", "3", ""),
	}
	want, err := Build(context.Background(), valid)
	require.NoError(t, err)

	for _, p := range permutations(valid) {
		got, err := Build(context.Background(), p)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("shape changed for permutation %v (-want +got):\n%s", p, diff)
		}
	}

	invalid := node.List{
		mk("Top", "Top", "", ""),
		mk("a", "A", "b", ""),
		mk("b", "B", "a", ""),
		mk("c", "C", "Top", ""),
	}
	_, wantErr := Build(context.Background(), invalid)
	require.Error(t, wantErr)
	for _, p := range permutations(invalid) {
		_, err := Build(context.Background(), p)
		assert.Equal(t, wantErr, err)
	}
}

func TestBuild_PreservesEveryNode(t *testing.T) {
	nodes := node.List{
		mk("r", "Root", "", ""),
		mk("r2", "Root 2", "", "r"),
		mk("c1", "C1", "r", ""),
		mk("c2", "C2", "r", "c1"),
		mk("c3", "C3", "r", "c2"),
		mk("g1", "G1", "c2", ""),
		mk("g2", "G2", "c2", "g1"),
		mk("h", "H", "r2", ""),
	}

	roots, err := Build(context.Background(), nodes)
	require.NoError(t, err)

	flat := node.Flatten(roots)
	got := node.IDs(flat)
	want := make([]string, 0, len(nodes))
	for _, n := range nodes {
		want = append(want, n.ID)
	}
	assert.ElementsMatch(t, want, got)
	assert.Equal(t, []string{"r", "c1", "c2", "g1", "g2", "c3", "r2", "h"}, got)

	for _, tn := range flat {
		for i, child := range tn.Children {
			require.NotNil(t, child.ParentID)
			assert.Equal(t, tn.ID, *child.ParentID)
			if i == 0 {
				assert.Nil(t, child.PreviousSiblingID)
				continue
			}
			require.NotNil(t, child.PreviousSiblingID)
			assert.Equal(t, tn.Children[i-1].ID, *child.PreviousSiblingID)
		}
	}
}

func TestBuildError(t *testing.T) {
	err := &BuildError{
		Stage: Ordering,
		Failures: []Failure{
			InvalidChildrenList{NodeIDs: []string{"a", "b"}},
			NoTopLeftNode{},
		},
	}
	assert.Equal(t, "invalid tree: ordering: invalidChildrenList [a, b]; noTopLeftNode", err.Error())

	kinds := make([]string, 0, len(err.Failures))
	for _, f := range err.Failures {
		kinds = append(kinds, f.Kind().String())
	}
	assert.True(t, slices.Equal([]string{"invalidChildrenList", "noTopLeftNode"}, kinds))
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Equal(t, "cycle checking", CycleChecking.String())
}
