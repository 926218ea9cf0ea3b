package tree

import (
	"context"

	"github.com/vk/nodetree/internal/ctxlog"
	"github.com/vk/nodetree/internal/node"
)

// Build validates nodes and assembles them into an ordered forest of
// top-level tree nodes. If any stage reports failures, Build stops there and
// returns a *BuildError carrying exactly that stage's failures.
func Build(ctx context.Context, nodes node.List) ([]*node.TreeNode, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting tree construction.", "node_count", len(nodes))

	if failures := Precheck(nodes); len(failures) > 0 {
		return nil, halt(ctx, Prechecking, failures)
	}
	logger.Debug("Build: Prechecks passed.")

	forest, failures := Assemble(nodes)
	if len(failures) > 0 {
		return nil, halt(ctx, Assembling, failures)
	}
	logger.Debug("Build: Assembly complete.", "group_count", len(forest.ParentIDs()))

	roots, failures := forest.Order()
	if len(failures) > 0 {
		return nil, halt(ctx, Ordering, failures)
	}
	logger.Debug("Build: Sibling ordering complete.", "top_level_count", len(roots))

	if failures := DetectCycles(forest); len(failures) > 0 {
		return nil, halt(ctx, CycleChecking, failures)
	}
	logger.Debug("Build: Cycle detection passed.")

	logger.Debug("Build: Tree construction successful.", "stage", Done.String())
	return roots, nil
}

func halt(ctx context.Context, stage Stage, failures []Failure) error {
	ctxlog.FromContext(ctx).Debug("Build: Stage reported failures.", "stage", stage.String(), "failure_count", len(failures))
	return &BuildError{Stage: stage, Failures: failures}
}
