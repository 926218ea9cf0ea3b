package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vk/nodetree/internal/ctxlog"
	"github.com/vk/nodetree/internal/input"
	"github.com/vk/nodetree/internal/node"
	"github.com/vk/nodetree/internal/report"
	"github.com/vk/nodetree/internal/tree"
	"github.com/vk/nodetree/internal/tui"
)

// Run executes the main application logic based on the app's configuration.
// A tree that cannot be built is reported on the error stream and returned
// as an error matching tree.ErrInvalidTree.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "interactive", a.config.Interactive)

	if a.config.Interactive {
		return a.runInteractive(ctx)
	}

	roots, err := a.build(ctx, a.config.InputPath)
	if err != nil {
		var buildErr *tree.BuildError
		if errors.As(err, &buildErr) {
			a.logger.Info("Tree could not be built.", "stage", buildErr.Stage.String(), "failure_count", len(buildErr.Failures))
			if werr := report.WriteFailures(a.errW, a.config.OutputFormat, buildErr.Failures); werr != nil {
				return fmt.Errorf("failed to write failures: %w", werr)
			}
		}
		return err
	}

	if err := report.WriteTree(a.outW, a.config.OutputFormat, roots); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// runInteractive drives the menu loop until the user quits. Records below
// warn would interleave with the terminal UI, so they are suppressed for
// the duration of the session.
func (a *App) runInteractive(ctx context.Context) error {
	prev := a.level.Level()
	if prev < slog.LevelWarn {
		a.level.Set(slog.LevelWarn)
	}
	a.logger.Debug("Interactive session started.")

	err := tui.Run(ctx, func(path string) string {
		return a.buildAndRender(ctx, path)
	}, a.inR, a.outW)

	a.level.Set(prev)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, tea.ErrInterrupted) {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	a.logger.Debug("Interactive session ended.")
	return nil
}

// build loads the document at path and builds its tree.
func (a *App) build(ctx context.Context, path string) ([]*node.TreeNode, error) {
	ctx = ctxlog.With(ctx, "input", path)
	logger := ctxlog.FromContext(ctx)

	var (
		nodes node.List
		err   error
	)
	if path == StdinPath {
		nodes, err = input.Read(ctx, a.inR, path, a.config.InputFormat)
	} else {
		nodes, err = input.Load(ctx, path, a.config.InputFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load nodes: %w", err)
	}
	logger.Debug("Nodes loaded.", "node_count", len(nodes))

	roots, err := tree.Build(ctx, nodes)
	if err != nil {
		return nil, err
	}
	logger.Info("Tree built.", "top_level_count", len(roots))
	return roots, nil
}

// buildAndRender runs one interactive build and returns what to show for it.
// Every outcome is turned into text so one bad file never ends the session.
func (a *App) buildAndRender(ctx context.Context, path string) string {
	if path == StdinPath {
		return "Reading standard input is not supported in interactive mode"
	}

	var buf bytes.Buffer
	roots, err := a.build(ctx, path)
	if err != nil {
		var buildErr *tree.BuildError
		if !errors.As(err, &buildErr) {
			return err.Error()
		}
		if werr := report.WriteFailures(&buf, a.config.OutputFormat, buildErr.Failures); werr != nil {
			return werr.Error()
		}
		return strings.TrimRight(buf.String(), "\n")
	}

	if err := report.WriteTree(&buf, a.config.OutputFormat, roots); err != nil {
		return err.Error()
	}
	return strings.TrimRight(buf.String(), "\n")
}
