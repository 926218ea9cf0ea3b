package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/nodetree/internal/cli"
	"github.com/vk/nodetree/internal/input"
	"github.com/vk/nodetree/internal/tree"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	nodes := `
node "root" {
  name = "Root"
}

node "child" {
  name      = "Child"
  parent_id = "root"
}
`
	filePath := filepath.Join(t.TempDir(), "nodes.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(nodes), 0600), "failed to set up test file")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, errOut, []string{filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), `"nodeId": "child"`)
	require.Empty(t, errOut.String(), "nothing is logged at the default level")
}

func TestRun_InvalidTree(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Both nodes claim to be the top-left node.
	stdin := `[{"nodeId": "a", "name": "A"}, {"nodeId": "b", "name": "B"}]`
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(stdin), out, errOut, []string{"--output", "text", "-"})

	// --- Assert ---
	require.Error(t, err)
	require.True(t, errors.Is(err, tree.ErrInvalidTree))
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "The children could not be built: invalid node ids are a, b")
}

func TestRun_InputError(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), strings.NewReader("[{"), out, errOut, []string{"-"})

	require.Error(t, err)
	require.True(t, errors.Is(err, input.ErrParse))
	require.False(t, errors.Is(err, tree.ErrInvalidTree))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
