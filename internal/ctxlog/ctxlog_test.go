package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the embedded logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := WithLogger(context.Background(), logger)

		got := FromContext(ctx)
		require.Same(t, logger, got)

		got.Info("hello", "k", "v")
		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "k=v")
	})

	t.Run("falls back to the default logger", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctx = With(ctx, "path", "nodes.json")
	FromContext(ctx).Info("loaded")

	assert.Contains(t, buf.String(), "msg=loaded")
	assert.Contains(t, buf.String(), "path=nodes.json")
}
