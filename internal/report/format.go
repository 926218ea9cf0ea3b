package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/nodetree/internal/node"
	"github.com/vk/nodetree/internal/tree"
)

// ErrUnsupportedFormat is returned for an unknown output format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format names an output rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat validates a user supplied output format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (expected json, yaml or text)", ErrUnsupportedFormat, s)
	}
}

// WriteTree writes a successful result in the given format.
func WriteTree(w io.Writer, f Format, roots []*node.TreeNode) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, roots)
	case FormatYAML:
		return WriteYAML(w, roots)
	case FormatText:
		return WriteText(w, roots)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// WriteFailures writes build failures in the given format.
func WriteFailures(w io.Writer, f Format, failures []tree.Failure) error {
	switch f {
	case FormatJSON:
		return WriteFailuresJSON(w, failures)
	case FormatYAML:
		return WriteFailuresYAML(w, failures)
	case FormatText:
		return WriteFailuresText(w, failures)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
