package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vk/nodetree/internal/node"
	"github.com/vk/nodetree/internal/tree"
)

// failureDoc is the machine-readable form of one failure.
type failureDoc struct {
	Type    string   `json:"type" yaml:"type"`
	NodeIDs []string `json:"nodeIds,omitempty" yaml:"nodeIds,omitempty"`
	Message string   `json:"message" yaml:"message"`
}

func failureDocs(failures []tree.Failure) []failureDoc {
	docs := make([]failureDoc, 0, len(failures))
	for _, f := range failures {
		docs = append(docs, failureDoc{
			Type:    f.Kind().String(),
			NodeIDs: tree.NodeIDs(f),
			Message: Message(f),
		})
	}
	return docs
}

// WriteJSON writes the ordered tree as an indented JSON array.
func WriteJSON(w io.Writer, roots []*node.TreeNode) error {
	if roots == nil {
		roots = []*node.TreeNode{}
	}
	return encodeJSON(w, roots)
}

// WriteFailuresJSON writes failures as a JSON array of
// {"type", "nodeIds", "message"} objects.
func WriteFailuresJSON(w io.Writer, failures []tree.Failure) error {
	return encodeJSON(w, failureDocs(failures))
}

// WriteYAML writes the ordered tree as a YAML sequence.
func WriteYAML(w io.Writer, roots []*node.TreeNode) error {
	if roots == nil {
		roots = []*node.TreeNode{}
	}
	return encodeYAML(w, roots)
}

// WriteFailuresYAML writes failures with the same fields as WriteFailuresJSON.
func WriteFailuresYAML(w io.Writer, failures []tree.Failure) error {
	return encodeYAML(w, failureDocs(failures))
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
