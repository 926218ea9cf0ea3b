package input

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/nodetree/internal/ctxlog"
	"github.com/vk/nodetree/internal/node"
)

// yamlRecord mirrors one YAML list entry. Unknown keys are rejected by the
// decoder.
type yamlRecord struct {
	NodeID            *string `yaml:"nodeId"`
	Name              *string `yaml:"name"`
	ParentID          *string `yaml:"parentId"`
	PreviousSiblingID *string `yaml:"previousSiblingId"`
}

// YAMLDecoder reads a YAML sequence of node mappings.
type YAMLDecoder struct{}

// NewYAMLDecoder creates a new YAML node decoder.
func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode parses src and validates every entry against the node schema.
func (d *YAMLDecoder) Decode(ctx context.Context, name string, src []byte) (node.List, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML decoder started.", "source", name, "bytes", len(src))

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var entries []*yamlRecord
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Msg: "document is empty"}
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, &SchemaError{Msg: strings.Join(typeErr.Errors, "; ")}
		}
		return nil, &ParseError{Source: name, Err: err}
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return nil, &SchemaError{Msg: "expected a single document"}
	case !errors.Is(err, io.EOF):
		return nil, &ParseError{Source: name, Err: err}
	}

	records := make([]record, 0, len(entries))
	for i, e := range entries {
		if e == nil {
			return nil, &SchemaError{Field: fieldPath(i, ""), Msg: "must be a mapping"}
		}
		records = append(records, record{
			NodeID:            e.NodeID,
			Name:              e.Name,
			ParentID:          e.ParentID,
			PreviousSiblingID: e.PreviousSiblingID,
		})
	}

	nodes, err := toNodes(records)
	if err != nil {
		return nil, err
	}
	logger.Debug("YAML decoding complete.", "node_count", len(nodes))
	return nodes, nil
}
