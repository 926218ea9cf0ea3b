package input

import (
	"context"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/nodetree/internal/ctxlog"
	"github.com/vk/nodetree/internal/node"
)

// hclNode is one `node "<id>" { ... }` block.
type hclNode struct {
	ID                string  `hcl:"id,label"`
	Name              string  `hcl:"name"`
	ParentID          *string `hcl:"parent_id,optional"`
	PreviousSiblingID *string `hcl:"previous_sibling_id,optional"`
}

// hclFile is the root of an HCL node document. Any other top-level block or
// attribute is a decode error.
type hclFile struct {
	Nodes []*hclNode `hcl:"node,block"`
}

// HCLDecoder reads node blocks from an HCL document:
//
//	node "1" {
//	  name = "One"
//	}
//
//	node "2" {
//	  name      = "Two"
//	  parent_id = "1"
//	}
type HCLDecoder struct{}

// NewHCLDecoder creates a new HCL node decoder.
func NewHCLDecoder() *HCLDecoder {
	return &HCLDecoder{}
}

// Decode parses src and validates every block against the node schema.
func (d *HCLDecoder) Decode(ctx context.Context, name string, src []byte) (node.List, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL decoder started.", "source", name, "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, &ParseError{Source: name, Msg: diags.Error(), Err: diags}
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, &SchemaError{Msg: diags.Error()}
	}

	records := make([]record, 0, len(root.Nodes))
	for _, b := range root.Nodes {
		records = append(records, record{
			NodeID:            &b.ID,
			Name:              &b.Name,
			ParentID:          b.ParentID,
			PreviousSiblingID: b.PreviousSiblingID,
		})
	}

	nodes, err := toNodes(records)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL decoding complete.", "node_count", len(nodes))
	return nodes, nil
}
