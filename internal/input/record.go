package input

import (
	"errors"
	"fmt"

	"github.com/vk/nodetree/internal/node"
)

const (
	fieldNodeID            = "nodeId"
	fieldName              = "name"
	fieldParentID          = "parentId"
	fieldPreviousSiblingID = "previousSiblingId"
)

// record is one decoded entry before validation. A nil field was absent or null.
type record struct {
	NodeID            *string
	Name              *string
	ParentID          *string
	PreviousSiblingID *string
}

// toNodes validates records and converts them into a node list. Every
// violation is collected before returning.
func toNodes(records []record) (node.List, error) {
	var errs []error
	nodes := make(node.List, 0, len(records))

	for i, r := range records {
		var recErrs []error
		recErrs = append(recErrs, required(i, fieldNodeID, r.NodeID)...)
		recErrs = append(recErrs, required(i, fieldName, r.Name)...)
		recErrs = append(recErrs, optional(i, fieldParentID, r.ParentID)...)
		recErrs = append(recErrs, optional(i, fieldPreviousSiblingID, r.PreviousSiblingID)...)
		if len(recErrs) > 0 {
			errs = append(errs, recErrs...)
			continue
		}
		nodes = append(nodes, node.Node{
			ID:                *r.NodeID,
			Name:              *r.Name,
			ParentID:          r.ParentID,
			PreviousSiblingID: r.PreviousSiblingID,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nodes, nil
}

func required(i int, field string, v *string) []error {
	switch {
	case v == nil:
		return []error{&SchemaError{Field: fieldPath(i, field), Msg: "required field is missing"}}
	case *v == "":
		return []error{&SchemaError{Field: fieldPath(i, field), Msg: "must not be empty"}}
	}
	return nil
}

func optional(i int, field string, v *string) []error {
	if v != nil && *v == "" {
		return []error{&SchemaError{Field: fieldPath(i, field), Msg: "must not be empty"}}
	}
	return nil
}

func fieldPath(i int, field string) string {
	if field == "" {
		return fmt.Sprintf("[%d]", i)
	}
	return fmt.Sprintf("[%d].%s", i, field)
}
