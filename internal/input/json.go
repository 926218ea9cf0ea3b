package input

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/nodetree/internal/ctxlog"
	"github.com/vk/nodetree/internal/node"
)

// nodeAttributes is the set of attributes a JSON node object may carry.
// Each one is converted to a string on its own so that every bad value is
// reported with its field path.
var nodeAttributes = map[string]struct{}{
	fieldNodeID:            {},
	fieldName:              {},
	fieldParentID:          {},
	fieldPreviousSiblingID: {},
}

// JSONDecoder reads a JSON array of node objects. Values are coerced to
// the schema the way cty conversion does, so scalar ids such as 3 become "3".
type JSONDecoder struct{}

// NewJSONDecoder creates a new JSON node decoder.
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode parses src and validates every element against the node schema.
func (d *JSONDecoder) Decode(ctx context.Context, name string, src []byte) (node.List, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("JSON decoder started.", "source", name, "bytes", len(src))

	impliedType, err := ctyjson.ImpliedType(src)
	if err != nil {
		return nil, &ParseError{Source: name, Msg: "malformed JSON", Err: err}
	}
	if !impliedType.IsTupleType() {
		return nil, &SchemaError{Msg: fmt.Sprintf("document must be a list of nodes, got %s", impliedType.FriendlyName())}
	}
	if err := checkJSONFields(impliedType); err != nil {
		return nil, err
	}

	raw, err := ctyjson.Unmarshal(src, impliedType)
	if err != nil {
		return nil, &ParseError{Source: name, Msg: "malformed JSON", Err: err}
	}
	records := make([]record, 0, raw.LengthInt())
	var errs []error
	for it := raw.ElementIterator(); it.Next(); {
		key, obj := it.Element()
		idx, _ := key.AsBigFloat().Int64()
		rec, recErrs := jsonRecord(int(idx), obj)
		errs = append(errs, recErrs...)
		records = append(records, rec)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	nodes, err := toNodes(records)
	if err != nil {
		return nil, err
	}
	logger.Debug("JSON decoding complete.", "node_count", len(nodes))
	return nodes, nil
}

// checkJSONFields rejects elements that are not objects and attributes the
// schema does not know, reporting all of them at once.
func checkJSONFields(listType cty.Type) error {
	var errs []error
	for i, elemType := range listType.TupleElementTypes() {
		if !elemType.IsObjectType() {
			errs = append(errs, &SchemaError{Field: fieldPath(i, ""), Msg: "must be an object"})
			continue
		}
		for _, attr := range slices.Sorted(maps.Keys(elemType.AttributeTypes())) {
			if _, known := nodeAttributes[attr]; !known {
				errs = append(errs, &SchemaError{Field: fieldPath(i, attr), Msg: "unknown field"})
			}
		}
	}
	return errors.Join(errs...)
}

// jsonRecord converts the known attributes of element i to strings.
func jsonRecord(i int, obj cty.Value) (record, []error) {
	var rec record
	targets := map[string]**string{
		fieldNodeID:            &rec.NodeID,
		fieldName:              &rec.Name,
		fieldParentID:          &rec.ParentID,
		fieldPreviousSiblingID: &rec.PreviousSiblingID,
	}

	var errs []error
	for _, attr := range slices.Sorted(maps.Keys(targets)) {
		v, err := stringAttr(obj, attr)
		if err != nil {
			errs = append(errs, &SchemaError{Field: fieldPath(i, attr), Msg: err.Error()})
			continue
		}
		*targets[attr] = v
	}
	return rec, errs
}

// stringAttr returns attr of obj as text, or nil when it is absent or null.
// Scalars are coerced the way cty converts them, so 3 becomes "3".
func stringAttr(obj cty.Value, attr string) (*string, error) {
	if !obj.Type().HasAttribute(attr) {
		return nil, nil
	}
	v := obj.GetAttr(attr)
	if v.IsNull() {
		return nil, nil
	}
	str, err := convert.Convert(v, cty.String)
	if err != nil {
		return nil, err
	}
	s := str.AsString()
	return &s, nil
}
