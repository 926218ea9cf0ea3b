// Package input reads node lists from JSON, YAML and HCL documents and
// checks every record against the node schema before the tree builder sees
// it.
//
// All formats share the same field rules: nodeId and name are required,
// non-empty text; parentId and previousSiblingId are optional text that
// default to null. Unknown fields are rejected. Every offending record is
// reported, joined into a single error. A YAML stream must hold exactly one
// document.
//
// Failures are typed so callers can tell them apart with errors.Is:
//
//   - ErrParse: the document is not well formed in its format.
//   - ErrSchema: the document is well formed but does not describe a node list.
package input
