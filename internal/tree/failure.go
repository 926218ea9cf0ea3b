package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the category of a Failure.
type Kind int

const (
	KindDuplicateNodeIDs Kind = iota
	KindNoTopLeftNode
	KindNodeHasNullAsID
	KindInvalidChildrenList
	KindCircularParentChildLoop
	KindDanglingParentReference
)

var kindNames = [...]string{
	KindDuplicateNodeIDs:        "duplicateNodeIds",
	KindNoTopLeftNode:           "noTopLeftNode",
	KindNodeHasNullAsID:         "nodeHasNullAsId",
	KindInvalidChildrenList:     "invalidChildrenList",
	KindCircularParentChildLoop: "circularParentChildLoop",
	KindDanglingParentReference: "danglingParentReference",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Failure is one reason a tree could not be built. The set of
// implementations is closed; switch on the concrete type to read a payload.
type Failure interface {
	Kind() Kind
	isFailure()
}

// DuplicateNodeIDs lists one entry per repeated occurrence of an id,
// sorted ascending.
type DuplicateNodeIDs struct {
	NodeIDs []string
}

// NoTopLeftNode means no node is both top level and first among its siblings.
type NoTopLeftNode struct{}

// NodeHasNullAsID means some node uses the reserved id "null".
type NodeHasNullAsID struct{}

// InvalidChildrenList names sibling ids, sorted ascending, that cannot be
// placed in a single chain: either two claimants of the same predecessor or
// the members a chain walk never reached.
type InvalidChildrenList struct {
	NodeIDs []string
}

// CircularParentChildLoop holds the sorted member ids of one parent loop.
type CircularParentChildLoop struct {
	NodeIDs []string
}

// DanglingParentReference lists, sorted ascending, the nodes whose parent id
// names no node in the input.
type DanglingParentReference struct {
	NodeIDs []string
}

func (DuplicateNodeIDs) Kind() Kind        { return KindDuplicateNodeIDs }
func (NoTopLeftNode) Kind() Kind           { return KindNoTopLeftNode }
func (NodeHasNullAsID) Kind() Kind         { return KindNodeHasNullAsID }
func (InvalidChildrenList) Kind() Kind     { return KindInvalidChildrenList }
func (CircularParentChildLoop) Kind() Kind { return KindCircularParentChildLoop }
func (DanglingParentReference) Kind() Kind { return KindDanglingParentReference }

func (DuplicateNodeIDs) isFailure()        {}
func (NoTopLeftNode) isFailure()           {}
func (NodeHasNullAsID) isFailure()         {}
func (InvalidChildrenList) isFailure()     {}
func (CircularParentChildLoop) isFailure() {}
func (DanglingParentReference) isFailure() {}

// NodeIDs returns the id payload of f, or nil for kinds that carry none.
func NodeIDs(f Failure) []string {
	switch f := f.(type) {
	case DuplicateNodeIDs:
		return f.NodeIDs
	case InvalidChildrenList:
		return f.NodeIDs
	case CircularParentChildLoop:
		return f.NodeIDs
	case DanglingParentReference:
		return f.NodeIDs
	default:
		return nil
	}
}

// ErrInvalidTree is matched by every *BuildError.
var ErrInvalidTree = errors.New("invalid tree")

// BuildError carries the failures of the stage that stopped a build.
type BuildError struct {
	Stage    Stage
	Failures []Failure
}

func (e *BuildError) Error() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		if ids := NodeIDs(f); len(ids) > 0 {
			parts = append(parts, fmt.Sprintf("%s [%s]", f.Kind(), strings.Join(ids, ", ")))
			continue
		}
		parts = append(parts, f.Kind().String())
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidTree, e.Stage, strings.Join(parts, "; "))
}

func (e *BuildError) Unwrap() error { return ErrInvalidTree }
