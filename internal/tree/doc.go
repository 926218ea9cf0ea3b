// Package tree turns a flat, order-independent list of nodes into an ordered
// tree, or into the complete list of reasons why no valid tree exists.
//
// Every node names its parent and the sibling directly before it. Build runs
// four stages over the list and stops at the first stage that reports
// failures; later stages are not attempted for that input:
//
//   - Prechecking: duplicate ids, a missing top-left node and the reserved
//     "null" id are all detected in one pass and reported together.
//   - Assembling: an id index is built and every node is grouped under its
//     parent. Parents that are missing from the input are reported.
//   - Ordering: each parent group, and the top-level group, is ordered by
//     following the previous-sibling chain from its head. Competing claims
//     on one predecessor and members the chain never reaches are reported
//     for every group before the stage fails.
//   - CycleChecking: the parent relation is traversed once and every
//     distinct parent/child loop is reported by its member ids.
//
// Failures are values of the closed Failure sum type. Build returns them
// inside a *BuildError, which matches ErrInvalidTree under errors.Is.
//
// All state lives for one call only, so concurrent calls on independent
// inputs need no coordination.
package tree
