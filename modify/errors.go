// SPDX-License-Identifier: MIT
package modify

import "errors"

// ErrInvariantViolation indicates an edit would leave some node's interval
// in D empty — every node must keep at least one occupied position, since D
// has no representation for "node with zero edges" (spec.md §3 invariant 2).
var ErrInvariantViolation = errors.New("modify: edit would empty a node's interval")

// ErrNodeNotFound indicates a node id passed to InsertNodeToEdge does not
// exist anywhere in the hypergraph — only nodes already present elsewhere
// can be relocated into an edge; modify never mints new node ids.
var ErrNodeNotFound = errors.New("modify: node does not exist in the hypergraph")
