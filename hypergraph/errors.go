// SPDX-License-Identifier: MIT
package hypergraph

import "errors"

// Sentinel errors for hypergraph construction and validation.
var (
	// ErrEmptyEdge indicates a hyperedge with zero nodes was supplied; every
	// hyperedge must have rank >= 1.
	ErrEmptyEdge = errors.New("hypergraph: edge must be non-empty")

	// ErrSparseNodeIDs indicates the node ids occurring in Edges do not form
	// the dense range {0, ..., n-1}. Parsers and callers are responsible for
	// rebasing sparse or non-zero-based ids before building a HyperGraph.
	ErrSparseNodeIDs = errors.New("hypergraph: node ids are not dense starting at 0")
)
