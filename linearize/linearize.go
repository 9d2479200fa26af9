// SPDX-License-Identifier: MIT

// Package linearize builds the token stream T consumed by the suffix-array
// construction in package hypercsa, per spec.md §4.2.
package linearize

import (
	"sort"

	"github.com/katalvlaran/hypercsa/hypergraph"
)

// Linearize sorts each edge ascending (already guaranteed by hypergraph.Edge
// construction, re-asserted here defensively), orders edges by descending
// lexicographic node sequence with a stable tie-break, concatenates them,
// and adds 1 to every value to reserve 0 as the suffix-array builder's
// sentinel.
//
// Rationale (spec.md §4.2): descending edge order places edges sharing
// node-set prefixes adjacent in T, which is exactly what makes each edge's
// ψ cycle contiguous during construction's cycle-cut adjustment.
func Linearize(hg hypergraph.HyperGraph) []uint64 {
	edges := make([]hypergraph.Edge, len(hg.Edges))
	for i, e := range hg.Edges {
		edges[i] = append(hypergraph.Edge(nil), e...)
		sort.Slice(edges[i], func(a, b int) bool { return edges[i][a] < edges[i][b] })
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return lexicographicGreater(edges[i], edges[j])
	})

	total := 0
	for _, e := range edges {
		total += len(e)
	}

	t := make([]uint64, 0, total)
	for _, e := range edges {
		for _, v := range e {
			t = append(t, v+1)
		}
	}
	return t
}

// lexicographicGreater reports whether a sorts before b under descending
// lexicographic order of node sequences (i.e. a > b lexicographically, with
// a longer extension of an equal-prefix shorter sequence counted as
// greater, matching C++ std::lexicographical_compare semantics mirrored
// from the original compare_desc).
func lexicographicGreater(a, b hypergraph.Edge) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(a) > len(b)
}
