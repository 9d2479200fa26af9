// SPDX-License-Identifier: MIT
package query

import (
	"sort"

	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/hypercsa"
)

// contain implements spec.md §4.5.2's cycle-walk algorithm: pick the query
// node with the smallest interval as pivot, then for every position in that
// interval, walk its full cycle checking that every query node is visited in
// the expected cyclic order, with wraparound at the edge's representative.
// The four-region algorithm this replaces is explicitly rejected by spec.md
// §4.5.2 for producing false positives; this is the only containment
// algorithm implemented.
func contain(g *hypercsa.CompressedHyperGraph, q []hypergraph.Node) []hypergraph.Edge {
	if len(q) == 0 {
		return nil
	}
	sorted := append([]hypergraph.Node(nil), q...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	pivotIdx := 0
	bestSize := -1
	for idx, v := range sorted {
		lo, hi := g.NodeInterval(v)
		if lo < 0 || hi < 0 || lo >= hi {
			return nil // a queried node doesn't exist at all: no edge can contain it
		}
		if size := hi - lo; bestSize == -1 || size < bestSize {
			bestSize, pivotIdx = size, idx
		}
	}

	lo, hi := g.NodeInterval(sorted[pivotIdx])
	var edges []hypergraph.Edge
	for i := lo; i < hi; i++ {
		if matchesCycle(g, i, sorted, pivotIdx) {
			edges = append(edges, DecompressEdge(g, i))
		}
	}
	return edges
}

// matchesCycle walks the cycle containing start, advancing a cyclic pointer
// into q (seeded at pivotIdx, the pivot's own position in q) and applying
// spec.md §4.5.2's two early-prune rules. It returns true iff the walk
// returns to start having matched every element of q exactly once.
func matchesCycle(g *hypercsa.CompressedHyperGraph, start int, q []hypergraph.Node, pivotIdx int) bool {
	qlen := len(q)
	j := pivotIdx
	matched := 0
	cur := start
	for {
		node := g.Node(cur)
		next := int(g.PSI.Get(cur))

		if node > q[j] && q[j] != q[0] {
			return false
		}
		if node == q[j] {
			matched++
			j = (j + 1) % qlen
		}
		// The wrap check uses the target left after matching cur, so an
		// edge whose largest node is the last pending query node is kept.
		if next <= cur && q[j] != q[0] {
			return false
		}

		cur = next
		if cur == start {
			break
		}
	}
	return matched == qlen
}
