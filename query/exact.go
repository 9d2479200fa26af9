// SPDX-License-Identifier: MIT
package query

import (
	"sort"

	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/hypercsa"
)

// exact implements spec.md §4.5.1, ported from the original's
// query_perform/find_exact_next_interval: repeatedly narrow [lo, hi) to the
// subrange whose ψ values land in the next query node's interval, then hop
// through ψ into that interval's coordinate space, one query node at a time.
// After processing every node past q[0], a candidate i must have PSI[i] <= i
// (the cycle's unique backward jump, so q's last node is the edge's largest)
// and its cycle must decompress to exactly q, confirming the edge closes
// back to q[0] with no further nodes.
func exact(g *hypercsa.CompressedHyperGraph, q []hypergraph.Node) []hypergraph.Edge {
	if len(q) == 0 {
		return nil
	}
	sorted := append([]hypergraph.Node(nil), q...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	lo, hi := g.NodeInterval(sorted[0])
	if lo < 0 || hi < 0 || lo >= hi {
		return nil
	}

	for i := 1; i < len(sorted); i++ {
		nlo, nhi := g.NodeInterval(sorted[i])
		if nlo < 0 || nhi < 0 || nlo >= nhi {
			return nil
		}
		newLo := g.PSI.LowerBound(lo, hi, uint64(nlo))
		newHi := g.PSI.UpperBound(lo, hi, uint64(nhi-1))
		if newLo >= newHi {
			return nil
		}
		lo = int(g.PSI.Get(newLo))
		hi = int(g.PSI.Get(newHi-1)) + 1
	}

	var edges []hypergraph.Edge
	for i := lo; i < hi; i++ {
		if int(g.PSI.Get(i)) <= i {
			if e := DecompressEdge(g, i); e.Equal(hypergraph.Edge(sorted)) {
				edges = append(edges, e)
			}
		}
	}
	return edges
}
