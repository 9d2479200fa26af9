// SPDX-License-Identifier: MIT
package query

import (
	"sort"

	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/hypercsa"
)

// DecompressEdge walks the ψ cycle containing position p and returns its
// nodes, per spec.md §4.5.3. The walk itself visits nodes in cycle order
// starting at p, which is only guaranteed ascending when p is the cycle's
// representative; this always returns the ascending canonical form so
// callers never need to know which position they passed in.
func DecompressEdge(g *hypercsa.CompressedHyperGraph, p int) hypergraph.Edge {
	nodes := []hypergraph.Node{g.Node(p)}
	for j := int(g.PSI.Get(p)); j != p; j = int(g.PSI.Get(j)) {
		nodes = append(nodes, g.Node(j))
	}
	sort.Slice(nodes, func(i, k int) bool { return nodes[i] < nodes[k] })
	return hypergraph.Edge(nodes)
}

// EdgesEqual reports whether the cycles containing positions repP1 and repP2
// decompress to the same node set.
func EdgesEqual(g *hypercsa.CompressedHyperGraph, repP1, repP2 int) bool {
	return DecompressEdge(g, repP1).Equal(DecompressEdge(g, repP2))
}
