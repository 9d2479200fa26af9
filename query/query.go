// SPDX-License-Identifier: MIT
package query

import (
	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/hypercsa"
)

// Run dispatches to Exact or Contain per kind and returns every matching
// edge, decompressed. A query edge with unknown or absent nodes yields a
// nil (empty) result rather than an error — the operation is well-defined
// for any q, it just never finds a match.
func Run(g *hypercsa.CompressedHyperGraph, q []hypergraph.Node, kind Kind) []hypergraph.Edge {
	switch kind {
	case Contain:
		return contain(g, q)
	default:
		return exact(g, q)
	}
}
