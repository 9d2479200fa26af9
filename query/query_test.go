// SPDX-License-Identifier: MIT
package query

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercsa/hypercsa"
	"github.com/katalvlaran/hypercsa/hypergraph"
)

func buildS1(t *testing.T) *hypercsa.CompressedHyperGraph {
	t.Helper()
	hg, err := hypergraph.New(
		[]hypergraph.Node{0, 1, 2, 3},
		[]hypergraph.Node{1, 2, 3},
		[]hypergraph.Node{2},
		[]hypergraph.Node{0, 1, 2, 4},
		[]hypergraph.Node{2},
	)
	require.NoError(t, err)
	g, err := hypercsa.Construct(hg)
	require.NoError(t, err)
	return g
}

func sortedEdges(edges []hypergraph.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		s := ""
		for _, v := range e {
			s += string(rune('0' + v))
		}
		out[i] = s
	}
	sort.Strings(out)
	return out
}

// Stage 1: S1's exact-match scenario — query(EXACT, [2]) returns two copies
// of the rank-1 edge [2].
func TestExact_S1_SingletonNode(t *testing.T) {
	g := buildS1(t)
	got := Run(g, []hypergraph.Node{2}, Exact)
	require.Equal(t, []string{"2", "2"}, sortedEdges(got))
}

// Stage 2: EXACT with the full node set of a rank-4 edge returns just that edge.
func TestExact_S1_FullEdge(t *testing.T) {
	g := buildS1(t)
	got := Run(g, []hypergraph.Node{0, 1, 2, 3}, Exact)
	require.Equal(t, []string{"0123"}, sortedEdges(got))
}

// Stage 3: EXACT with a proper subset of an edge's nodes finds nothing.
func TestExact_S1_SubsetDoesNotMatch(t *testing.T) {
	g := buildS1(t)
	got := Run(g, []hypergraph.Node{1, 2}, Exact)
	require.Empty(t, got)
}

// Stage 4: S1's containment scenario — query(CONTAIN, [1,2]) returns the two
// rank-4 edges and the rank-3 edge, three edges total.
func TestContain_S1_TwoNodes(t *testing.T) {
	g := buildS1(t)
	got := Run(g, []hypergraph.Node{1, 2}, Contain)
	require.Equal(t, []string{"0123", "0124", "123"}, sortedEdges(got))
}

// Stage 5: CONTAIN with a single node returns every edge containing it.
func TestContain_S1_SingleNode(t *testing.T) {
	g := buildS1(t)
	got := Run(g, []hypergraph.Node{4}, Contain)
	require.Equal(t, []string{"0124"}, sortedEdges(got))
}

// Stage 6: CONTAIN with a node absent from the graph finds nothing.
func TestContain_AbsentNode(t *testing.T) {
	g := buildS1(t)
	got := Run(g, []hypergraph.Node{99}, Contain)
	require.Empty(t, got)
}

// Stage 8 (S5): CONTAIN with [1,3,4] matches no S1 edge — 123 and 0123 both
// lack node 4, and 0124 lacks node 3 — so every candidate must be abandoned
// via contain's early-prune guards rather than returned.
func TestContain_S5_NoEdgeHasAllThree(t *testing.T) {
	g := buildS1(t)
	got := Run(g, []hypergraph.Node{1, 3, 4}, Contain)
	require.Empty(t, got)
}

// Stage 7: decompression is order-independent of starting position within a cycle.
func TestDecompressEdge_AnyStartSameEdge(t *testing.T) {
	g := buildS1(t)
	matches := Run(g, []hypergraph.Node{0, 1, 2, 3}, Exact)
	require.Len(t, matches, 1)
	rep := 0
	for p := 0; p < g.PSI.Len(); p++ {
		if DecompressEdge(g, p).Equal(matches[0]) {
			rep = p
			break
		}
	}
	require.True(t, EdgesEqual(g, rep, rep))
}
