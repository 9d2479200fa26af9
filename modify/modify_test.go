// SPDX-License-Identifier: MIT
package modify

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercsa/hypercsa"
	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/query"
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

func encode(e hypergraph.Edge) string {
	s := ""
	for _, v := range e {
		s += string(rune('0' + v))
	}
	return s
}

func sortedEncoded(edges []hypergraph.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = encode(e)
	}
	sort.Strings(out)
	return out
}

// representativeOf returns the cycle position whose decompressed edge
// encodes to want, found by brute-force scan over every position.
func representativeOf(t *testing.T, g *hypercsa.CompressedHyperGraph, want string) int {
	t.Helper()
	for p := 0; p < g.PSI.Len(); p++ {
		if encode(query.DecompressEdge(g, p)) == want {
			return p
		}
	}
	t.Fatalf("no position decompresses to edge %q", want)
	return -1
}

// Stage 1 (S2): deleting the rank-1 edge [2] leaves exactly one [2] and
// every other S1 edge untouched.
func TestDeleteEdge_S1_RemovesOneSingleton(t *testing.T) {
	g := buildS1(t)
	rep := representativeOf(t, g, "2")

	g2, err := DeleteEdge(g, rep)
	require.NoError(t, err)

	got := query.Run(g2, []hypergraph.Node{2}, query.Exact)
	require.Equal(t, []string{"2"}, sortedEncoded(got))

	full := query.Run(g2, []hypergraph.Node{0, 1, 2, 3}, query.Exact)
	require.Equal(t, []string{"0123"}, sortedEncoded(full))
}

// Stage 2 (S3): delete_node_from_edge(rep([0,1,2,3]), 2) produces [0,1,3];
// query(CONTAIN, [0,3]) must include it, and EXACT on the old node set must
// no longer find a match.
func TestDeleteNodeFromEdge_S1_ShrinksEdge(t *testing.T) {
	g := buildS1(t)
	rep := representativeOf(t, g, "0123")

	g2, err := DeleteNodeFromEdge(g, rep, 2)
	require.NoError(t, err)

	contains := query.Run(g2, []hypergraph.Node{0, 3}, query.Contain)
	require.Contains(t, sortedEncoded(contains), "013")

	require.Empty(t, query.Run(g2, []hypergraph.Node{0, 1, 2, 3}, query.Exact))
	require.Equal(t, []string{"013"}, sortedEncoded(query.Run(g2, []hypergraph.Node{0, 1, 3}, query.Exact)))
}

// Stage 3: deleting a node absent from the edge is a no-op.
func TestDeleteNodeFromEdge_AbsentNode_NoOp(t *testing.T) {
	g := buildS1(t)
	rep := representativeOf(t, g, "123")

	g2, err := DeleteNodeFromEdge(g, rep, 99)
	require.NoError(t, err)
	require.Equal(t, g.PSI.Len(), g2.PSI.Len())
	require.Equal(t, []string{"123"}, sortedEncoded(query.Run(g2, []hypergraph.Node{1, 2, 3}, query.Exact)))
}

// Stage 4 (S4): insert_node_to_edge(rep([0,1,2,3]), 4) produces [0,1,2,3,4];
// EXACT on the new node set finds it, EXACT on the old node set no longer does.
func TestInsertNodeToEdge_S1_GrowsEdge(t *testing.T) {
	g := buildS1(t)
	rep := representativeOf(t, g, "0123")

	g2, err := InsertNodeToEdge(g, rep, 4)
	require.NoError(t, err)

	require.Equal(t, []string{"01234"}, sortedEncoded(query.Run(g2, []hypergraph.Node{0, 1, 2, 3, 4}, query.Exact)))
	require.Empty(t, query.Run(g2, []hypergraph.Node{0, 1, 2, 3}, query.Exact))
}

// Stage 5: inserting a node already present in the edge is a no-op.
func TestInsertNodeToEdge_AlreadyPresent_NoOp(t *testing.T) {
	g := buildS1(t)
	rep := representativeOf(t, g, "0123")

	g2, err := InsertNodeToEdge(g, rep, 2)
	require.NoError(t, err)
	require.Equal(t, g.PSI.Len(), g2.PSI.Len())
}

// Stage 7 (S2): deleting the edge [0,1,2,4] must be rejected, since node 4
// occurs nowhere else in S1 and removing its only occurrence would leave it
// a node with no incident edge.
func TestDeleteEdge_S2_RejectsWhenNodeWouldBecomeEmpty(t *testing.T) {
	g := buildS1(t)
	rep := representativeOf(t, g, "0124")

	_, err := DeleteEdge(g, rep)
	require.ErrorIs(t, err, ErrInvariantViolation)
}

// Stage 6: inserting a node id that doesn't exist anywhere fails.
func TestInsertNodeToEdge_UnknownNode_Errors(t *testing.T) {
	g := buildS1(t)
	rep := representativeOf(t, g, "0123")

	_, err := InsertNodeToEdge(g, rep, 99)
	require.ErrorIs(t, err, ErrNodeNotFound)
}
