// SPDX-License-Identifier: MIT
package hypergraph_test

import (
	"testing"

	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/stretchr/testify/require"
)

// TestHyperGraph_AddEdge_NormalizesAndDedupes VERIFIES that AddEdge sorts
// ascending and collapses repeated node occurrences (self-loops).
//
// Stage 1: Add an out-of-order edge with a duplicate node.
// Stage 2: Assert the stored edge is ascending and duplicate-free.
func TestHyperGraph_AddEdge_NormalizesAndDedupes(t *testing.T) {
	var hg hypergraph.HyperGraph

	// Stage 1: unsorted edge with node 2 repeated.
	err := hg.AddEdge([]hypergraph.Node{3, 1, 2, 2, 0})
	require.NoError(t, err)

	// Stage 2: canonical ascending, deduped form.
	require.Equal(t, hypergraph.Edge{0, 1, 2, 3}, hg.Edges[0])
}

// TestHyperGraph_AddEdge_RejectsEmpty VERIFIES the rank>=1 invariant.
func TestHyperGraph_AddEdge_RejectsEmpty(t *testing.T) {
	var hg hypergraph.HyperGraph
	err := hg.AddEdge(nil)
	require.ErrorIs(t, err, hypergraph.ErrEmptyEdge)
}

// TestHyperGraph_Validate_DenseRange VERIFIES the dense node-id invariant.
func TestHyperGraph_Validate_DenseRange(t *testing.T) {
	t.Run("dense is valid", func(t *testing.T) {
		hg, err := hypergraph.New(
			[]hypergraph.Node{0, 1, 2, 3},
			[]hypergraph.Node{1, 2, 3},
			[]hypergraph.Node{2},
		)
		require.NoError(t, err)
		require.NoError(t, hg.Validate())
		require.Equal(t, 4, hg.NodeCount())
	})

	t.Run("gap is rejected", func(t *testing.T) {
		hg, err := hypergraph.New([]hypergraph.Node{0, 2})
		require.NoError(t, err)
		require.ErrorIs(t, hg.Validate(), hypergraph.ErrSparseNodeIDs)
	})
}

// TestHyperGraph_Clone_IsDeep VERIFIES Clone does not alias backing arrays.
func TestHyperGraph_Clone_IsDeep(t *testing.T) {
	hg, err := hypergraph.New([]hypergraph.Node{0, 1})
	require.NoError(t, err)

	clone := hg.Clone()
	clone.Edges[0][0] = 99

	require.Equal(t, hypergraph.Node(0), hg.Edges[0][0])
}
