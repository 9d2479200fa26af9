// SPDX-License-Identifier: MIT
package hgmatrix

import (
	"fmt"

	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/matrix"
)

// incidenceMark is the value placed at (node, edge) when node is a member
// of edge. Hyperedge membership is unordered and unweighted, so every
// incident entry carries the same mark — there is no directed ±1 split the
// way a plain graph's incidence matrix has.
const incidenceMark = 1.0

// Incidence builds the n×m node×edge incidence matrix of g, where n is
// g.NodeCount() and m is g.EdgeCount(): entry (v, e) is 1 if node v belongs
// to edge e, 0 otherwise.
func Incidence(g hypergraph.HyperGraph) (*matrix.Dense, error) {
	n, m := g.NodeCount(), g.EdgeCount()
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("hgmatrix: Incidence: empty hypergraph: %w", matrix.ErrInvalidDimensions)
	}

	mat, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, fmt.Errorf("hgmatrix: Incidence: %w", err)
	}
	for col, e := range g.Edges {
		for _, v := range e {
			if err := mat.Set(int(v), col, incidenceMark); err != nil {
				return nil, fmt.Errorf("hgmatrix: Incidence: %w", err)
			}
		}
	}
	return mat, nil
}

// NodeDegrees returns, for each node, the number of edges it belongs to —
// the row sums of the incidence matrix built from g.
func NodeDegrees(g hypergraph.HyperGraph) ([]int, error) {
	mat, err := Incidence(g)
	if err != nil {
		return nil, err
	}
	degrees := make([]int, mat.Rows())
	for row := 0; row < mat.Rows(); row++ {
		sum := 0.0
		for col := 0; col < mat.Cols(); col++ {
			v, err := mat.At(row, col)
			if err != nil {
				return nil, fmt.Errorf("hgmatrix: NodeDegrees: %w", err)
			}
			sum += v
		}
		degrees[row] = int(sum)
	}
	return degrees, nil
}

// EdgeRanks returns, for each edge, its cardinality — the column sums of
// the incidence matrix built from g, which must equal g.Edges[i].Rank().
func EdgeRanks(g hypergraph.HyperGraph) ([]int, error) {
	mat, err := Incidence(g)
	if err != nil {
		return nil, err
	}
	ranks := make([]int, mat.Cols())
	for col := 0; col < mat.Cols(); col++ {
		sum := 0.0
		for row := 0; row < mat.Rows(); row++ {
			v, err := mat.At(row, col)
			if err != nil {
				return nil, fmt.Errorf("hgmatrix: EdgeRanks: %w", err)
			}
			sum += v
		}
		ranks[col] = int(sum)
	}
	return ranks, nil
}
