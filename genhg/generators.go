// SPDX-License-Identifier: MIT
package genhg

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hypercsa/hypergraph"
)

// minEdgeSize is the smallest hyperedge cardinality any generator produces.
const minEdgeSize = 1

// Uniform builds a random k-uniform hypergraph over n nodes: a random
// permutation of [0,n) is partitioned into consecutive chunks of k, each
// chunk becoming one hyperedge. This guarantees density (every node appears
// in exactly one edge) without the rejection sampling a purely independent
// per-edge draw would need. If n is not a multiple of k, the trailing edge
// holds the remainder and may be smaller than k.
func Uniform(n, k int, seed int64) (hypergraph.HyperGraph, error) {
	if k < minEdgeSize || n < k {
		return hypergraph.HyperGraph{}, fmt.Errorf("genhg: Uniform(n=%d,k=%d): %w", n, k, ErrTooFewNodes)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	hg := hypergraph.HyperGraph{}
	for i := 0; i < n; i += k {
		end := i + k
		if end > n {
			end = n
		}
		edge := make([]hypergraph.Node, end-i)
		for j, idx := range perm[i:end] {
			edge[j] = hypergraph.Node(idx)
		}
		if err := hg.AddEdge(edge); err != nil {
			return hypergraph.HyperGraph{}, fmt.Errorf("genhg: Uniform: %w", err)
		}
	}
	return hg, nil
}

// Star builds the hyperedge analogue of a star graph: hub node 0, paired
// with every other node i in [1,n) via its own rank-2 edge {0, i}.
func Star(n int) (hypergraph.HyperGraph, error) {
	if n < 2 {
		return hypergraph.HyperGraph{}, fmt.Errorf("genhg: Star(n=%d): %w", n, ErrTooFewNodes)
	}
	hg := hypergraph.HyperGraph{}
	for i := 1; i < n; i++ {
		if err := hg.AddEdge([]hypergraph.Node{0, hypergraph.Node(i)}); err != nil {
			return hypergraph.HyperGraph{}, fmt.Errorf("genhg: Star: %w", err)
		}
	}
	return hg, nil
}

// Chain builds n-width+1 overlapping rank-width hyperedges: edge i covers
// nodes [i, i+width), sliding one node at a time, so consecutive edges
// always share width-1 nodes.
func Chain(n, width int) (hypergraph.HyperGraph, error) {
	if width < minEdgeSize || n < width {
		return hypergraph.HyperGraph{}, fmt.Errorf("genhg: Chain(n=%d,width=%d): %w", n, width, ErrTooFewNodes)
	}
	hg := hypergraph.HyperGraph{}
	for i := 0; i+width <= n; i++ {
		edge := make([]hypergraph.Node, width)
		for j := 0; j < width; j++ {
			edge[j] = hypergraph.Node(i + j)
		}
		if err := hg.AddEdge(edge); err != nil {
			return hypergraph.HyperGraph{}, fmt.Errorf("genhg: Chain: %w", err)
		}
	}
	return hg, nil
}

// FromDegreeSequence builds a hypergraph whose node degrees approximate
// degrees (degrees[i] is node i's target edge count), via the teacher
// builder's stub-matching strategy generalized to hyperedges: a stub list
// is built (node i repeated degrees[i] times), shuffled once per seed, then
// chunked into groups of edgeSize stubs, each becoming one hyperedge (a
// group's duplicate node occurrences collapse per hypergraph.AddEdge, so a
// resulting edge's rank may be at most edgeSize, not always exactly it).
func FromDegreeSequence(degrees []int, edgeSize int, seed int64) (hypergraph.HyperGraph, error) {
	if edgeSize < minEdgeSize {
		return hypergraph.HyperGraph{}, fmt.Errorf("genhg: FromDegreeSequence: edgeSize=%d: %w", edgeSize, ErrTooFewNodes)
	}
	total := 0
	for _, d := range degrees {
		if d < 0 {
			return hypergraph.HyperGraph{}, fmt.Errorf("genhg: FromDegreeSequence: %w", ErrInvalidDegreeSequence)
		}
		total += d
	}
	if total == 0 {
		return hypergraph.HyperGraph{}, fmt.Errorf("genhg: FromDegreeSequence: %w", ErrInvalidDegreeSequence)
	}

	stubs := make([]int, 0, total)
	for node, d := range degrees {
		for k := 0; k < d; k++ {
			stubs = append(stubs, node)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	hg := hypergraph.HyperGraph{}
	for i := 0; i < len(stubs); i += edgeSize {
		end := i + edgeSize
		if end > len(stubs) {
			end = len(stubs)
		}
		edge := make([]hypergraph.Node, end-i)
		for j, node := range stubs[i:end] {
			edge[j] = hypergraph.Node(node)
		}
		if err := hg.AddEdge(edge); err != nil {
			return hypergraph.HyperGraph{}, fmt.Errorf("genhg: FromDegreeSequence: %w", err)
		}
	}
	return hg, nil
}
