// SPDX-License-Identifier: MIT
package hypergraph

import "sort"

// Node is a node identifier. Valid node ids occupy the dense range [0, n)
// once a HyperGraph has been validated.
type Node = uint64

// Edge is a hyperedge: a non-empty, node-set-valued (duplicate-free) sequence
// of Nodes. The canonical internal order is ascending; AddEdge enforces this
// and collapses repeated occurrences of the same node (spec.md §4.4: "a
// self-loop ... collapses to a single occurrence").
type Edge []Node

// clone returns a defensive copy of e.
func (e Edge) clone() Edge {
	out := make(Edge, len(e))
	copy(out, e)
	return out
}

// Rank returns the cardinality of the edge.
func (e Edge) Rank() int { return len(e) }

// Equal reports whether e and other hold the same nodes in the same order.
// For ascending-sorted canonical edges, as produced by AddEdge/New, this is
// node-set equality.
func (e Edge) Equal(other Edge) bool {
	if len(e) != len(other) {
		return false
	}
	for i := range e {
		if e[i] != other[i] {
			return false
		}
	}
	return true
}

// HyperGraph is an ordered collection of hyperedges over node ids [0, n).
// The zero value is an empty hypergraph ready to use.
type HyperGraph struct {
	Edges []Edge
}

// New builds a HyperGraph from raw edges, normalizing each edge to its
// canonical ascending, duplicate-free form. It does not validate density;
// call Validate (or let Construct do so) before compressing.
func New(rawEdges ...[]Node) (HyperGraph, error) {
	hg := HyperGraph{}
	for _, raw := range rawEdges {
		if err := hg.AddEdge(raw); err != nil {
			return HyperGraph{}, err
		}
	}
	return hg, nil
}

// AddEdge appends a hyperedge built from raw, sorted ascending with repeated
// node occurrences collapsed. Returns ErrEmptyEdge if raw (after dedup) is
// empty.
func (hg *HyperGraph) AddEdge(raw []Node) error {
	if len(raw) == 0 {
		return ErrEmptyEdge
	}
	edge := make(Edge, len(raw))
	copy(edge, raw)
	sort.Slice(edge, func(i, j int) bool { return edge[i] < edge[j] })

	// Collapse duplicate node occurrences (self-loops are not representable).
	deduped := edge[:1]
	for _, v := range edge[1:] {
		if v != deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}
	if len(deduped) == 0 {
		return ErrEmptyEdge
	}

	hg.Edges = append(hg.Edges, deduped)
	return nil
}

// EdgeCount returns the number of hyperedges.
func (hg HyperGraph) EdgeCount() int { return len(hg.Edges) }

// NodeCount returns one plus the largest node id occurring in Edges, i.e. the
// candidate n for the dense range [0, n). It does not itself check density;
// use Validate for that.
func (hg HyperGraph) NodeCount() int {
	var max Node
	seenAny := false
	for _, e := range hg.Edges {
		for _, v := range e {
			seenAny = true
			if v > max {
				max = v
			}
		}
	}
	if !seenAny {
		return 0
	}
	return int(max) + 1
}

// Validate checks that the node ids occurring across Edges form exactly the
// dense range {0, ..., n-1}. Returns ErrSparseNodeIDs otherwise.
func (hg HyperGraph) Validate() error {
	n := hg.NodeCount()
	if n == 0 {
		return nil
	}
	seen := make([]bool, n)
	for _, e := range hg.Edges {
		for _, v := range e {
			if int(v) >= n {
				return ErrSparseNodeIDs
			}
			seen[v] = true
		}
	}
	for _, ok := range seen {
		if !ok {
			return ErrSparseNodeIDs
		}
	}
	return nil
}

// Clone returns a deep copy of hg.
func (hg HyperGraph) Clone() HyperGraph {
	out := HyperGraph{Edges: make([]Edge, len(hg.Edges))}
	for i, e := range hg.Edges {
		out.Edges[i] = e.clone()
	}
	return out
}
