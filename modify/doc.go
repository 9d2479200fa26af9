// Package modify implements the in-place hypergraph editors of spec.md §4.6:
// DeleteEdge, DeleteNodeFromEdge, InsertNodeToEdge. Every operation takes a
// hyperedge's cycle representative position and returns a brand new
// *hypercsa.CompressedHyperGraph; none mutate their input. There is no
// InsertEdge here: adding a brand new hyperedge changes T's descending
// suffix order globally, so spec.md §9 resolves that by routing callers to
// hypercsa.Construct instead of a partial in-place operator.
package modify
