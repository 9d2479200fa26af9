// Package hypercsa is the root of a compressed self-index for hypergraphs.
//
// A hypergraph's node set and its hyperedges are linearized into a single
// token sequence and compressed into two succinct structures — a bit
// vector marking node-interval boundaries (D) and a permutation over
// cyclic hyperedge representations (Psi) — so that exact-match and
// containment queries, and in-place edits, run directly against the
// compressed form without ever materializing the original edge list.
//
// Subpackages:
//
//	hypergraph/    — the uncompressed HyperGraph type and its validation rules
//	succinct/      — BitVector (rank/select) and PsiVector (Elias-gamma coded)
//	linearize/     — hypergraph -> linear token sequence
//	hypercsa/      — Construct builds a CompressedHyperGraph from a HyperGraph
//	query/         — Exact and Contain queries over a CompressedHyperGraph
//	modify/        — in-place DeleteEdge, DeleteNodeFromEdge, InsertNodeToEdge
//	serialize/     — persists a CompressedHyperGraph to and from a byte stream
//	ingest/        — parses a line-based hypergraph text format
//	genhg/         — deterministic synthetic hypergraph generators
//	hgmatrix/      — dense incidence-matrix views of a HyperGraph
//	matrix/        — the Dense row-major matrix type hgmatrix builds on
//	cmd/hypercsa/  — the compress/query command-line tool
package hypercsa
