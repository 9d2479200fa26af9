// Package hypergraph defines the in-memory HyperGraph value type: an ordered
// list of hyperedges over a dense node-id space [0, n).
//
// A HyperGraph is the uncompressed source value consumed by package hypercsa.
// It enforces exactly one invariant at its boundary: after Validate, the set
// of node ids occurring anywhere in Edges is precisely {0, ..., n-1}, with
// no gaps. Everything else (sorting, edge ordering, linearization) is the
// concern of downstream packages.
package hypergraph
