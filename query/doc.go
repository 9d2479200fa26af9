// Package query implements the two read-only query forms of spec.md §4.5
// directly over a compressed hypergraph's (D, PSI): EXACT match and
// CONTAIN(ment). Neither mutates its hypercsa.CompressedHyperGraph argument.
package query
