// Package ingest parses the line-based hypergraph text format of spec.md
// §6: one hyperedge per line, node ids as non-negative integers separated
// by spaces, tabs, or commas, in any order.
package ingest
