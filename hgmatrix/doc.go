// Package hgmatrix builds a node×edge incidence matrix view of a
// hypergraph.HyperGraph, independent of the compressed (D, PSI)
// representation in hypercsa. It exists as a second, easily-inspected
// representation that construction tests can cross-check decompressed
// edges against.
package hgmatrix
