// Package matrix provides Dense, a concrete row-major float64 matrix used by
// hgmatrix to build dense incidence-matrix views of a hypergraph. It is
// trimmed to a small surface (NewDense, Rows, Cols, At, Set, Clone, String;
// hgmatrix uses the first five) rather than carrying the teacher's full linear-
// algebra suite (eigen decomposition, LU/QR, Floyd-Warshall, elementwise
// ops, descriptive statistics), none of which this repo's hypergraph domain
// has a use for.
package matrix
