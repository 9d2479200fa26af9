// Package hypercsa builds and holds the compressed self-index (D, PSI) of a
// hypergraph, per spec.md §3/§4.3/§4.4. Construct is the only producer of a
// CompressedHyperGraph from scratch; package modify is the only producer of
// an edited one. Both always build fresh succinct.BitVector/PsiVector
// values — a CompressedHyperGraph is a value type, never mutated in place.
package hypercsa
