// Package succinct provides the uniform façade over succinct-structure
// primitives that the rest of hypercsa is built on: a rank/select-indexed
// BitVector, a δ-coded monotone-resembling PsiVector, and a suffix-array/ψ
// builder over small-alphabet uint64 texts.
//
// None of these types hold global state and none mutate after construction;
// every producer in this module (hypercsa, modify) builds a fresh value and
// discards the old one, per the "Replacement of succinct structures on
// mutation" design note in spec.md §9.
package succinct
