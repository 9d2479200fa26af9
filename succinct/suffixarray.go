// SPDX-License-Identifier: MIT
package succinct

import "sort"

// SuffixArray is the compressed-suffix-array façade described in spec.md
// §4.1: built once over an integer text plus an implicit sentinel, it
// exposes the ψ function consumed by package hypercsa. SA itself is kept
// only so tests can assert the builder's output against a naive reference
// suffix array; hypercsa never reads it.
type SuffixArray struct {
	SA  []int    // SA[p] = starting text position of the suffix ranked p
	Psi []uint64 // Psi[p] = SA-position of the suffix starting one token later
}

// BuildSuffixArray constructs the suffix array and ψ function of text with
// an implicit trailing sentinel smaller than every value in text (text
// itself must not contain that sentinel value; hypercsa's linearizer
// reserves 0 and encodes all real tokens as >= 1, so the sentinel below,
// -1 in the internal signed working representation, never collides).
//
// This uses the classic O(L log^2 L) prefix-doubling algorithm generalized
// to an unbounded uint64 alphabet (rank-pair comparison instead of bucket
// counting): no suitable ready-made suffix-array library ships in the
// retrieval pack for a non-byte, non-[]rune alphabet, so the construction
// is hand-rolled here, grounded on the contract the original C++
// implementation drew from sdsl::csa_sada/construct_im — only the
// observable ψ values are reproduced, not sdsl's internal sampling scheme.
func BuildSuffixArray(text []uint64) *SuffixArray {
	n := len(text) + 1
	full := make([]int64, n)
	for i, v := range text {
		full[i] = int64(v)
	}
	full[n-1] = -1 // sentinel, strictly less than every real token (>= 1)

	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	rank := make([]int64, n)
	copy(rank, full)
	tmp := make([]int64, n)

	keyOf := func(i, k int) (int64, int64) {
		second := int64(-1)
		if i+k < n {
			second = rank[i+k]
		}
		return rank[i], second
	}

	for k := 1; ; k *= 2 {
		sort.Slice(sa, func(i, j int) bool {
			ai, aj := sa[i], sa[j]
			r1a, r2a := keyOf(ai, k)
			r1b, r2b := keyOf(aj, k)
			if r1a != r1b {
				return r1a < r1b
			}
			if r2a != r2b {
				return r2a < r2b
			}
			return ai < aj // deterministic tiebreak among equal ranks
		})

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			prev, cur := sa[i-1], sa[i]
			r1p, r2p := keyOf(prev, k)
			r1c, r2c := keyOf(cur, k)
			if r1p == r1c && r2p == r2c {
				tmp[cur] = tmp[prev]
			} else {
				tmp[cur] = tmp[prev] + 1
			}
		}
		copy(rank, tmp)

		if rank[sa[n-1]] == int64(n-1) {
			break // all suffixes now have distinct rank: fully sorted
		}
	}

	isa := make([]int, n)
	for pos, textIdx := range sa {
		isa[textIdx] = pos
	}

	psi := make([]uint64, n)
	for p := 0; p < n; p++ {
		nextTextPos := (sa[p] + 1) % n
		psi[p] = uint64(isa[nextTextPos])
	}

	return &SuffixArray{SA: sa, Psi: psi}
}
