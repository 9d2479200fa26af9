// SPDX-License-Identifier: MIT
package succinct_test

import (
	"testing"

	"github.com/katalvlaran/hypercsa/succinct"
	"github.com/stretchr/testify/require"
)

// TestBitVector_RankSelect VERIFIES rank1/select1 against a naive reference
// over a hand-picked bit pattern spanning multiple words.
func TestBitVector_RankSelect(t *testing.T) {
	const n = 200
	setAt := map[int]bool{0: true, 1: true, 63: true, 64: true, 65: true, 127: true, 128: true, 199: true}

	b := succinct.NewBitVectorBuilder(n)
	for p := range setAt {
		b.Set(p)
	}
	bv := b.Build()

	// Reference rank: count set bits in [0, p).
	naiveRank := func(p int) int {
		c := 0
		for i := 0; i < p; i++ {
			if setAt[i] {
				c++
			}
		}
		return c
	}

	for p := 0; p <= n; p++ {
		require.Equal(t, naiveRank(p), bv.Rank1(p), "Rank1(%d)", p)
	}

	// Reference select: k-th set bit position, 1-based.
	var positions []int
	for p := 0; p < n; p++ {
		if setAt[p] {
			positions = append(positions, p)
		}
	}
	for k := 1; k <= len(positions); k++ {
		require.Equal(t, positions[k-1], bv.Select1(k), "Select1(%d)", k)
	}
	require.Equal(t, -1, bv.Select1(0))
	require.Equal(t, -1, bv.Select1(len(positions)+1))
}

// TestBitVector_Get VERIFIES random-access bit reads.
func TestBitVector_Get(t *testing.T) {
	b := succinct.NewBitVectorBuilder(10)
	b.Set(3)
	b.Set(9)
	bv := b.Build()

	for p := 0; p < 10; p++ {
		want := p == 3 || p == 9
		require.Equal(t, want, bv.Get(p), "Get(%d)", p)
	}
}

// TestBitVector_MinimalHypergraphShape VERIFIES the minimum-hypergraph
// boundary case from spec.md §8: D = "11" for a single rank-1 edge on node 0.
func TestBitVector_MinimalHypergraphShape(t *testing.T) {
	b := succinct.NewBitVectorBuilder(2)
	b.Set(0)
	b.Set(1)
	bv := b.Build()

	require.Equal(t, 1, bv.Rank1(1))
	require.Equal(t, 2, bv.Rank1(2))
	require.Equal(t, 0, bv.Select1(1))
	require.Equal(t, 1, bv.Select1(2))
}
