// SPDX-License-Identifier: MIT
package hypercsa

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/linearize"
	"github.com/katalvlaran/hypercsa/succinct"
)

// Construct builds the CompressedHyperGraph (D, PSI) for g, per spec.md
// §4.3/§4.4. It validates g's density first (ErrMalformedInput wraps
// hypergraph.ErrSparseNodeIDs), linearizes it into T, builds the suffix
// array/ψ of T, performs the ψ-surgery that splits the single global cycle
// into one cycle per hyperedge, and computes D from T's value frequencies.
func Construct(g hypergraph.HyperGraph) (*CompressedHyperGraph, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	t := linearize.Linearize(g)

	d, n, err := calcD(t)
	if err != nil {
		return nil, err
	}

	sa := succinct.BuildSuffixArray(t)
	psi := adjustPsi(sa.Psi)

	return &CompressedHyperGraph{D: d, PSI: succinct.BuildPsiVector(psi), N: n}, nil
}

// calcD tallies the frequency of each token value in t (per spec.md §4.3),
// asserts the values form the contiguous range [1, n], and builds the
// (|t|+1)-length bit vector marking node-interval boundaries plus a
// terminal bit.
func calcD(t []uint64) (*succinct.BitVector, int, error) {
	l := len(t)

	freq := make(map[uint64]int, l)
	for _, v := range t {
		freq[v]++
	}
	values := make([]uint64, 0, len(freq))
	for v := range freq {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	b := succinct.NewBitVectorBuilder(l + 1)
	pos := 0
	var last uint64
	for _, v := range values {
		if v != last+1 {
			return nil, 0, ErrMalformedInput
		}
		b.Set(pos)
		pos += freq[v]
		last = v
	}
	if pos != l {
		return nil, 0, ErrMalformedInput
	}
	b.Set(pos) // terminal bit, enables select(i+1)-1 for an interval's end

	return b.Build(), len(values), nil
}

// adjustPsi performs the ψ-surgery of spec.md §4.4: it walks the single
// global cycle produced by the suffix array over T+sentinel, cutting every
// backward jump so the result decomposes into one cycle per hyperedge, then
// strips the sentinel's own position (position 0) out of the array and
// re-bases every remaining position by one.
//
// raw has length |T|+1 (the suffix array's size, sentinel included) and is
// not mutated; the returned slice has length |T|.
func adjustPsi(raw []uint64) []uint64 {
	n := len(raw)
	work := append([]uint64(nil), raw...)

	// psi[0] (the sentinel's own successor) is never reassigned by the walk
	// below; it is the sole bridge a freshly-cut cycle can be routed
	// through, so it must be captured before stripping.
	sentinelSuccessor := work[0]

	current := uint64(0)
	next := work[0]
	lastBreak := uint64(0)
	for {
		if current > next {
			work[current] = lastBreak
			lastBreak = next
		}
		current = next
		next = work[next]
		if current == 0 {
			break
		}
	}

	l := n - 1
	out := make([]uint64, l)
	for i := 1; i <= l; i++ {
		v := work[i]
		if v == 0 {
			// This position was cut through the sentinel slot (only ever
			// true for the very first edge the walk enters, before
			// lastBreak is updated away from its seed value of 0): its
			// real target is whatever the sentinel itself pointed to.
			v = sentinelSuccessor
		}
		out[i-1] = v - 1
	}
	return out
}
