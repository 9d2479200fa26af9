// SPDX-License-Identifier: MIT
package succinct_test

import (
	"testing"

	"github.com/katalvlaran/hypercsa/succinct"
	"github.com/stretchr/testify/require"
)

// TestPsiVector_RoundTrip VERIFIES γ-coded values decode back exactly,
// including across multiple sample boundaries and the zero value (which
// exercises the value+1 γ-coding offset).
func TestPsiVector_RoundTrip(t *testing.T) {
	values := make([]uint64, 200)
	for i := range values {
		values[i] = uint64(i*i%97) // non-monotone, includes 0 repeatedly
	}

	pv := succinct.BuildPsiVector(values)
	require.Equal(t, len(values), pv.Len())
	for i, want := range values {
		require.Equal(t, want, pv.Get(i), "Get(%d)", i)
	}
	require.Equal(t, values, pv.ToSlice())
}

// TestPsiVector_BoundsOnStrictlyIncreasingSubrange VERIFIES LowerBound and
// UpperBound over a subrange known to be strictly increasing, per invariant
// 3 of spec.md §3.
func TestPsiVector_BoundsOnStrictlyIncreasingSubrange(t *testing.T) {
	// Construct a vector where [2,7) is the strictly increasing subrange of
	// interest; values outside it are irrelevant noise.
	values := []uint64{99, 50, 1, 3, 5, 7, 9, 1}
	pv := succinct.BuildPsiVector(values)

	require.Equal(t, 2, pv.LowerBound(2, 7, 1))
	require.Equal(t, 3, pv.LowerBound(2, 7, 2))
	require.Equal(t, 4, pv.UpperBound(2, 7, 3))
	require.Equal(t, 7, pv.LowerBound(2, 7, 100))
	require.Equal(t, 2, pv.UpperBound(2, 7, 0))
}
