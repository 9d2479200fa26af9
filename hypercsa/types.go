// SPDX-License-Identifier: MIT
package hypercsa

import "github.com/katalvlaran/hypercsa/succinct"

// CompressedHyperGraph is the pair (D, PSI) from spec.md §3, plus the node
// count N cached at construction time (always equal to D.Rank1(D.Len())-1,
// kept alongside so query/modify never recompute it on every call).
type CompressedHyperGraph struct {
	D   *succinct.BitVector
	PSI *succinct.PsiVector
	N   int
}

// NodeInterval returns the half-open position range [lo, hi) in the global
// token order occupied by node v (v in [0, N)), per spec.md §4.5: "For a
// node v in [1,n] its interval ... is [select_D(v), select_D(v+1))" — here
// re-based to 0-based node ids, so callers never add the internal +1
// themselves.
func (g *CompressedHyperGraph) NodeInterval(v uint64) (lo, hi int) {
	lo = g.D.Select1(int(v) + 1)
	hi = g.D.Select1(int(v) + 2)
	return lo, hi
}

// Node returns the node id occupying token position p.
func (g *CompressedHyperGraph) Node(p int) uint64 {
	return uint64(g.D.Rank1(p+1) - 1)
}
