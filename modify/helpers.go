// SPDX-License-Identifier: MIT
package modify

import (
	"github.com/katalvlaran/hypercsa/succinct"
)

// buildShrunkD rebuilds D with the positions marked in deletes removed.
// A deleted position that held a 1 (an interval's start marker) has that 1
// migrate forward onto the next surviving position instead of vanishing —
// dropping it outright would silently merge two nodes' intervals. The
// position absorbing the migrated bit is consumed without being copied
// separately; if that position already held a 1 of its own, the edit would
// leave some node with an empty interval, which is rejected.
func buildShrunkD(oldD *succinct.BitVector, deletes []bool) (*succinct.BitVector, error) {
	oldLen := oldD.Len()
	removed := 0
	for _, del := range deletes {
		if del {
			removed++
		}
	}

	b := succinct.NewBitVectorBuilder(oldLen - removed)
	newIdx := 0
	for oldIdx := 0; oldIdx < oldLen; oldIdx++ {
		if !deletes[oldIdx] {
			if oldD.Get(oldIdx) {
				b.Set(newIdx)
			}
			newIdx++
			continue
		}
		if oldD.Get(oldIdx) {
			b.Set(newIdx)
			newIdx++
			oldIdx++
			if oldIdx < oldLen && oldD.Get(oldIdx) {
				return nil, ErrInvariantViolation
			}
		}
	}
	return b.Build(), nil
}

// buildGrownD rebuilds D with one extra (zero) position inserted into
// node u's interval, immediately after its start marker. Where exactly
// within the interval the new position lands doesn't matter — every other
// position in a node's interval already holds 0, so any insertion point
// inside it grows the interval's width by exactly one.
func buildGrownD(oldD *succinct.BitVector, u uint64) *succinct.BitVector {
	oldLen := oldD.Len()
	b := succinct.NewBitVectorBuilder(oldLen + 1)
	newIdx := 0
	nodeCurrent := -1
	for oldIdx := 0; oldIdx < oldLen; oldIdx++ {
		if oldD.Get(oldIdx) {
			b.Set(newIdx)
		}
		newIdx++
		if oldD.Get(oldIdx) {
			nodeCurrent++
			if uint64(nodeCurrent) == u {
				newIdx++ // leave the inserted slot as the builder's implicit 0
			}
		}
	}
	return b.Build()
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
