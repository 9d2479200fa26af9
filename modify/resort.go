// SPDX-License-Identifier: MIT
package modify

import "github.com/katalvlaran/hypercsa/succinct"

// downwardSort restores strictly-increasing order within a node interval by
// walking a single out-of-place entry at pos toward smaller indices, one
// transposition at a time, fixing up whichever entry pointed at each moved
// slot so every ψ-cycle stays intact across the swap. Used when an edit
// makes its spliced-in value the interval's new smallest member.
func downwardSort(psi []uint64, d *succinct.BitVector, pos int) {
	changedPos := pos
	for {
		nodeIdx := d.Rank1(changedPos+1) - 1
		intervalStart := d.Select1(nodeIdx + 1)

		switchPosition := changedPos
		for switchPosition-1 >= intervalStart && psi[switchPosition-1] > psi[changedPos] {
			switchPosition--
		}
		if switchPosition == changedPos {
			return
		}

		held := psi[changedPos]
		for p := changedPos; p > switchPosition; p-- {
			psi[p] = psi[p-1]
		}
		psi[switchPosition] = held

		for updatePos := switchPosition + 1; updatePos <= changedPos; updatePos++ {
			pred := updatePos
			for int(psi[pred]) != updatePos-1 {
				pred = int(psi[pred])
			}
			psi[pred]++
		}

		pred := switchPosition
		for int(psi[pred]) != changedPos {
			pred = int(psi[pred])
		}
		psi[pred] = uint64(switchPosition)

		changedPos = pred
	}
}

// upwardSort is downwardSort's mirror image: it walks pos toward larger
// indices. Used when an edit's spliced-in value becomes the interval's new
// largest member.
func upwardSort(psi []uint64, d *succinct.BitVector, pos int) {
	changedPos := pos
	for {
		nodeIdx := d.Rank1(changedPos+1) - 1
		intervalEnd := d.Select1(nodeIdx + 2)

		switchPosition := changedPos
		for switchPosition+1 < intervalEnd && psi[changedPos] > psi[switchPosition+1] {
			switchPosition++
		}
		if switchPosition == changedPos {
			return
		}

		held := psi[changedPos]
		for p := changedPos; p < switchPosition; p++ {
			psi[p] = psi[p+1]
		}
		psi[switchPosition] = held

		for updatePos := changedPos; updatePos < switchPosition; updatePos++ {
			pred := updatePos
			for int(psi[pred]) != updatePos+1 {
				pred = int(psi[pred])
			}
			psi[pred]--
		}

		pred := switchPosition
		for int(psi[pred]) != changedPos {
			pred = int(psi[pred])
		}
		psi[pred] = uint64(switchPosition)

		changedPos = pred
	}
}
