// SPDX-License-Identifier: MIT
package modify

import (
	"github.com/katalvlaran/hypercsa/hypercsa"
	"github.com/katalvlaran/hypercsa/succinct"
)

// DeleteEdge removes the hyperedge whose cycle contains representative
// position repP, per spec.md §4.6.1. It walks the full cycle to mark every
// position the edge occupies, drops them from D (failing with
// ErrInvariantViolation if doing so would empty some node's interval), and
// rebuilds PSI by dropping the same positions and re-basing every surviving
// value by how many deleted positions preceded it.
func DeleteEdge(g *hypercsa.CompressedHyperGraph, repP int) (*hypercsa.CompressedHyperGraph, error) {
	oldPsi := g.PSI.ToSlice()

	deletes := make([]bool, g.D.Len())
	deletes[repP] = true
	for cur := int(oldPsi[repP]); cur != repP; cur = int(oldPsi[cur]) {
		deletes[cur] = true
	}

	newD, err := buildShrunkD(g.D, deletes)
	if err != nil {
		return nil, err
	}

	delBuilder := succinct.NewBitVectorBuilder(len(deletes))
	for i, del := range deletes {
		if del {
			delBuilder.Set(i)
		}
	}
	delRank := delBuilder.Build()

	newPsi := make([]uint64, 0, len(oldPsi)-countTrue(deletes[:len(oldPsi)]))
	for i, v := range oldPsi {
		if deletes[i] {
			continue
		}
		newPsi = append(newPsi, v-uint64(delRank.Rank1(int(v))))
	}

	return &hypercsa.CompressedHyperGraph{D: newD, PSI: succinct.BuildPsiVector(newPsi), N: g.N}, nil
}
