// SPDX-License-Identifier: MIT
package modify

import (
	"github.com/katalvlaran/hypercsa/hypercsa"
	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/succinct"
)

// DeleteNodeFromEdge removes node u from the hyperedge whose cycle contains
// representative position repP, per spec.md §4.6.2. If u is not a member of
// that edge, it is a no-op: g is returned unchanged.
//
// PSI's single dropped position leaves exactly one entry pointing at it —
// that entry is spliced to skip straight to the removed position's own
// successor. If the removed position was the edge's largest node, the
// splice creates a new (smaller) representative and the interval is
// restored by sorting downward; otherwise it is restored by sorting upward.
func DeleteNodeFromEdge(g *hypercsa.CompressedHyperGraph, repP int, u hypergraph.Node) (*hypercsa.CompressedHyperGraph, error) {
	posDelete := -1
	cur := repP
	for {
		if g.Node(cur) == u && posDelete == -1 {
			posDelete = cur
		}
		next := int(g.PSI.Get(cur))
		if next == repP {
			break
		}
		cur = next
	}
	if posDelete == -1 {
		return g, nil
	}

	oldPsi := g.PSI.ToSlice()

	deletes := make([]bool, g.D.Len())
	deletes[posDelete] = true
	newD, err := buildShrunkD(g.D, deletes)
	if err != nil {
		return nil, err
	}

	newPsi := make([]uint64, len(oldPsi)-1)
	newIdx := 0
	replacedLastNode := false
	jumpChanged := -1
	for oldIdx, v := range oldPsi {
		if oldIdx == posDelete {
			continue
		}
		switch {
		case int(v) < posDelete:
			newPsi[newIdx] = v
		case int(v) > posDelete:
			newPsi[newIdx] = v - 1
		case int(oldPsi[v]) > posDelete:
			newPsi[newIdx] = oldPsi[v] - 1
			jumpChanged = newIdx
		default:
			newPsi[newIdx] = oldPsi[v]
			replacedLastNode = true
			jumpChanged = newIdx
		}
		newIdx++
	}

	if jumpChanged >= 0 {
		if replacedLastNode {
			downwardSort(newPsi, newD, jumpChanged)
		} else {
			upwardSort(newPsi, newD, jumpChanged)
		}
	}

	return &hypercsa.CompressedHyperGraph{D: newD, PSI: succinct.BuildPsiVector(newPsi), N: g.N}, nil
}
