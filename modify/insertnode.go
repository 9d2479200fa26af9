// SPDX-License-Identifier: MIT
package modify

import (
	"github.com/katalvlaran/hypercsa/hypercsa"
	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/succinct"
)

// InsertNodeToEdge adds node u to the hyperedge whose cycle contains
// representative position repP, per spec.md §4.6.3. u must already be a
// node of the hypergraph (ErrNodeNotFound otherwise) — this only relocates
// an existing node into another edge, it never mints new node ids. If u is
// already a member of the edge, it is a no-op: g is returned unchanged.
//
// The walk locates the consecutive pair (prev, after) u falls between in
// ascending order, with wraparound handled at the representative boundary.
// u's own node interval gets one new position (found by binary search for
// where u's ψ-successor belongs); every existing PSI value at or past that
// position shifts up by one to make room, prev is spliced to point at the
// new slot, and the new slot points at after. Whichever of prev/after ends
// up on the wrong side of the new value is fixed by one sort pass.
func InsertNodeToEdge(g *hypercsa.CompressedHyperGraph, repP int, u hypergraph.Node) (*hypercsa.CompressedHyperGraph, error) {
	iPrev := repP
	nodePrev := g.Node(iPrev)
	if nodePrev == u {
		return g, nil
	}
	iAfter := int(g.PSI.Get(iPrev))
	nodeAfter := g.Node(iAfter)
	if nodeAfter == u {
		return g, nil
	}

	for iAfter != repP &&
		!(nodePrev < u && u < nodeAfter) &&
		!(iPrev > iAfter && (nodePrev < u || u < nodeAfter)) {
		iPrev = iAfter
		nodePrev = nodeAfter
		iAfter = int(g.PSI.Get(iAfter))
		nodeAfter = g.Node(iAfter)
		if nodeAfter == u {
			return g, nil
		}
	}

	nlo, nhi := g.NodeInterval(uint64(u))
	if nlo < 0 || nhi < 0 || nlo >= nhi {
		return nil, ErrNodeNotFound
	}
	insertPosition := g.PSI.LowerBound(nlo, nhi, uint64(iAfter))

	newD := buildGrownD(g.D, uint64(u))

	shift := func(x int) int {
		if x >= insertPosition {
			return x + 1
		}
		return x
	}

	oldPsi := g.PSI.ToSlice()
	newPsi := make([]uint64, len(oldPsi)+1)
	for oldIdx, v := range oldPsi {
		newPsi[shift(oldIdx)] = uint64(shift(int(v)))
	}
	newPsi[insertPosition] = uint64(shift(iAfter))
	splicedPrev := shift(iPrev)
	newPsi[splicedPrev] = uint64(insertPosition)

	if int(newPsi[insertPosition]) < insertPosition {
		upwardSort(newPsi, newD, splicedPrev)
	} else {
		downwardSort(newPsi, newD, splicedPrev)
	}

	return &hypercsa.CompressedHyperGraph{D: newD, PSI: succinct.BuildPsiVector(newPsi), N: g.N}, nil
}
