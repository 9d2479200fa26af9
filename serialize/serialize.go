// SPDX-License-Identifier: MIT
package serialize

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/hypercsa/hypercsa"
	"github.com/katalvlaran/hypercsa/succinct"
)

var magicBytes = [4]byte{'H', 'C', 'S', 'A'}

const formatVersion uint8 = 1

// header is the fixed-size preamble written before D and PSI's payloads.
// Every count here is a length in elements, not bytes, so Load knows exactly
// how many words/samples to read back.
type header struct {
	Magic          [4]byte
	Version        uint8
	_              [3]byte // padding, keeps the struct word-aligned for binary.Write
	N              uint32
	DLen           uint32
	DWordCount     uint32
	PsiLen         uint32
	PsiBitLen      uint32
	PsiWordCount   uint32
	PsiSampleCount uint32
}

// Save writes g to w: a magic+version header, then D's packed words, then
// PSI's γ-coded bitstream and sample table, per spec.md §4.7/§6.
func Save(w io.Writer, g *hypercsa.CompressedHyperGraph) error {
	dWords := g.D.Words()
	psiBits := g.PSI.RawBits()
	psiSamples := g.PSI.SamplePositions()

	hdr := header{
		Version:        formatVersion,
		N:              uint32(g.N),
		DLen:           uint32(g.D.Len()),
		DWordCount:     uint32(len(dWords)),
		PsiLen:         uint32(g.PSI.Len()),
		PsiBitLen:      uint32(g.PSI.BitLen()),
		PsiWordCount:   uint32(len(psiBits)),
		PsiSampleCount: uint32(len(psiSamples)),
	}
	hdr.Magic = magicBytes

	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("serialize: write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, dWords); err != nil {
		return fmt.Errorf("serialize: write D: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, psiBits); err != nil {
		return fmt.Errorf("serialize: write PSI bitstream: %w", err)
	}

	samples32 := make([]int32, len(psiSamples))
	for i, s := range psiSamples {
		samples32[i] = int32(s)
	}
	if err := binary.Write(w, binary.LittleEndian, samples32); err != nil {
		return fmt.Errorf("serialize: write PSI samples: %w", err)
	}
	return nil
}

// Load reads back a CompressedHyperGraph previously written by Save.
func Load(r io.Reader) (*hypercsa.CompressedHyperGraph, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("serialize: read header: %w", err)
	}
	if hdr.Magic != magicBytes {
		return nil, ErrBadMagic
	}
	if hdr.Version != formatVersion {
		return nil, ErrUnsupportedVersion
	}

	dWords := make([]uint64, hdr.DWordCount)
	if err := binary.Read(r, binary.LittleEndian, dWords); err != nil {
		return nil, fmt.Errorf("serialize: read D: %w", err)
	}
	d := succinct.NewBitVectorFromWords(dWords, int(hdr.DLen))

	psiBits := make([]uint64, hdr.PsiWordCount)
	if err := binary.Read(r, binary.LittleEndian, psiBits); err != nil {
		return nil, fmt.Errorf("serialize: read PSI bitstream: %w", err)
	}

	samples32 := make([]int32, hdr.PsiSampleCount)
	if err := binary.Read(r, binary.LittleEndian, samples32); err != nil {
		return nil, fmt.Errorf("serialize: read PSI samples: %w", err)
	}
	samples := make([]int, len(samples32))
	for i, s := range samples32 {
		samples[i] = int(s)
	}

	psi := succinct.NewPsiVectorFromRaw(psiBits, int(hdr.PsiBitLen), int(hdr.PsiLen), samples)

	return &hypercsa.CompressedHyperGraph{D: d, PSI: psi, N: int(hdr.N)}, nil
}
