// SPDX-License-Identifier: MIT
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypercsa/hypergraph"
)

// ParseFile opens path and parses it as the line-based hyperedge text
// format of spec.md §6. If baseZero is set and the smallest node id seen
// across every line is greater than zero, every id is rebased by
// subtracting that minimum before edges are built.
func ParseFile(path string, baseZero bool) (hypergraph.HyperGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return hypergraph.HyperGraph{}, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	return ParseReader(f, baseZero)
}

// ParseReader is ParseFile's underlying implementation, exposed directly
// for tests and for callers already holding an open stream.
func ParseReader(r io.Reader, baseZero bool) (hypergraph.HyperGraph, error) {
	rawEdges, err := scanEdges(r)
	if err != nil {
		return hypergraph.HyperGraph{}, err
	}

	if baseZero {
		rebase(rawEdges)
	}

	hg := hypergraph.HyperGraph{}
	for lineNo, raw := range rawEdges {
		if err := hg.AddEdge(raw); err != nil {
			return hypergraph.HyperGraph{}, fmt.Errorf("ingest: line %d: %w", lineNo+1, err)
		}
	}
	return hg, nil
}

func scanEdges(r io.Reader) ([][]hypergraph.Node, error) {
	var edges [][]hypergraph.Node
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tokens := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(tokens) == 0 {
			return nil, fmt.Errorf("ingest: line %d: %w", lineNo, ErrMalformedLine)
		}
		edge := make([]hypergraph.Node, len(tokens))
		for i, tok := range tokens {
			v, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("ingest: line %d: %w", lineNo, ErrMalformedLine)
			}
			edge[i] = hypergraph.Node(v)
		}
		edges = append(edges, edge)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: scan: %w", err)
	}
	return edges, nil
}

// rebase subtracts the minimum node id observed across every edge from
// every id, in place, when that minimum is greater than zero.
func rebase(edges [][]hypergraph.Node) {
	min := ^hypergraph.Node(0)
	seenAny := false
	for _, e := range edges {
		for _, v := range e {
			seenAny = true
			if v < min {
				min = v
			}
		}
	}
	if !seenAny || min == 0 {
		return
	}
	for _, e := range edges {
		for i, v := range e {
			e[i] = v - min
		}
	}
}
