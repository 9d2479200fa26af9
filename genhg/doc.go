// Package genhg builds deterministic synthetic hypergraphs for tests and
// benchmarks. Its seeding contract mirrors the teacher builder package's
// WithSeed/rngFrom pattern, generalized from plain graphs to hyperedge sets:
// the same (shape, seed) always yields the same HyperGraph.
package genhg
