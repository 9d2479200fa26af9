// SPDX-License-Identifier: MIT
package query

// Kind selects which query form Run performs.
type Kind int

const (
	// Exact selects exact node-set match (spec.md §4.5.1).
	Exact Kind = iota
	// Contain selects superset containment (spec.md §4.5.2).
	Contain
)
