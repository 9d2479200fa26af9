// SPDX-License-Identifier: MIT
package genhg

import "errors"

// ErrTooFewNodes indicates a requested shape needs more nodes than given.
var ErrTooFewNodes = errors.New("genhg: too few nodes for the requested shape")

// ErrInvalidDegreeSequence indicates a degree sequence contains a negative
// entry or sums to zero.
var ErrInvalidDegreeSequence = errors.New("genhg: invalid degree sequence")
