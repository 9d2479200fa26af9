// SPDX-License-Identifier: MIT
package matrix

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrOutOfRange indicates that a row or column index is outside valid bounds.
var ErrOutOfRange = errors.New("matrix: index out of range")

// ErrIndexOutOfBounds is an alias of ErrOutOfRange kept for the name the
// package's tests check via errors.Is.
var ErrIndexOutOfBounds = ErrOutOfRange

// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
// are required by Set's numeric policy.
var ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
