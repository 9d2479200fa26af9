// SPDX-License-Identifier: MIT
package hypercsa

import "errors"

// ErrMalformedInput indicates the linear representation's token values did
// not form the contiguous range the construction algorithm requires — the
// Go realization of calc_d's assertion from the original implementation
// (spec.md §7: "linearization receives non-dense node ids, or value
// sequence in calc_D skips an integer").
var ErrMalformedInput = errors.New("hypercsa: node ids are not densely packed")
