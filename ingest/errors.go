// SPDX-License-Identifier: MIT
package ingest

import "errors"

// ErrMalformedLine indicates a line held a token that is not a non-negative
// integer, or held no tokens at all.
var ErrMalformedLine = errors.New("ingest: malformed edge line")
