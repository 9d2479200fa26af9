// SPDX-License-Identifier: MIT
package serialize

import "errors"

// ErrBadMagic indicates the stream did not start with the "HCSA" magic —
// it is not a hypercsa file at all.
var ErrBadMagic = errors.New("serialize: bad magic header")

// ErrUnsupportedVersion indicates the stream's format version is newer (or
// otherwise unrecognized) than this build of the package understands.
var ErrUnsupportedVersion = errors.New("serialize: unsupported format version")
