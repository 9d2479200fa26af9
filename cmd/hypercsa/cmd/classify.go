// SPDX-License-Identifier: MIT
package cmd

import (
	"errors"
	"io/fs"

	"github.com/katalvlaran/hypercsa/hypercsa"
	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/ingest"
	"github.com/katalvlaran/hypercsa/modify"
	"github.com/katalvlaran/hypercsa/serialize"
)

// classify maps a command error to a process exit code. Anything the
// filesystem itself complained about is IoFailure; anything the library
// refused to do because the input or the edit was invalid is
// InvariantViolation/MalformedInput; everything else is reported as
// IoFailure, since the CLI's remaining failure modes are file operations.
func classify(err error) int {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return exitIOFailure
	}
	switch {
	case errors.Is(err, hypergraph.ErrSparseNodeIDs),
		errors.Is(err, hypergraph.ErrEmptyEdge),
		errors.Is(err, hypercsa.ErrMalformedInput),
		errors.Is(err, ingest.ErrMalformedLine),
		errors.Is(err, modify.ErrInvariantViolation),
		errors.Is(err, modify.ErrNodeNotFound),
		errors.Is(err, serialize.ErrBadMagic),
		errors.Is(err, serialize.ErrUnsupportedVersion):
		return exitInvariantOrInput
	}
	return exitIOFailure
}
