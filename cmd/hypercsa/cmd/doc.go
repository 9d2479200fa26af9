// Package cmd implements the hypercsa command-line tool's subcommands:
// compress builds a compressed index from a text edge list, query runs
// exact-match or containment queries against a saved index.
package cmd
