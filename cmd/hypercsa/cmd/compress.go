// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypercsa/hypercsa"
	"github.com/katalvlaran/hypercsa/ingest"
	"github.com/katalvlaran/hypercsa/serialize"
)

var (
	compressInput    string
	compressOutput   string
	compressBaseZero bool
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Build a compressed hypergraph index from a text edge list",
	Example: `  hypercsa compress -i edges.txt -o index.hcsa
  hypercsa compress -i edges.txt -o index.hcsa --base-zero`,
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(&compressInput, "input", "i", "", "input edge-list file (required)")
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "", "output index file (required)")
	compressCmd.Flags().BoolVar(&compressBaseZero, "base-zero", false, "rebase node ids to start at 0")
	compressCmd.MarkFlagRequired("input")
	compressCmd.MarkFlagRequired("output")
}

func runCompress(cmd *cobra.Command, args []string) error {
	logger.Debug("parsing edge list", "input", compressInput)
	hg, err := ingest.ParseFile(compressInput, compressBaseZero)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	logger.Info("parsed hypergraph", "nodes", hg.NodeCount(), "edges", hg.EdgeCount())

	g, err := hypercsa.Construct(hg)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	logger.Debug("constructed index", "psi_len", g.PSI.Len())

	f, err := os.Create(compressOutput)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	defer f.Close()

	if err := serialize.Save(f, g); err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	logger.Info("wrote index", "output", compressOutput)
	return nil
}
