// SPDX-License-Identifier: MIT
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes, per spec.md §6: 0 success, 1 I/O failure, 2 malformed input or
// an invariant the library refused to violate.
const (
	exitSuccess           = 0
	exitIOFailure         = 1
	exitInvariantOrInput  = 2
)

var (
	verbose bool
	logger  *slog.Logger
)

// rootCmd is the base command; compress and query attach as children.
var rootCmd = &cobra.Command{
	Use:   "hypercsa",
	Short: "A compressed self-index for hypergraphs",
	Long: `hypercsa builds and queries a compact self-index over hypergraphs:
a compressed representation supporting exact-match and containment queries
without decompressing the whole structure, plus in-place edit operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(queryCmd)
}

// Execute runs the command tree and returns the process exit code; main
// is left with nothing to do but forward it to os.Exit.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		}
		logger.Error(err.Error())
		return classify(err)
	}
	return exitSuccess
}
