package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "wordle-helper",
	Short:   "Generate candidate Wordle guesses from partial knowledge",
	Long: "Wordle-helper enumerates every non-redundant guess consistent with a\n" +
		"previous-guess pattern, a set of letters known present, and a pool of\n" +
		"letters still available, optionally filtered against a dictionary.",
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
