// SPDX-License-Identifier: MIT

// Command spine reduces simplicial complexes to their spines, prints their
// homotopy invariants and generates fixture complexes.
//
//	spine generate torus --rows 4 --cols 5 -o torus.txt.zst
//	spine reduce torus.txt.zst --verify --out reduced/
//	spine stats reduced/torus.txt.zst --json
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spine",
		Short: "Simplicial spine reduction",
		Long: `spine collapses simplicial complexes by elementary collapses until no
principal simplex has a free face, preserving the homotopy type.

Complexes are read from simplex lists (.txt, .yaml, .yml), optionally
compressed (.gz, .zst).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: error, warn, info, debug (adds collapse traces), trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newReduceCmd(),
		newStatsCmd(),
		newGenerateCmd(),
	)

	return rootCmd
}

// loggerFor builds the command logger on stderr from --log-level.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")

	return logging.NewLogger(level, cmd.ErrOrStderr())
}

// jsonOutput reports whether --json was given.
func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")

	return v
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "spine version %s\n", version)
			return err
		},
	}
}
