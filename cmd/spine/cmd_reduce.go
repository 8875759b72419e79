// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtopo/complexio"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/internal/logging"
	"github.com/katalvlaran/lvtopo/spine"
)

// errNotPreserved is returned by --verify when a reduction changed the
// Betti numbers or the Euler characteristic.
var errNotPreserved = errors.New("homotopy invariants not preserved")

// errDuplicateOutput is returned when two inputs would be written to the
// same file under --out.
var errDuplicateOutput = errors.New("duplicate output path")

// reduceResult reports one reduced file.
type reduceResult struct {
	File      string `json:"file"`
	Algorithm string `json:"algorithm"`
	Initial   int    `json:"initial"`
	Final     int    `json:"final"`
	Euler     int    `json:"euler"`
	Betti     []int  `json:"betti,omitempty"`
	Verified  bool   `json:"verified"`
	Output    string `json:"output,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

func newReduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce FILE...",
		Short: "Reduce complexes to their spines",
		Long: `Reduce every FILE to its spine, concurrently.

With --out, each spine is written to DIR under the input's base name
(same encoding and compression). With --verify, Betti numbers and the
Euler characteristic of input and spine are compared.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, _ := cmd.Flags().GetString("algorithm")
			outDir, _ := cmd.Flags().GetString("out")
			verify, _ := cmd.Flags().GetBool("verify")
			jobs, _ := cmd.Flags().GetInt("jobs")
			closure, _ := cmd.Flags().GetBool("closure")
			logger := loggerFor(cmd)

			outputs, err := outputPaths(args, outDir)
			if err != nil {
				return err
			}

			var opts []spine.Option
			if logging.CollapseTraces(logger) {
				opts = append(opts, spine.WithLogger(logger))
			}
			reducer, err := spine.ByName(algorithm, opts...)
			if err != nil {
				return err
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if jobs < 1 {
				jobs = 1
			}

			results := make([]reduceResult, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, file := range args {
				i, file := i, file // per-iteration copies (go 1.21 loop semantics)
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					res, err := reduceFile(reducer, file, closure, verify, outputs[i])
					if err != nil {
						return fmt.Errorf("%s: %w", file, err)
					}
					res.Algorithm = algorithm
					results[i] = res
					logger.Info("reduced", "file", file, "initial", res.Initial, "final", res.Final, "elapsed_ms", res.ElapsedMS)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			out := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintf(out, "%s: %d -> %d simplices, euler %d", res.File, res.Initial, res.Final, res.Euler)
				if res.Verified {
					fmt.Fprintf(out, ", betti %v verified", res.Betti)
				}
				if res.Output != "" {
					fmt.Fprintf(out, " -> %s", res.Output)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().String("algorithm", spine.AlgorithmIncremental, "Reducer: incremental or reference")
	cmd.Flags().String("out", "", "Directory to write reduced complexes to")
	cmd.Flags().Bool("verify", false, "Check that Betti numbers and Euler characteristic are preserved")
	cmd.Flags().Int("jobs", runtime.NumCPU(), "Maximum number of files reduced concurrently")
	cmd.Flags().Bool("closure", false, "Treat listed simplices as maximal and add their faces")

	return cmd
}

// outputPaths maps every input to its file under outDir (all empty when
// outDir is empty). Inputs sharing a base name are rejected, since the
// concurrent writes would clobber each other.
func outputPaths(files []string, outDir string) ([]string, error) {
	paths := make([]string, len(files))
	if outDir == "" {
		return paths, nil
	}

	seen := make(map[string]string, len(files))
	for i, file := range files {
		path := filepath.Join(outDir, filepath.Base(file))
		if prev, dup := seen[path]; dup {
			return nil, fmt.Errorf("%s and %s both map to %s: %w", prev, file, path, errDuplicateOutput)
		}
		seen[path] = file
		paths[i] = path
	}

	return paths, nil
}

// reduceFile reads, reduces, optionally verifies and writes one complex.
// An empty output skips the write.
func reduceFile(r spine.Reducer, file string, closure, verify bool, output string) (reduceResult, error) {
	k, err := readComplex(file, closure)
	if err != nil {
		return reduceResult{}, err
	}

	start := time.Now()
	out, err := r.Reduce(k)
	if err != nil {
		return reduceResult{}, fmt.Errorf("failed to reduce: %w", err)
	}
	res := reduceResult{
		File:      file,
		Initial:   k.Len(),
		Final:     out.Len(),
		Euler:     homology.EulerCharacteristic(out),
		ElapsedMS: time.Since(start).Milliseconds(),
	}

	if verify {
		before, after := homology.BettiNumbers(k), homology.BettiNumbers(out)
		// Dimensions removed by the collapse carry zero Betti numbers.
		after = append(after, make([]int, max(0, len(before)-len(after)))...)
		if !slices.Equal(before, after) || homology.EulerCharacteristic(k) != res.Euler {
			return res, fmt.Errorf("betti %v -> %v: %w", before, after, errNotPreserved)
		}
		res.Betti = before
		res.Verified = true
	}

	if output != "" {
		res.Output = output
		if err := complexio.WriteFile(res.Output, out); err != nil {
			return res, fmt.Errorf("failed to write spine: %w", err)
		}
	}

	return res, nil
}
