// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/complexio"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// complexStats is the invariant summary printed by stats.
type complexStats struct {
	File       string `json:"file,omitempty"`
	Size       int    `json:"size"`
	Dimension  int    `json:"dimension"`
	FVector    []int  `json:"f_vector"`
	Euler      int    `json:"euler"`
	Betti      []int  `json:"betti"`
	Components int    `json:"components"`
}

func statsOf(file string, k *simplicial.Complex) complexStats {
	return complexStats{
		File:       file,
		Size:       k.Len(),
		Dimension:  k.Dimension(),
		FVector:    homology.FVector(k),
		Euler:      homology.EulerCharacteristic(k),
		Betti:      homology.BettiNumbers(k),
		Components: homology.Components(k),
	}
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print f-vector, Euler characteristic and Betti numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			closure, _ := cmd.Flags().GetBool("closure")

			k, err := readComplex(args[0], closure)
			if err != nil {
				return err
			}
			st := statsOf(args[0], k)

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), st)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", st.File)
			fmt.Fprintf(out, "  simplices:  %d (dimension %d)\n", st.Size, st.Dimension)
			fmt.Fprintf(out, "  f-vector:   %v\n", st.FVector)
			fmt.Fprintf(out, "  euler:      %d\n", st.Euler)
			fmt.Fprintf(out, "  betti:      %v\n", st.Betti)
			fmt.Fprintf(out, "  components: %d\n", st.Components)
			return nil
		},
	}
	cmd.Flags().Bool("closure", false, "Treat listed simplices as maximal and add their faces")

	return cmd
}

// readComplex loads path, optionally closing it under faces.
func readComplex(path string, closure bool) (*simplicial.Complex, error) {
	var opts []complexio.ReadOption
	if closure {
		opts = append(opts, complexio.WithClosure())
	}
	k, err := complexio.ReadFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read complex: %w", err)
	}

	return k, nil
}
