package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"lattice-ca/internal/app"
	"lattice-ca/internal/lattice"

	"github.com/spf13/cobra"
)

func newSurveyCmd(cfg *app.Config, out io.Writer) *cobra.Command {
	var (
		borders     []string
		runs        int
		generations int
		workers     int
	)
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Compare boundaries over many random seeds.",
		Long: `survey advances one random grid per boundary and seed (seeds start at --seed) ` +
			`and prints the population and settling generation of each run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var boundaries []lattice.Boundary
			for _, name := range borders {
				b, err := lattice.ParseBoundary(name)
				if err != nil {
					return err
				}
				boundaries = append(boundaries, b)
			}
			if runs < 1 {
				return fmt.Errorf("runs must be positive, got %d", runs)
			}
			seeds := make([]int64, runs)
			for i := range seeds {
				seeds[i] = cfg.Seed + int64(i)
			}

			fmt.Fprintf(out, "Surveying %d runs (%d workers, %d generations)\n",
				len(boundaries)*len(seeds), workers, generations)
			start := time.Now()
			results, err := app.Survey(cfg, boundaries, seeds, generations, workers)
			if err != nil {
				return err
			}
			for _, res := range results {
				fmt.Fprintln(out, res)
			}
			fmt.Fprintf(out, "Done in %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&borders, "borders", []string{"none", "cold", "hot", "periodic"}, "boundaries to compare")
	cmd.Flags().IntVar(&runs, "runs", 4, "seeds per boundary")
	cmd.Flags().IntVarP(&generations, "generations", "g", 50, "generations per run")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}
