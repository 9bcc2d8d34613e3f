package main

import (
	"fmt"
	"io"

	"lattice-ca/internal/app"
	"lattice-ca/internal/render"

	"github.com/spf13/cobra"
)

func newStepCmd(cfg *app.Config, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance a fixed number of generations without prompting.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cfg, out)
		},
	}
	cmd.Flags().IntVarP(&cfg.Generations, "generations", "g", cfg.Generations, "generations to advance")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "save the final grid to this file")
	return cmd
}

func runSteps(cfg *app.Config, out io.Writer) error {
	l, err := app.BuildLattice(cfg)
	if err != nil {
		return err
	}
	r := render.Text{Header: true}
	if err := r.Render(out, l); err != nil {
		return err
	}
	for i := 0; i < cfg.Generations; i++ {
		l.Advance()
		if err := r.Render(out, l); err != nil {
			return err
		}
	}
	if cfg.Output == "" {
		return nil
	}
	if err := l.SaveFile(cfg.Output); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved to %s\n", cfg.Output)
	return nil
}
