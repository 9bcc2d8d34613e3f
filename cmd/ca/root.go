package main

import (
	"fmt"
	"io"

	"lattice-ca/internal/app"
	"lattice-ca/internal/core"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree around a shared configuration. The
// configuration flags are persistent so every subcommand accepts them.
func newRootCmd(cfg *app.Config, in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "ca",
		Short: "Step a cellular automaton on a bounded lattice.",
		Long: `ca evolves Conway's Game of Life (or the rule 110 line with --sim elementary) ` +
			`on a grid whose edges follow the chosen boundary: none (the grid grows), ` +
			`cold or hot open borders, or periodic wrap-around.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cfg, in, out)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	cfg.Bind(root.PersistentFlags())

	root.AddCommand(
		newRunCmd(cfg, in, out),
		newStepCmd(cfg, out),
		newSurveyCmd(cfg, out),
		newViewCmd(cfg),
		newSimsCmd(out),
	)
	return root
}

func newSimsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "sims",
		Short: "List the available automata.",
		Args:  cobra.NoArgs,
		// The listing needs no valid grid configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.Names() {
				fmt.Fprintln(out, name)
			}
		},
	}
}
