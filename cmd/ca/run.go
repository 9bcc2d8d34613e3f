package main

import (
	"io"

	"lattice-ca/internal/app"
	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
	"lattice-ca/internal/logging"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

func newRunCmd(cfg *app.Config, in io.Reader, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Step the automaton interactively (the default command).",
		Long: "run shows the grid and waits for commands: n steps one generation, " +
			"l five, p <k> plays k generations, c toggles the population-only view, " +
			"b <border> switches the boundary, s saves and q quits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cfg, in, out)
		},
	}
}

func runInteractive(cfg *app.Config, in io.Reader, out io.Writer) error {
	l, err := app.BuildLattice(cfg)
	if err != nil {
		return err
	}
	if cfg.Autosave != "" {
		registerAutosave(l, cfg.Autosave)
	}

	s := app.NewSession(l, in, out,
		app.WithSaveDir(cfg.SaveDir),
		app.WithPace(core.NewFixedStep(cfg.TPS)),
	)
	if cfg.Manual && cfg.Init == "" {
		if err := s.PromptLiveCells(); err != nil {
			return err
		}
	}
	return s.Run()
}

// registerAutosave writes l to path when the program exits through atexit.
func registerAutosave(l *lattice.Lattice, path string) {
	atexit.Register(func() {
		if err := l.SaveFile(path); err != nil {
			logging.Logf("autosave: %v", err)
			return
		}
		logging.Logf("autosaved generation %d to %s", l.Generation(), path)
	})
}
