//go:build ebiten

package main

import (
	"errors"

	"lattice-ca/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newViewCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Watch the automaton in a window.",
		Long: "view opens a window: space runs or pauses, n steps once, r reseeds, " +
			"c toggles the population line and q quits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.BuildLattice(cfg)
			if err != nil {
				return err
			}
			sim, err := app.BuildSim(cfg, l)
			if err != nil {
				return err
			}

			game := app.New(sim, cfg.Scale, cfg.Seed)
			w, h := game.WindowSize()

			ebiten.SetWindowTitle("ca - " + sim.Name())
			ebiten.SetTPS(cfg.TPS)
			ebiten.SetWindowSize(w, h)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
