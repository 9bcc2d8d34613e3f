//go:build ebiten

package app

import (
	"image/color"

	"lattice-ca/internal/core"
	"lattice-ca/internal/render"
	"lattice-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(render.NewPalette(color.White, color.Black), scale),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
		seed:    seed,
		paused:  true,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if ls, ok := g.sim.(LatticeSim); ok {
			ls.Lattice().TogglePopulationMode()
		}
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	// Sims whose picture is the lattice itself are painted from it; the
	// elementary sim shows a history buffer instead.
	if ls, ok := g.sim.(LatticeSim); ok && ls.Lattice().Cols() == size.W && ls.Lattice().Rows() == size.H {
		g.painter.DrawLattice(screen, ls.Lattice())
	} else {
		g.painter.DrawCells(screen, g.sim.Cells(), size.W, size.H)
	}
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// WindowSize returns the initial window size for the simulation.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
