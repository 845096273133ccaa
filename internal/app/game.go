//go:build ebiten

package app

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mazeviz/internal/core"
	"mazeviz/internal/maze"
	"mazeviz/internal/render"
	"mazeviz/internal/solve"
)

// Game adapts the visualizer to the ebiten.Game interface. The solve runs up
// front; the game then replays the recorded discovery trace and path one mark
// per frame on the same grid, paced by a FrameTicker.
type Game struct {
	cfg     *Config
	algo    solve.Strategy
	grid    *core.Grid
	rng     *core.RNG
	painter *render.GridPainter
	ticker  *core.FrameTicker
	start   core.Point
	end     core.Point

	order    []core.Point
	path     []core.Point
	step     int
	paused   bool
	stepOnce bool
}

// NewGame builds the replay viewer for a normalized configuration.
func NewGame(cfg *Config) (*Game, error) {
	algo, ok := solve.Lookup(cfg.Algo)
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (have %s)", cfg.Algo, strings.Join(solve.Names(), ", "))
	}
	grid := core.NewGrid(cfg.Rows, cfg.Cols)
	g := &Game{
		cfg:     cfg,
		algo:    algo,
		grid:    grid,
		rng:     core.NewRNG(cfg.Seed),
		painter: render.NewGridPainter(grid),
		ticker:  core.NewFrameTicker(cfg.DelayDuration()),
		start:   core.Point{Row: 1, Col: 1},
		end:     core.Point{Row: cfg.Rows - 2, Col: cfg.Cols - 2},
	}
	g.regenerate()
	return g, nil
}

// regenerate carves a fresh maze, solves it without animation, and rewinds
// the replay to the blank maze.
func (g *Game) regenerate() {
	maze.Generate(g.grid, g.rng)
	res := solve.Run(g.grid, g.start, g.end, g.algo, solve.Options{RNG: g.rng})
	g.order = res.Order
	g.path = solve.MarkPath(g.grid, res, g.end, nil)
	g.grid.ResetMarks()
	g.step = 0
}

// Update handles key input and advances the replay.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.algo = solve.Toggle(g.algo)
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}

	if (!g.paused || g.stepOnce) && g.ticker.ShouldAdvance() {
		g.advance()
		g.stepOnce = false
	}
	return nil
}

// advance applies the next replay event: one discovery mark, then one path
// mark once the discovery trace is exhausted.
func (g *Game) advance() {
	switch {
	case g.step < len(g.order):
		p := g.order[g.step]
		g.grid.OrMark(p.Row, p.Col, core.MarkVisited)
	case g.step < len(g.order)+len(g.path):
		p := g.path[g.step-len(g.order)]
		g.grid.OrMark(p.Row, p.Col, core.MarkPath)
	default:
		return
	}
	g.step++
}

// Draw renders the current replay state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid, g.start, g.end, g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Cols * g.cfg.Scale, g.grid.Rows * g.cfg.Scale
}
