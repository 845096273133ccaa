// Package app wires configuration, generation, solving and rendering into the
// interactive visualizer front-ends.
package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"mazeviz/internal/core"
	"mazeviz/internal/maze"
	"mazeviz/internal/render"
	"mazeviz/internal/solve"
)

var log = logrus.New()

// App runs the terminal visualizer: carve a maze, animate a solve, then offer
// regenerate / toggle-algorithm / quit.
type App struct {
	cfg     *Config
	algo    solve.Strategy
	grid    *core.Grid
	rng     *core.RNG
	painter *render.Painter
	in      *bufio.Reader
	out     io.Writer
	start   core.Point
	end     core.Point
}

// New constructs the app for a normalized configuration.
func New(cfg *Config, in io.Reader, out io.Writer) (*App, error) {
	algo, ok := solve.Lookup(cfg.Algo)
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (have %s)", cfg.Algo, strings.Join(solve.Names(), ", "))
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	start := core.Point{Row: 1, Col: 1}
	end := core.Point{Row: cfg.Rows - 2, Col: cfg.Cols - 2}
	return &App{
		cfg:     cfg,
		algo:    algo,
		grid:    core.NewGrid(cfg.Rows, cfg.Cols),
		rng:     core.NewRNG(cfg.Seed),
		painter: render.NewPainter(out, start, end),
		in:      bufio.NewReader(in),
		out:     out,
		start:   start,
		end:     end,
	}, nil
}

// Run drives the generate/solve/menu loop until the user quits or input ends.
func (a *App) Run() error {
	if !render.Fits(a.grid) {
		rows, cols := render.ConsoleSize()
		log.Warnf("a %dx%d maze may not fit a %dx%d console", a.grid.Rows, a.grid.Cols, rows, cols)
	}
	render.HideCursor(a.out)
	defer render.ShowCursor(a.out)
	defer render.ClearScreen(a.out)

	for {
		maze.Generate(a.grid, a.rng)
		a.grid.ResetMarks()
		render.ClearScreen(a.out)
		a.painter.Frame(a.grid)
		fmt.Fprintf(a.out, "\nGenerated maze %dx%d. Press Enter to start the %s solver.",
			a.grid.Cols, a.grid.Rows, strings.ToUpper(a.algo.Name))
		if _, err := a.in.ReadString('\n'); err != nil {
			return nil
		}

		a.solve()

		a.painter.Frame(a.grid)
		fmt.Fprint(a.out, "\nSolver finished. Options:\n[r] Regenerate  [a] Toggle algorithm  [q] Quit\n")
		switch a.readChoice() {
		case 'q':
			return nil
		case 'a':
			a.algo = solve.Toggle(a.algo)
		}
	}
}

// solve animates one search plus path reconstruction, redrawing a frame and
// sleeping the configured delay after every state change.
func (a *App) solve() {
	delay := a.cfg.DelayDuration()
	onFrame := func() {
		a.painter.Frame(a.grid)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	started := time.Now()
	res := solve.Run(a.grid, a.start, a.end, a.algo, solve.Options{RNG: a.rng, OnVisit: onFrame})
	path := solve.MarkPath(a.grid, res, a.end, onFrame)
	log.WithFields(logrus.Fields{
		"algo":    a.algo.Name,
		"visited": len(res.Order),
		"path":    len(path),
		"elapsed": time.Since(started).Round(time.Millisecond),
	}).Debug("solve complete")
}

// readChoice reads one menu line; empty input regenerates, EOF quits.
func (a *App) readChoice() byte {
	line, err := a.in.ReadString('\n')
	if err != nil {
		return 'q'
	}
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return 'r'
	}
	return line[0]
}
