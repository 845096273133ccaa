package app

import (
	"flag"
	"time"
)

const (
	minSize    = 11
	maxDelayMS = 1000
)

// Config represents the command-line parameters for the visualizer.
type Config struct {
	Rows    int
	Cols    int
	Algo    string
	Delay   int // milliseconds between animation frames
	Seed    int64
	Scale   int // pixel scale multiplier for the GUI build
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 21, Cols: 31, Algo: "bfs", Delay: 40, Scale: 16}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "maze rows (odd, at least 11)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "maze columns (odd, at least 11)")
	fs.StringVar(&c.Algo, "algo", c.Algo, "search strategy (bfs or dfs)")
	fs.IntVar(&c.Delay, "delay", c.Delay, "animation delay per frame in ms")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for wall clock")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI build)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log solve diagnostics")
}

// Normalize corrects out-of-range values instead of rejecting them: sizes are
// forced odd and at least 11, the delay is clamped to [0, 1000] ms, and a
// zero seed is replaced with the wall clock so consecutive runs differ.
func (c *Config) Normalize() {
	if c.Rows < minSize {
		c.Rows = minSize
	}
	if c.Cols < minSize {
		c.Cols = minSize
	}
	if c.Rows%2 == 0 {
		c.Rows++
	}
	if c.Cols%2 == 0 {
		c.Cols++
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.Delay > maxDelayMS {
		c.Delay = maxDelayMS
	}
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
}

// DelayDuration returns the per-frame animation delay as a duration.
func (c *Config) DelayDuration() time.Duration {
	return time.Duration(c.Delay) * time.Millisecond
}
