package render

import (
	"golang.org/x/crypto/ssh/terminal"

	"mazeviz/internal/core"
)

// ConsoleSize returns the terminal dimensions in rows and columns. Defaults
// to 24 rows and 80 columns if the underlying system call fails.
func ConsoleSize() (rows, cols int) {
	cols, rows, err := terminal.GetSize(0)
	if err != nil {
		return 24, 80
	}
	return rows, cols
}

// Fits reports whether a frame of g fits the console. Each cell is two
// characters wide, and a few rows are reserved for the menu under the maze.
func Fits(g *core.Grid) bool {
	rows, cols := ConsoleSize()
	return g.Rows+4 <= rows && g.Cols*len(cellBlock) <= cols
}
