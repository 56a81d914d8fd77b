package world

import "gonum.org/v1/gonum/floats"

// Grid is a square grid of heights indexed [x][y].
// Storage is flat: idx = x*Size + y.
type Grid struct {
	Size  int
	cells []float64
}

// NewGrid creates a zeroed size x size grid.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		cells: make([]float64, size*size),
	}
}

// At returns the height at (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.cells[x*g.Size+y]
}

// Set stores the height at (x, y).
func (g *Grid) Set(x, y int, v float64) {
	g.cells[x*g.Size+y] = v
}

// Values returns the backing slice. Callers must treat it as read-only.
func (g *Grid) Values() []float64 {
	return g.cells
}

// Bounds returns the lowest and highest height in the grid.
func (g *Grid) Bounds() (lo, hi float64) {
	return floats.Min(g.cells), floats.Max(g.cells)
}

// Corners returns the four corner points in seeding order.
func (g *Grid) Corners() [4]Point {
	last := g.Size - 1
	return [4]Point{{0, 0}, {0, last}, {last, 0}, {last, last}}
}
