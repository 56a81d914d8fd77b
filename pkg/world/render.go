package world

import "image/color"

// BandGrid is a heightmap classified into bands, indexed [x][y] like Grid.
type BandGrid struct {
	Size  int
	cells []Band
}

// Render classifies every cell of g. g is only read.
func (c Classifier) Render(g *Grid) *BandGrid {
	b := &BandGrid{
		Size:  g.Size,
		cells: make([]Band, len(g.cells)),
	}
	for i, h := range g.cells {
		b.cells[i] = c.Classify(h)
	}
	return b
}

// At returns the band at (x, y).
func (b *BandGrid) At(x, y int) Band {
	return b.cells[x*b.Size+y]
}

// Colors returns a fresh colour grid indexed [x][y].
func (b *BandGrid) Colors() [][]color.RGBA {
	out := make([][]color.RGBA, b.Size)
	for x := range out {
		out[x] = make([]color.RGBA, b.Size)
		for y := range out[x] {
			out[x][y] = b.At(x, y).Color()
		}
	}
	return out
}

// Counts returns how many cells fall in each band.
func (b *BandGrid) Counts() map[Band]int {
	counts := make(map[Band]int, len(Bands))
	for _, band := range b.cells {
		counts[band]++
	}
	return counts
}

// Nearest returns the closest cell to from classified as band. Ties go to
// the first cell in x-major order. ok is false if from is off the grid or no
// cell has that band.
func (b *BandGrid) Nearest(from Point, band Band) (p Point, ok bool) {
	if !from.In(b.Size) {
		return Point{}, false
	}
	best := -1
	for x := 0; x < b.Size; x++ {
		for y := 0; y < b.Size; y++ {
			if b.At(x, y) != band {
				continue
			}
			q := Point{x, y}
			if d := from.DistanceSquared(q); best < 0 || d < best {
				best, p = d, q
			}
		}
	}
	return p, best >= 0
}
