package world

import (
	"errors"
	"fmt"
)

// ErrDegenerateHeightmap is returned when every cell ends up at the same
// height and the grid cannot be normalised. Retrying with another seed or a
// non-zero roughness usually resolves it.
var ErrDegenerateHeightmap = errors.New("world: heightmap is flat, cannot normalise")

// ErrSourceOutOfRange is returned when a Source yields NaN or a value
// outside [0, 1).
var ErrSourceOutOfRange = errors.New("world: random source value outside [0, 1)")

// Generator produces diamond-square heightmaps for a fixed config.
type Generator struct {
	size      int
	roughness float64
	maxHeight float64
}

// NewGenerator validates cfg and returns a generator for it.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		size:      cfg.Size,
		roughness: cfg.Roughness,
		maxHeight: cfg.MaxHeight,
	}, nil
}

// Generate runs diamond-square with the default max height.
func Generate(size int, roughness float64, src Source) (*Grid, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Roughness = roughness
	g, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(src)
}

// Size returns the grid side this generator produces.
func (gen *Generator) Size() int { return gen.size }

// Generate builds a fresh heightmap normalised to [0, max height].
//
// Draw order: the four corners ((0,0), (0,last), (last,0), (last,last)), then
// per level the square-step midpoints followed by the diamond-step midpoints,
// one draw per assigned cell. A grid of side n consumes exactly n*n draws.
func (gen *Generator) Generate(src Source) (*Grid, error) {
	g, err := gen.subdivide(src)
	if err != nil {
		return nil, err
	}
	if err := gen.normalize(g); err != nil {
		return nil, err
	}
	return g, nil
}

// subdivide seeds the corners and runs every level, leaving raw heights.
func (gen *Generator) subdivide(src Source) (*Grid, error) {
	g := NewGrid(gen.size)
	for _, p := range g.Corners() {
		u, err := draw(src)
		if err != nil {
			return nil, fmt.Errorf("seed corner %v: %w", p, err)
		}
		g.Set(p.X, p.Y, u*gen.maxHeight)
	}

	// Each level only reads cells finished by the previous ones.
	for step := gen.size - 1; step > 1; step /= 2 {
		if err := gen.squareStep(g, src, step); err != nil {
			return nil, err
		}
		if err := gen.diamondStep(g, src, step); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// squareStep fills the centre of every step x step square from its four
// corners. Corner coordinates are clamped to the last index.
func (gen *Generator) squareStep(g *Grid, src Source, step int) error {
	half := step / 2
	last := gen.size - 1
	for x := half; x < gen.size; x += step {
		for y := half; y < gen.size; y += step {
			x0, x1 := x-half, min(x+half, last)
			y0, y1 := y-half, min(y+half, last)
			avg := (g.At(x0, y0) + g.At(x1, y0) + g.At(x0, y1) + g.At(x1, y1)) / 4

			d, err := gen.displace(src, step)
			if err != nil {
				return fmt.Errorf("square step %d at (%d,%d): %w", step, x, y, err)
			}
			g.Set(x, y, avg+d)
		}
	}
	return nil
}

// diamondStep fills the edge midpoints from their four axis neighbours.
// Neighbours outside the grid wrap around the torus (see wrap).
func (gen *Generator) diamondStep(g *Grid, src Source, step int) error {
	half := step / 2
	n := gen.size
	for x := 0; x < n; x += half {
		for y := (x + half) % step; y < n; y += step {
			avg := (g.At(wrap(x-half, n), y) +
				g.At(wrap(x+half, n), y) +
				g.At(x, wrap(y-half, n)) +
				g.At(x, wrap(y+half, n))) / 4

			d, err := gen.displace(src, step)
			if err != nil {
				return fmt.Errorf("diamond step %d at (%d,%d): %w", step, x, y, err)
			}
			g.Set(x, y, avg+d)
		}
	}
	return nil
}

// displace draws one value and scales it to the current step.
func (gen *Generator) displace(src Source, step int) (float64, error) {
	u, err := draw(src)
	if err != nil {
		return 0, err
	}
	return (u - 0.5) * float64(step) * gen.roughness, nil
}

// draw takes one value from src and checks it is in [0, 1).
func draw(src Source) (float64, error) {
	u, err := src.Float64()
	if err != nil {
		return 0, err
	}
	// Written so NaN fails too.
	if !(u >= 0 && u < 1) {
		return 0, fmt.Errorf("%w: got %g", ErrSourceOutOfRange, u)
	}
	return u, nil
}

// normalize rescales g in place so its minimum is 0 and maximum is maxHeight.
func (gen *Generator) normalize(g *Grid) error {
	lo, hi := g.Bounds()
	if lo == hi {
		return fmt.Errorf("%w: every cell is %g", ErrDegenerateHeightmap, lo)
	}
	span := hi - lo
	for i, v := range g.cells {
		g.cells[i] = (v - lo) / span * gen.maxHeight
	}
	return nil
}

// wrap maps an index one half-step outside [0, n) back onto the grid. The
// torus period is n-1 because the first and last rows are the same seam, so
// every neighbour read lands on an already assigned cell.
func wrap(i, n int) int {
	switch {
	case i < 0:
		return i + n - 1
	case i >= n:
		return i - (n - 1)
	default:
		return i
	}
}
