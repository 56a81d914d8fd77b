package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/mazznoer/colorgrad"

	"github.com/StoreStation/terrain/pkg/world"
)

// WritePNG encodes a colour grid indexed [x][y] as a PNG, one pixel per cell.
// Alpha is forced opaque so the encoder emits plain RGB.
func WritePNG(w io.Writer, colors [][]color.RGBA) error {
	width := len(colors)
	height := 0
	if width > 0 {
		height = len(colors[0])
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x, col := range colors {
		if len(col) != height {
			return fmt.Errorf("column %d has %d cells, want %d", x, len(col), height)
		}
		for y, c := range col {
			c.A = 255
			img.SetRGBA(x, y, c)
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the band raster of bands to path.
func SavePNG(path string, bands *world.BandGrid) error {
	return saveFile(path, func(w io.Writer) error {
		return WritePNG(w, bands.Colors())
	})
}

// terrainGradient runs from deep water through the band palette to snow.
func terrainGradient() (colorgrad.Gradient, error) {
	return colorgrad.NewGradient().
		Colors(
			color.RGBA{0, 0, 96, 255},
			world.Ocean.Color(),
			world.Lowland.Color(),
			world.Highland.Color(),
			world.Peak.Color(),
		).
		Build()
}

// WriteGradientPNG shades each cell of g continuously by height / maxHeight.
func WriteGradientPNG(w io.Writer, g *world.Grid, maxHeight float64) error {
	grad, err := terrainGradient()
	if err != nil {
		return fmt.Errorf("build gradient: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Size; y++ {
			t := g.At(x, y) / maxHeight
			img.Set(x, y, grad.At(min(max(t, 0), 1)))
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SaveGradientPNG writes the elevation gradient of g to path.
func SaveGradientPNG(path string, g *world.Grid, maxHeight float64) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteGradientPNG(w, g, maxHeight)
	})
}

func saveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
