package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/StoreStation/terrain/pkg/world"
)

// RawBytesPerCell is the size of one cell in a RAW16 heightmap.
const RawBytesPerCell = 2

// WriteRaw16 writes g as a headerless 16-bit little-endian heightmap, the RAW
// format most terrain tools import. Cells are written row by row (y outer,
// x inner) and scaled so maxHeight maps to 65535.
func WriteRaw16(w io.Writer, g *world.Grid, maxHeight float64) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			v := math.Round(g.At(x, y) / maxHeight * math.MaxUint16)
			v = min(max(v, 0), math.MaxUint16)
			if err := binary.Write(bw, binary.LittleEndian, uint16(v)); err != nil {
				return fmt.Errorf("write raw cell (%d,%d): %w", x, y, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write raw heightmap: %w", err)
	}
	return nil
}

// SaveRaw16 writes the RAW16 heightmap of g to path.
func SaveRaw16(path string, g *world.Grid, maxHeight float64) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteRaw16(w, g, maxHeight)
	})
}
