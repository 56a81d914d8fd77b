package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/StoreStation/terrain/pkg/world"
)

// WritePreview prints one glyph per cell. Line y holds cells x = 0..size-1.
func WritePreview(w io.Writer, bands *world.BandGrid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < bands.Size; y++ {
		for x := 0; x < bands.Size; x++ {
			bw.WriteRune(bands.At(x, y).Glyph())
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}
