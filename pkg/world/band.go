package world

import (
	"image/color"
	"math"
)

// Band is a terrain classification by height.
type Band uint8

const (
	Ocean Band = iota
	Lowland
	Highland
	Peak
)

// Band thresholds relative to sea level.
const (
	LowlandRise  = 20 // top of lowland above sea level
	HighlandRise = 50 // top of highland above sea level
)

// bandInfo is ordered by ascending height.
var bandInfo = [...]struct {
	name  string
	color color.RGBA
	glyph rune
}{
	Ocean:    {"ocean", color.RGBA{0, 0, 255, 255}, '~'},
	Lowland:  {"lowland", color.RGBA{0, 255, 0, 255}, '.'},
	Highland: {"highland", color.RGBA{139, 69, 19, 255}, '^'},
	Peak:     {"peak", color.RGBA{255, 255, 255, 255}, ' '},
}

// Bands lists every band in ascending height order.
var Bands = []Band{Ocean, Lowland, Highland, Peak}

func (b Band) valid() bool { return int(b) < len(bandInfo) }

func (b Band) String() string {
	if !b.valid() {
		return "unknown"
	}
	return bandInfo[b].name
}

// Color returns the opaque display colour for b. Unknown bands are black.
func (b Band) Color() color.RGBA {
	if !b.valid() {
		return color.RGBA{0, 0, 0, 255}
	}
	return bandInfo[b].color
}

// Glyph returns the text preview character for b. Peaks and unknown bands
// render as a space.
func (b Band) Glyph() rune {
	if !b.valid() {
		return ' '
	}
	return bandInfo[b].glyph
}

// Classifier maps heights to bands around a sea level.
type Classifier struct {
	SeaLevel float64
}

// DefaultClassifier uses sea level 127 on a 0..255 height range.
func DefaultClassifier() Classifier {
	return Classifier{SeaLevel: DefaultSeaLevel}
}

// Classify returns the band for h. It is total over float64: anything at or
// below sea level (and NaN) is Ocean, anything above the highland top is Peak.
func (c Classifier) Classify(h float64) Band {
	switch {
	case math.IsNaN(h) || h <= c.SeaLevel:
		return Ocean
	case h <= c.SeaLevel+LowlandRise:
		return Lowland
	case h <= c.SeaLevel+HighlandRise:
		return Highland
	default:
		return Peak
	}
}
