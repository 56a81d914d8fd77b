package world

import (
	"errors"
	"fmt"
	"math"
)

// Defaults used by DefaultConfig and the terrain command.
const (
	DefaultSize      = 257
	DefaultRoughness = 0.7
	DefaultSeaLevel  = 127
	DefaultMaxHeight = 255
)

var (
	// ErrInvalidSize is returned for grid sizes that are not 2^k+1 with k >= 1.
	ErrInvalidSize = errors.New("world: grid size must be 2^k+1")
	// ErrInvalidRoughness is returned for roughness outside [0, 1].
	ErrInvalidRoughness = errors.New("world: roughness must be in [0, 1]")
	// ErrInvalidMaxHeight is returned for a non-positive or non-finite max height.
	ErrInvalidMaxHeight = errors.New("world: max height must be positive and finite")
	// ErrInvalidSeaLevel is returned for a sea level outside [0, max height].
	ErrInvalidSeaLevel = errors.New("world: sea level must be in [0, max height]")
)

// Config holds the four terrain parameters.
type Config struct {
	Size      int     // grid side, 2^k+1
	Roughness float64 // displacement damping
	SeaLevel  float64 // ocean/land threshold
	MaxHeight float64 // normalised heights span [0, MaxHeight]
}

// DefaultConfig returns a 257x257 config with sea level 127 and max height 255.
func DefaultConfig() Config {
	return Config{
		Size:      DefaultSize,
		Roughness: DefaultRoughness,
		SeaLevel:  DefaultSeaLevel,
		MaxHeight: DefaultMaxHeight,
	}
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	if !ValidSize(c.Size) {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	if math.IsNaN(c.Roughness) || c.Roughness < 0 || c.Roughness > 1 {
		return fmt.Errorf("%w: got %g", ErrInvalidRoughness, c.Roughness)
	}
	if math.IsNaN(c.MaxHeight) || math.IsInf(c.MaxHeight, 0) || c.MaxHeight <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidMaxHeight, c.MaxHeight)
	}
	if math.IsNaN(c.SeaLevel) || c.SeaLevel < 0 || c.SeaLevel > c.MaxHeight {
		return fmt.Errorf("%w: got %g", ErrInvalidSeaLevel, c.SeaLevel)
	}
	return nil
}

// Classifier returns the band classifier for this config's sea level.
func (c Config) Classifier() Classifier {
	return Classifier{SeaLevel: c.SeaLevel}
}

// ValidSize reports whether size is 2^k+1 for some k >= 1.
func ValidSize(size int) bool {
	n := size - 1
	return n >= 2 && n&(n-1) == 0
}
