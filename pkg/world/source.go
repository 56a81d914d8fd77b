package world

import (
	"errors"
	"math/rand/v2"
)

// ErrSourceExhausted is returned by a Sequence that has no values left.
var ErrSourceExhausted = errors.New("world: random source exhausted")

// Source yields uniform values in [0, 1). Generation consumes it strictly in
// order, so a deterministic Source gives a deterministic heightmap.
type Source interface {
	Float64() (float64, error)
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a PCG-backed Source seeded from seed.
func NewSource(seed uint64) Source {
	// Second PCG word derived from the seed so nearby seeds decorrelate.
	return &randSource{r: rand.New(rand.NewPCG(seed, seed*6364136223846793005+1442695040888963407))}
}

func (s *randSource) Float64() (float64, error) {
	return s.r.Float64(), nil
}

// Sequence replays a fixed list of values, then fails.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value or ErrSourceExhausted.
func (s *Sequence) Float64() (float64, error) {
	if s.next >= len(s.values) {
		return 0, ErrSourceExhausted
	}
	v := s.values[s.next]
	s.next++
	return v, nil
}

// Drawn returns how many values have been consumed.
func (s *Sequence) Drawn() int { return s.next }

// Constant is a Source that always returns the same value.
type Constant float64

func (c Constant) Float64() (float64, error) { return float64(c), nil }
