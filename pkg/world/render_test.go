package world

import (
	"image/color"
	"testing"
)

func TestRenderEndToEnd(t *testing.T) {
	g, err := Generate(5, 0.7, NewSource(42))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	bands := DefaultClassifier().Render(g)

	palette := make(map[color.RGBA]bool)
	for _, b := range Bands {
		palette[b.Color()] = true
	}

	colors := bands.Colors()
	if len(colors) != 5 {
		t.Fatalf("Colors() has %d columns, want 5", len(colors))
	}
	for x, col := range colors {
		if len(col) != 5 {
			t.Fatalf("Colors()[%d] has %d cells, want 5", x, len(col))
		}
		for y, c := range col {
			if !palette[c] {
				t.Errorf("colour at (%d,%d) = %v, not in palette", x, y, c)
			}
			if want := bands.At(x, y).Color(); c != want {
				t.Errorf("colour at (%d,%d) = %v, want %v", x, y, c, want)
			}
			if bands.At(x, y) > Peak {
				t.Errorf("band at (%d,%d) = %d, not a defined band", x, y, bands.At(x, y))
			}
		}
	}
}

func TestRenderMatchesClassify(t *testing.T) {
	g, err := Generate(33, 0.7, NewSource(7))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	c := DefaultClassifier()
	bands := c.Render(g)

	total := 0
	for _, n := range bands.Counts() {
		total += n
	}
	if total != 33*33 {
		t.Errorf("Counts() total = %d, want %d", total, 33*33)
	}

	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Size; y++ {
			if got, want := bands.At(x, y), c.Classify(g.At(x, y)); got != want {
				t.Fatalf("band at (%d,%d) = %s, want %s", x, y, got, want)
			}
		}
	}
}

func TestRenderLeavesGridUntouched(t *testing.T) {
	g, err := Generate(9, 0.7, NewSource(3))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	before := append([]float64(nil), g.Values()...)
	DefaultClassifier().Render(g).Colors()
	for i, v := range g.Values() {
		if v != before[i] {
			t.Fatalf("cell %d changed from %g to %g during rendering", i, before[i], v)
		}
	}
}

func TestNearest(t *testing.T) {
	g := NewGrid(5)
	g.Set(4, 4, 200) // peak
	g.Set(0, 3, 140) // lowland
	g.Set(3, 0, 140) // lowland
	bands := DefaultClassifier().Render(g)

	tests := []struct {
		from   Point
		band   Band
		want   Point
		wantOK bool
	}{
		{Point{4, 4}, Peak, Point{4, 4}, true},
		{Point{0, 0}, Peak, Point{4, 4}, true},
		{Point{0, 4}, Lowland, Point{0, 3}, true},
		{Point{4, 0}, Lowland, Point{3, 0}, true},
		{Point{2, 2}, Highland, Point{}, false},
		{Point{4, 4}, Ocean, Point{3, 4}, true},
		// Off-grid origins have no answer.
		{Point{-1, 0}, Ocean, Point{}, false},
		{Point{0, 5}, Peak, Point{}, false},
	}

	for _, tt := range tests {
		got, ok := bands.Nearest(tt.from, tt.band)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Nearest(%v, %s) = %v, %v, want %v, %v", tt.from, tt.band, got, ok, tt.want, tt.wantOK)
		}
	}
}
