package tetra

import (
	"testing"

	"github.com/chewxy/math32"
)

func nearly(a, b, eps Real) bool {
	return math32.Abs(a-b) <= eps
}

func TestPalettePeriodOne(t *testing.T) {
	for idx := 0; idx < PaletteCount; idx++ {
		for _, s := range []Real{-1.3, 0, 0.25, 0.5, 0.99, 2.5} {
			a := Palette(s, idx)
			b := Palette(s+1, idx)
			for c := 0; c < 3; c++ {
				if !nearly(a[c], b[c], 1e-4) {
					t.Fatalf("palette %d not periodic at t=%g: %v vs %v", idx, s, a, b)
				}
			}
		}
	}
}

func TestPaletteRange(t *testing.T) {
	for idx := 0; idx < PaletteCount; idx++ {
		for s := Real(-2); s <= 2; s += 0.01 {
			col := Palette(s, idx)
			for c := 0; c < 3; c++ {
				if col[c] < 0 || col[c] > 1 {
					t.Fatalf("palette %d out of range at t=%g: %v", idx, s, col)
				}
			}
		}
	}
}

func TestPaletteIndexWraps(t *testing.T) {
	for _, s := range []Real{0, 0.37, 1.5} {
		if Palette(s, 1) != Palette(s, 1+PaletteCount) {
			t.Fatalf("index should wrap mod %d", PaletteCount)
		}
		if Palette(s, 0) != Palette(s, -PaletteCount) {
			t.Fatalf("negative index should wrap mod %d", PaletteCount)
		}
	}
}

func TestNextPaletteCycles(t *testing.T) {
	s := NewFrameState(VariantEnhanced)
	seen := map[int]bool{}
	for i := 0; i < PaletteCount; i++ {
		seen[s.Palette] = true
		s.NextPalette()
	}
	if len(seen) != PaletteCount {
		t.Fatalf("expected %d distinct palettes, saw %d", PaletteCount, len(seen))
	}
	if s.Palette != 0 {
		t.Fatalf("full cycle should return to palette 0, got %d", s.Palette)
	}
}
