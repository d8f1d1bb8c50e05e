package tetra

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PaletteCount is the number of selectable palettes; indices cycle mod 4.
const PaletteCount = 4

// Phase-offset triples: rainbow, fire, electric, gold. Tuned values, no
// documented derivation.
var palettePhases = [PaletteCount]mgl32.Vec3{
	{0.0, 0.33, 0.67},
	{0.0, 0.1, 0.2},
	{0.6, 0.5, 0.8},
	{0.15, 0.1, 0.0},
}

const tau = 2 * math32.Pi

// Palette maps a scalar to an RGB hue via the periodic cosine formula
// 0.5 + 0.5*cos(2π*(t + phase)). Continuous and period-1 in t.
func Palette(t Real, idx int) mgl32.Vec3 {
	ph := palettePhases[((idx%PaletteCount)+PaletteCount)%PaletteCount]
	return mgl32.Vec3{
		0.5 + 0.5*math32.Cos(tau*(t+ph[0])),
		0.5 + 0.5*math32.Cos(tau*(t+ph[1])),
		0.5 + 0.5*math32.Cos(tau*(t+ph[2])),
	}
}
