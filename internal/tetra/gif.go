package tetra

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveTurntableGIF renders frames at a fixed time step and writes them as
// an animated GIF. delay is in 100ths of a second (e.g. 5 => 20 fps).
func SaveTurntableGIF(r *Renderer, s FrameState, path string, frames, delay int, dt Real) error {
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}

	step := 1
	if frames >= 100 {
		step = frames / 100
	}

	bounds := image.Rect(0, 0, r.Width, r.Height)
	for k := 0; k < frames; k++ {
		if k%step == 0 {
			fmt.Printf("[GIF] %.2f%%\n", float64(k)*100/float64(frames))
		}

		f := r.Render(s, Real(k)*dt)
		rgba := &image.RGBA{Pix: f.Pix, Stride: r.Width * 4, Rect: bounds}

		// Quantize to paletted for GIF.
		pimg := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, bounds, rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gif.EncodeAll(file, out)
}
