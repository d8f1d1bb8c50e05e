package tetra

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SaveFramePNG16 writes one frame as a 16-bit PNG. The float channel data
// is already gamma-encoded by the post-processing chain, so the only loss
// is the 16-bit quantization.
func SaveFramePNG16(f *Frame, path string) error {
	img := image.NewNRGBA64(image.Rect(0, 0, f.Width, f.Height))
	const pxBytes = 8 // 4 channels * 2 bytes/channel

	for y := 0; y < f.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < f.Width; x++ {
			fi := (y*f.Width + x) * 3
			r := toU16(f.F[fi+0])
			g := toU16(f.F[fi+1])
			b := toU16(f.F[fi+2])
			a := uint16(0xFFFF)

			p := rowOff + x*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// SavePNGSequence16 renders a turntable and writes one 16-bit PNG per
// frame, zero-padded so the files sort.
func SavePNGSequence16(r *Renderer, s FrameState, prefix string, frames int, dt Real) error {
	width := 1
	if frames > 1 {
		width = int(math.Log10(float64(frames-1))) + 1
	}

	step := 1
	if frames >= 100 {
		step = frames / 100
	}

	for k := 0; k < frames; k++ {
		if k%step == 0 {
			fmt.Printf("[PNG]  %.2f%%\n", float64(k+1)*100/float64(frames))
		}
		f := r.Render(s, Real(k)*dt)
		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		if err := SaveFramePNG16(f, full); err != nil {
			return err
		}
	}
	return nil
}

func toU16(v Real) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 65535
	}
	return uint16(v*65535 + 0.5)
}
