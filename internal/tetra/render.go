package tetra

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the output of one rendering pass: gamma-encoded RGBA bytes for
// presentation plus the same pixels as [0,1] floats for lossless export.
type Frame struct {
	Width, Height int
	Pix           []byte // RGBA, alpha always 0xFF
	F             []Real // flat RGB floats, len = Width*Height*3
}

// Renderer owns the reusable frame buffers and the pass parameters. Render
// itself is a pure function of (state, time); the buffers are just reused
// allocations.
type Renderer struct {
	Width, Height int
	Workers       int
	SampleGrid    int // 1 = one ray per pixel, 2 = 2x2 supersampling

	frame Frame
}

func NewRenderer(width, height, workers, sampleGrid int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if sampleGrid != 2 {
		sampleGrid = 1
	}
	r := &Renderer{
		Width:      width,
		Height:     height,
		Workers:    workers,
		SampleGrid: sampleGrid,
		frame: Frame{
			Width:  width,
			Height: height,
			Pix:    make([]byte, width*height*4),
			F:      make([]Real, width*height*3),
		},
	}
	DebugLog("Renderer %dx%d, workers=%d, sampleGrid=%d", width, height, workers, sampleGrid)
	return r
}

// Render runs one full pass: every pixel is an independent pure function of
// (state, time), so scanlines are simply interleaved across workers and no
// two goroutines ever write the same pixel. The returned Frame is owned by
// the Renderer and valid until the next Render call.
func (r *Renderer) Render(s FrameState, t Real) *Frame {
	cam := DeriveCamera(s, t)

	var wg sync.WaitGroup
	wg.Add(r.Workers)
	for w := 0; w < r.Workers; w++ {
		go func(wid int) {
			defer wg.Done()
			for y := wid; y < r.Height; y += r.Workers {
				r.renderRow(cam, s, t, y)
			}
		}(w)
	}
	wg.Wait()

	return &r.frame
}

func (r *Renderer) renderRow(cam Camera, s FrameState, t Real, y int) {
	resX := Real(r.Width)
	resY := Real(r.Height)
	// image rows run top-down, camera space runs bottom-up
	fy := Real(r.Height - 1 - y)

	for x := 0; x < r.Width; x++ {
		fx := Real(x)
		var col mgl32.Vec3

		if r.SampleGrid == 2 {
			for ax := 0; ax < 2; ax++ {
				for ay := 0; ay < 2; ay++ {
					u := (fx + Real(ax)*0.5 - 0.5*resX) / resY
					v := (fy + Real(ay)*0.5 - 0.5*resY) / resY
					col = col.Add(Shade(s.Variant, cam.Pos, cam.Ray(s.Variant, u, v), t, s.Palette))
				}
			}
			col = col.Mul(0.25)
		} else {
			u := (fx - 0.5*resX) / resY
			v := (fy - 0.5*resY) / resY
			col = Shade(s.Variant, cam.Pos, cam.Ray(s.Variant, u, v), t, s.Palette)
		}

		col = postProcess(col, s.Variant, fx, Real(y), resX, resY)

		fi := (y*r.Width + x) * 3
		r.frame.F[fi+0] = col[0]
		r.frame.F[fi+1] = col[1]
		r.frame.F[fi+2] = col[2]

		pi := (y*r.Width + x) * 4
		r.frame.Pix[pi+0] = toByte(col[0])
		r.frame.Pix[pi+1] = toByte(col[1])
		r.frame.Pix[pi+2] = toByte(col[2])
		r.frame.Pix[pi+3] = 0xFF
	}
}

// Rec.709 luma for the bloom threshold, Rec.601 for the saturation boost.
var (
	lumaBloom = mgl32.Vec3{0.2126, 0.7152, 0.0722}
	lumaSat   = mgl32.Vec3{0.299, 0.587, 0.114}
)

// postProcess applies the fixed per-pixel chain. The basic variant only
// gamma-encodes; the enhanced one adds vignette, soft bloom, a slight
// contrast lift and a saturation boost first.
func postProcess(col mgl32.Vec3, v Variant, x, y, w, h Real) mgl32.Vec3 {
	if v == VariantEnhanced {
		vx := x/w - 0.5
		vy := y/h - 0.5
		vignette := 1 - (vx*vx+vy*vy)*0.3
		col = col.Mul(vignette)

		if brightness := col.Dot(lumaBloom); brightness > 0.8 {
			col = col.Add(col.Sub(mgl32.Vec3{0.8, 0.8, 0.8}).Mul(0.3))
		}

		col = powv(col, 0.9)

		luma := col.Dot(lumaSat)
		col = mix3(mgl32.Vec3{luma, luma, luma}, col, 1.1)
	}
	return powv(col, 1/Gamma)
}

func toByte(x Real) byte {
	return byte(clamp01(x)*255 + 0.5)
}
