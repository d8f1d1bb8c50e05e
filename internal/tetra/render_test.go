package tetra

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRenderDeterministic(t *testing.T) {
	for _, v := range []Variant{VariantBasic, VariantEnhanced} {
		r := NewRenderer(48, 27, 4, 1)
		s := NewFrameState(v)

		first := r.Render(s, 1.25)
		snap := make([]byte, len(first.Pix))
		copy(snap, first.Pix)

		second := r.Render(s, 1.25)
		if !bytes.Equal(snap, second.Pix) {
			t.Fatalf("%s: identical state and time must yield identical frames", v)
		}
	}
}

func TestRenderDeterministicAcrossWorkerCounts(t *testing.T) {
	s := NewFrameState(VariantBasic)
	r1 := NewRenderer(32, 18, 1, 1)
	r8 := NewRenderer(32, 18, 8, 1)

	f1 := r1.Render(s, 0.5)
	f8 := r8.Render(s, 0.5)
	if !bytes.Equal(f1.Pix, f8.Pix) {
		t.Fatalf("worker count must not affect the image")
	}
}

func TestRenderAlphaOpaque(t *testing.T) {
	r := NewRenderer(16, 16, 2, 1)
	f := r.Render(NewFrameState(VariantEnhanced), 0)
	for i := 3; i < len(f.Pix); i += 4 {
		if f.Pix[i] != 0xFF {
			t.Fatalf("alpha byte %d not opaque: %d", i, f.Pix[i])
		}
	}
}

func TestRenderProducesNonBlackImage(t *testing.T) {
	// The enhanced sky alone guarantees non-zero pixels.
	r := NewRenderer(16, 9, 2, 1)
	f := r.Render(NewFrameState(VariantEnhanced), 2)
	for i := 0; i < len(f.Pix); i += 4 {
		if f.Pix[i] != 0 || f.Pix[i+1] != 0 || f.Pix[i+2] != 0 {
			return
		}
	}
	t.Fatalf("frame is entirely black")
}

func TestNewRendererNormalizesParams(t *testing.T) {
	r := NewRenderer(8, 8, -1, 7)
	if r.Workers < 1 {
		t.Fatalf("workers not defaulted: %d", r.Workers)
	}
	if r.SampleGrid != 1 {
		t.Fatalf("invalid sample grid should fall back to 1, got %d", r.SampleGrid)
	}
	r2 := NewRenderer(8, 8, 3, 2)
	if r2.SampleGrid != 2 {
		t.Fatalf("2x2 supersampling should be kept, got %d", r2.SampleGrid)
	}
}

func TestPostProcessBasicIsGammaOnly(t *testing.T) {
	col := mgl32.Vec3{0.25, 0.5, 0.75}
	got := postProcess(col, VariantBasic, 3, 4, 64, 36)
	want := powv(col, 1/Gamma)
	if got != want {
		t.Fatalf("basic post chain should be gamma only: %v vs %v", got, want)
	}
}

func TestPostProcessVignetteDarkensCorners(t *testing.T) {
	col := mgl32.Vec3{0.5, 0.5, 0.5}
	center := postProcess(col, VariantEnhanced, 32, 18, 64, 36)
	corner := postProcess(col, VariantEnhanced, 0, 0, 64, 36)
	for c := 0; c < 3; c++ {
		if corner[c] >= center[c] {
			t.Fatalf("corner should be darker than center: %v vs %v", corner, center)
		}
	}
}

func TestToByteClamps(t *testing.T) {
	if toByte(-0.5) != 0 {
		t.Fatalf("negative input should clamp to 0")
	}
	if toByte(1.5) != 255 {
		t.Fatalf("input above 1 should clamp to 255")
	}
	if toByte(0) != 0 || toByte(1) != 255 {
		t.Fatalf("endpoints wrong: %d %d", toByte(0), toByte(1))
	}
}
