package tetra

import (
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFramePNG16(t *testing.T) {
	r := NewRenderer(12, 8, 2, 1)
	f := r.Render(NewFrameState(VariantEnhanced), 0.5)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SaveFramePNG16(f, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bad bounds: %v", b)
	}

	// 16-bit channels survive the round trip.
	cr, _, _, ca := img.At(5, 3).RGBA()
	if ca != 0xFFFF {
		t.Fatalf("alpha not opaque: %04x", ca)
	}
	want := uint32(toU16(f.F[(3*12+5)*3]))
	if cr != want {
		t.Fatalf("red channel mismatch: got %04x want %04x", cr, want)
	}
}

func TestSavePNGSequence16(t *testing.T) {
	r := NewRenderer(8, 6, 2, 1)
	prefix := filepath.Join(t.TempDir(), "seq")
	if err := SavePNGSequence16(r, NewFrameState(VariantBasic), prefix, 3, 0.1); err != nil {
		t.Fatalf("save: %v", err)
	}
	for k := 0; k < 3; k++ {
		name := fmt.Sprintf("%s_%d.png", prefix, k)
		if _, err := os.Stat(name); err != nil {
			t.Fatalf("missing frame %d: %v", k, err)
		}
	}
}

func TestSaveTurntableGIF(t *testing.T) {
	r := NewRenderer(10, 6, 2, 1)
	path := filepath.Join(t.TempDir(), "turntable.gif")
	if err := SaveTurntableGIF(r, NewFrameState(VariantBasic), path, 3, 5, 0.2); err != nil {
		t.Fatalf("save: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	g, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(g.Image))
	}
	for _, d := range g.Delay {
		if d != 5 {
			t.Fatalf("bad delay: %d", d)
		}
	}
	if g.LoopCount != 0 {
		t.Fatalf("turntable should loop forever, LoopCount=%d", g.LoopCount)
	}
}
