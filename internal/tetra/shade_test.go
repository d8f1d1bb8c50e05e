package tetra

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func surfaceHit(t *testing.T, v Variant) HitResult {
	t.Helper()
	hit := March(v, mgl32.Vec3{0, 0, 4.5}, mgl32.Vec3{0, 0, -1})
	if !hit.Hit {
		t.Fatalf("%s: setup ray did not hit", v)
	}
	return hit
}

func TestNormalUnitLength(t *testing.T) {
	for _, v := range []Variant{VariantBasic, VariantEnhanced} {
		hit := surfaceHit(t, v)
		n := Normal(v, hit.Pos)
		if !nearly(n.Len(), 1, 1e-3) {
			t.Fatalf("%s: normal not unit length: %g", v, n.Len())
		}
	}
}

func TestNormalFacesOutward(t *testing.T) {
	// A ray descending +Z onto the front of the shape must see a normal
	// that opposes it.
	for _, v := range []Variant{VariantBasic, VariantEnhanced} {
		hit := surfaceHit(t, v)
		n := Normal(v, hit.Pos)
		if n.Dot(mgl32.Vec3{0, 0, -1}) >= 0 {
			t.Fatalf("%s: normal points away from the viewer: %v", v, n)
		}
	}
}

func TestAmbientOcclusionRange(t *testing.T) {
	for _, v := range []Variant{VariantBasic, VariantEnhanced} {
		hit := surfaceHit(t, v)
		n := Normal(v, hit.Pos)
		ao := ambientOcclusion(v, hit.Pos, n)
		if ao < 0 || ao > 1 {
			t.Fatalf("%s: AO out of range: %g", v, ao)
		}
	}
}

func TestSkyFiniteAndNonNegative(t *testing.T) {
	dirs := []mgl32.Vec3{
		{0, 1, 0}, {0, -1, 0}, {1, 0, 0},
		mgl32.Vec3{0.3, 0.5, -0.8}.Normalize(),
	}
	for _, rd := range dirs {
		for _, tm := range []Real{0, 10, 500} {
			sky := Sky(rd, tm)
			for c := 0; c < 3; c++ {
				if !isFinite(sky[c]) || sky[c] < 0 {
					t.Fatalf("bad sky sample for %v at t=%g: %v", rd, tm, sky)
				}
			}
		}
	}
}

func TestSkyGradientBrightensUp(t *testing.T) {
	up := Sky(mgl32.Vec3{0.123, 1, 0.456}.Normalize(), 0)
	down := Sky(mgl32.Vec3{0.123, -1, 0.456}.Normalize(), 0)
	if up[2] <= down[2] {
		t.Fatalf("zenith should carry the brighter gradient: %v vs %v", up, down)
	}
}

func TestEnhancedColorRange(t *testing.T) {
	traps := []mgl32.Vec3{{0, 0, 0}, {0.5, 1.2, 0.8}, {3, 0.1, 2}}
	n := mgl32.Vec3{0, 0, 1}
	for _, trap := range traps {
		for idx := 0; idx < PaletteCount; idx++ {
			col := enhancedColor(trap, n, 1.5, idx)
			for c := 0; c < 3; c++ {
				if col[c] < 0 || col[c] > 1 {
					t.Fatalf("surface base color out of range: %v", col)
				}
			}
		}
	}
}

func TestShadeDeterministicAndFinite(t *testing.T) {
	ro := mgl32.Vec3{0, 0, 4.5}
	dirs := []mgl32.Vec3{
		{0, 0, -1},
		mgl32.Vec3{0.2, 0.1, -1}.Normalize(),
		{0, 0, 1}, // pure background
	}
	for _, v := range []Variant{VariantBasic, VariantEnhanced} {
		for _, rd := range dirs {
			a := Shade(v, ro, rd, 1.0, 0)
			b := Shade(v, ro, rd, 1.0, 0)
			if a != b {
				t.Fatalf("%s: shading not deterministic for %v", v, rd)
			}
			for c := 0; c < 3; c++ {
				if !isFinite(a[c]) || a[c] < 0 {
					t.Fatalf("%s: bad color component for %v: %v", v, rd, a)
				}
			}
		}
	}
}

func TestBasicMissIsBlack(t *testing.T) {
	col := Shade(VariantBasic, mgl32.Vec3{0, 0, 4.5}, mgl32.Vec3{0, 0, 1}, 2.0, 0)
	if (col != mgl32.Vec3{}) {
		t.Fatalf("basic background must be black, got %v", col)
	}
}
