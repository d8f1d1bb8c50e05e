package tetra

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameState holds the user-adjustable parameters. It is the only state
// that survives across frames; input events mutate it between rendering
// passes and the frame driver reads it once per frame.
type FrameState struct {
	Palette    int
	PanX, PanY Real
	Zoom       Real
	SpeedMult  Real
	Variant    Variant
}

func NewFrameState(v Variant) FrameState {
	return FrameState{Zoom: DefaultZoom, SpeedMult: 1, Variant: v}
}

func (s *FrameState) NextPalette() {
	s.Palette = (s.Palette + 1) % PaletteCount
}

func (s *FrameState) Pan(dx, dy Real) {
	s.PanX += dx
	s.PanY += dy
}

func (s *FrameState) ZoomIn() {
	s.Zoom = clamp(s.Zoom-ZoomStep, MinZoom, MaxZoom)
}

func (s *FrameState) ZoomOut() {
	s.Zoom = clamp(s.Zoom+ZoomStep, MinZoom, MaxZoom)
}

// Reset restores the camera defaults; palette and variant are untouched.
func (s *FrameState) Reset() {
	s.PanX, s.PanY = 0, 0
	s.Zoom = DefaultZoom
}

func (s *FrameState) ToggleVariant() {
	if s.Variant == VariantBasic {
		s.Variant = VariantEnhanced
	} else {
		s.Variant = VariantBasic
	}
}

// Camera is the per-frame pose, derived from FrameState and time. It has no
// identity beyond the frame it was built for.
type Camera struct {
	Pos   mgl32.Vec3
	Rot   mgl32.Mat3
	Focal Real
}

// DeriveCamera is pure: the same state and time always yield the same pose.
func DeriveCamera(s FrameState, t Real) Camera {
	if s.Variant == VariantBasic {
		// Orbit the fixed origin-facing camera around Y.
		rot := mgl32.Rotate3DY(t * 0.3 * s.SpeedMult)
		return Camera{
			Pos:   rot.Mul3x1(mgl32.Vec3{0, 0, DefaultZoom}),
			Rot:   rot,
			Focal: BasicFocal,
		}
	}

	// Time-driven Y rotation with a small sinusoidal X tilt.
	rot := mgl32.Rotate3DY(t * 0.25 * s.SpeedMult).Mul3(
		mgl32.Rotate3DX(math32.Sin(t*0.1) * 0.15))

	// Low-frequency organic drift plus the user's pan/zoom offsets.
	pos := mgl32.Vec3{
		math32.Sin(t*0.12)*0.4 + s.PanX,
		math32.Sin(t*0.18)*0.3 + math32.Cos(t*0.15)*0.2 + s.PanY,
		s.Zoom + math32.Cos(t*0.08)*0.6,
	}
	return Camera{Pos: pos, Rot: rot, Focal: EnhancedFocal}
}

// Ray builds the world-space unit direction for screen coordinates
// (u, v) = ((x,y) - 0.5*res) / res.y.
func (c Camera) Ray(variant Variant, u, v Real) mgl32.Vec3 {
	var local mgl32.Vec3
	if variant == VariantBasic {
		// look-at-origin basis: right = (-1,0,0), up = (0,1,0), fwd = (0,0,-1)
		local = mgl32.Vec3{-u, v, -c.Focal}
	} else {
		local = mgl32.Vec3{u, v, -c.Focal}
	}
	return c.Rot.Mul3x1(local.Normalize())
}
