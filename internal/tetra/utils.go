package tetra

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Real is the scalar type used throughout the renderer. Shader-grade
// float32 precision is plenty for a screen-resolution march.
type Real = float32

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x Real) Real { return clamp(x, 0, 1) }

func fract(x Real) Real { return x - math32.Floor(x) }

func mix(a, b, t Real) Real { return a + (b-a)*t }

func mix3(a, b mgl32.Vec3, t Real) mgl32.Vec3 {
	return mgl32.Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// mulv multiplies two vectors component-wise.
func mulv(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// powv raises each non-negative component to e; negative components clamp
// to zero (saturation boost can slightly undershoot).
func powv(v mgl32.Vec3, e Real) mgl32.Vec3 {
	p := func(x Real) Real {
		if x <= 0 {
			return 0
		}
		return math32.Pow(x, e)
	}
	return mgl32.Vec3{p(v[0]), p(v[1]), p(v[2])}
}

func floor3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Floor(v[0]), math32.Floor(v[1]), math32.Floor(v[2])}
}

func fract3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{fract(v[0]), fract(v[1]), fract(v[2])}
}

// minv keeps the component-wise minimum of two vectors.
func minv(a, b mgl32.Vec3) mgl32.Vec3 {
	if b[0] < a[0] {
		a[0] = b[0]
	}
	if b[1] < a[1] {
		a[1] = b[1]
	}
	if b[2] < a[2] {
		a[2] = b[2]
	}
	return a
}

func smoothstep(lo, hi, x Real) Real {
	t := clamp01((x - lo) / (hi - lo))
	return t * t * (3 - 2*t)
}

// hash3 is the classic lattice hash used by the starfield.
func hash3(p mgl32.Vec3) Real {
	return fract(math32.Sin(p.Dot(mgl32.Vec3{12.9898, 78.233, 45.164})) * 43758.5453)
}

// reflect mirrors d across the plane with unit normal n.
func reflect(d, n mgl32.Vec3) mgl32.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

func maxr(a, b Real) Real {
	if a > b {
		return a
	}
	return b
}

func isFinite(x Real) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }
