package tetra

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Variant selects between the two renditions of the fractal pipeline. Both
// share one code path; the flag picks the distance estimator, the marching
// budgets and which shading features run.
type Variant int

const (
	VariantBasic Variant = iota
	VariantEnhanced
)

func (v Variant) String() string {
	if v == VariantBasic {
		return "basic"
	}
	return "enhanced"
}

// Tetrahedron vertex anchors for the vertex-snap estimator.
var (
	anchorA = mgl32.Vec3{1, 1, 1}
	anchorB = mgl32.Vec3{-1, -1, 1}
	anchorC = mgl32.Vec3{1, -1, -1}
	anchorD = mgl32.Vec3{-1, 1, -1}
)

// 2^-BasicIterations, the contraction applied to the final iterate length.
const basicDEFactor = 1.0 / 4096.0

// Distance evaluates the signed-distance estimate and the orbit trap at p.
// It is pure and always runs the full iteration count, so the worst-case
// cost per call is fixed. The estimate is a lower bound on the true surface
// distance (sphere-tracing safety).
func Distance(v Variant, p mgl32.Vec3) (Real, mgl32.Vec3) {
	if v == VariantBasic {
		return distanceVertexSnap(p)
	}
	return distanceFolded(p)
}

// mapDist is Distance with the orbit trap discarded.
func mapDist(v Variant, p mgl32.Vec3) Real {
	d, _ := Distance(v, p)
	return d
}

// distanceVertexSnap contracts p toward the nearest of the four vertex
// anchors each iteration: p = scale*p - c*(scale-1).
func distanceVertexSnap(p mgl32.Vec3) (Real, mgl32.Vec3) {
	x, y, z := p[0], p[1], p[2]
	trap := mgl32.Vec3{trapInit, trapInit, trapInit}

	for n := 0; n < BasicIterations; n++ {
		cx, cy, cz := anchorA[0], anchorA[1], anchorA[2]
		dist := sqDist(x, y, z, cx, cy, cz)
		if d := sqDist(x, y, z, anchorB[0], anchorB[1], anchorB[2]); d < dist {
			cx, cy, cz, dist = anchorB[0], anchorB[1], anchorB[2], d
		}
		if d := sqDist(x, y, z, anchorC[0], anchorC[1], anchorC[2]); d < dist {
			cx, cy, cz, dist = anchorC[0], anchorC[1], anchorC[2], d
		}
		if d := sqDist(x, y, z, anchorD[0], anchorD[1], anchorD[2]); d < dist {
			cx, cy, cz, dist = anchorD[0], anchorD[1], anchorD[2], d
		}

		x = FractalScale*x - cx*(FractalScale-1)
		y = FractalScale*y - cy*(FractalScale-1)
		z = FractalScale*z - cz*(FractalScale-1)

		trap = updateTrap(trap, x, y, z)
	}

	return math32.Sqrt(x*x+y*y+z*z) * basicDEFactor, trap
}

// distanceFolded reflects across the tetrahedral symmetry planes, then
// scales and translates. dr tracks the accumulated derivative, giving the
// standard DE formula 0.5*|z|/dr.
func distanceFolded(p mgl32.Vec3) (Real, mgl32.Vec3) {
	x, y, z := p[0], p[1], p[2]
	dr := Real(1)
	trap := mgl32.Vec3{trapInit, trapInit, trapInit}

	for n := 0; n < EnhancedIterations; n++ {
		if x+y < 0 {
			x, y = -y, -x
		}
		if x+z < 0 {
			x, z = -z, -x
		}
		if y+z < 0 {
			z, y = -y, -z
		}
		// extra fold for more detail
		if x-y < 0 {
			x, y = y, x
		}

		x = x*FractalScale - (FractalScale - 1)
		y = y*FractalScale - (FractalScale - 1)
		z = z*FractalScale - (FractalScale - 1)
		dr *= FractalScale

		trap = updateTrap(trap, x, y, z)
	}

	r := math32.Sqrt(x*x + y*y + z*z)
	return 0.5 * r / dr, trap
}

// updateTrap folds the current iterate into the running minima: distance to
// origin, L1 norm and squared norm. Pure coloring signal, no geometry.
func updateTrap(trap mgl32.Vec3, x, y, z Real) mgl32.Vec3 {
	d2 := x*x + y*y + z*z
	if d := math32.Sqrt(d2); d < trap[0] {
		trap[0] = d
	}
	if l1 := math32.Abs(x) + math32.Abs(y) + math32.Abs(z); l1 < trap[1] {
		trap[1] = l1
	}
	if d2 < trap[2] {
		trap[2] = d2
	}
	return trap
}

func sqDist(x, y, z, cx, cy, cz Real) Real {
	dx, dy, dz := x-cx, y-cy, z-cz
	return dx*dx + dy*dy + dz*dz
}
