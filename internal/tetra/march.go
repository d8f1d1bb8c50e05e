package tetra

import (
	"github.com/go-gl/mathgl/mgl32"
)

// HitResult is the outcome of a sphere trace. On a miss, Hit is false and T
// holds the distance marched before giving up.
type HitResult struct {
	Hit   bool
	T     Real
	Pos   mgl32.Vec3
	Steps int
	Trap  mgl32.Vec3 // running minimum orbit trap along the whole path
}

func marchParams(v Variant) (maxSteps int, maxDist, eps, relax Real) {
	if v == VariantBasic {
		return BasicMaxSteps, BasicMaxDist, BasicEpsilon, BasicRelax
	}
	return EnhancedMaxSteps, EnhancedMaxDist, EnhancedEpsilon, EnhancedRelax
}

// March sphere-traces the ray (ro, rd) against the fractal. rd must be
// unit-length. The loop is bounded by maxSteps and maxDist, so it always
// terminates; the relaxation factor keeps steps sub-unity to avoid
// overshooting thin features. A ray starting inside the surface hits on the
// first sample via the epsilon test.
func March(v Variant, ro, rd mgl32.Vec3) HitResult {
	maxSteps, maxDist, eps, relax := marchParams(v)

	t := Real(0)
	trap := mgl32.Vec3{trapInit, trapInit, trapInit}

	for i := 0; i < maxSteps; i++ {
		p := ro.Add(rd.Mul(t))
		d, tr := Distance(v, p)
		trap = minv(trap, tr)

		if d < eps {
			if Debug {
				recordMarch(outcomeHit, i)
			}
			return HitResult{Hit: true, T: t, Pos: p, Steps: i, Trap: trap}
		}

		t += d * relax

		if t > maxDist {
			if Debug {
				recordMarch(outcomeMiss, i)
			}
			return HitResult{T: t, Steps: i, Trap: trap}
		}
	}

	// Steps exhausted before converging: undersampling, not an error.
	if Debug {
		recordMarch(outcomeExhausted, maxSteps)
	}
	return HitResult{T: t, Steps: maxSteps, Trap: trap}
}

// softShadow marches toward a light and tracks the penumbra estimate
// k*h/t. Any near-zero sample inside the trace bounds forces full shadow.
func softShadow(v Variant, ro, rd mgl32.Vec3, mint, maxt, k Real) Real {
	res := Real(1)
	t := mint
	for i := 0; i < ShadowSteps; i++ {
		h := mapDist(v, ro.Add(rd.Mul(t)))
		if h < EnhancedEpsilon {
			return 0
		}
		if s := k * h / t; s < res {
			res = s
		}
		t += h
		if t > maxt {
			break
		}
	}
	return clamp01(res)
}
