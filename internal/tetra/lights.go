package tetra

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DirLight is a fixed directional light. Dir points toward the light and is
// normalized by the constructor.
type DirLight struct {
	Dir     mgl32.Vec3
	Color   mgl32.Vec3
	Diffuse Real // weight of the Lambertian term
	SpecPow Real // Blinn-Phong exponent; 0 disables specular
	Spec    Real // weight of the specular term
	// Shadowed lights get a soft-shadow trace; the rest use Gate as a
	// constant attenuation instead.
	Shadowed bool
	Gate     Real
}

func newDirLight(dir, color mgl32.Vec3, diffuse, specPow, spec Real, shadowed bool, gate Real) DirLight {
	return DirLight{
		Dir:      dir.Normalize(),
		Color:    color,
		Diffuse:  diffuse,
		SpecPow:  specPow,
		Spec:     spec,
		Shadowed: shadowed,
		Gate:     gate,
	}
}

// Compile-time light setup; not runtime data.
var enhancedLights = [3]DirLight{
	newDirLight(mgl32.Vec3{1, 1, -1}, mgl32.Vec3{1.0, 0.95, 0.9}, 0.7, 64, 1.5, true, 1),
	newDirLight(mgl32.Vec3{-1, 0.8, 0.5}, mgl32.Vec3{0.5, 0.6, 1.0}, 0.5, 32, 0.8, true, 1),
	newDirLight(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0.8, 0.3, 0.9}, 0.3, 0, 0, false, 0.3),
}

var basicLight = newDirLight(mgl32.Vec3{0.5, 0.8, 0.3}, mgl32.Vec3{1, 1, 1}, 1, 32, 0.3, false, 1)
