package tetra

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Normal estimates the surface normal with a 4-tap tetrahedral central
// difference (fewer evaluator calls than the 6-tap scheme).
func Normal(v Variant, p mgl32.Vec3) mgl32.Vec3 {
	const h = NormalH
	k0 := mgl32.Vec3{1, -1, -1}
	k1 := mgl32.Vec3{-1, -1, 1}
	k2 := mgl32.Vec3{-1, 1, -1}
	k3 := mgl32.Vec3{1, 1, 1}

	n := k0.Mul(mapDist(v, p.Add(k0.Mul(h))))
	n = n.Add(k1.Mul(mapDist(v, p.Add(k1.Mul(h)))))
	n = n.Add(k2.Mul(mapDist(v, p.Add(k2.Mul(h)))))
	n = n.Add(k3.Mul(mapDist(v, p.Add(k3.Mul(h)))))
	return n.Normalize()
}

// ambientOcclusion samples the SDF along the normal at growing offsets and
// accumulates how far each sample falls short of empty space.
func ambientOcclusion(v Variant, p, n mgl32.Vec3) Real {
	decay := Real(AODecayEnhanced)
	if v == VariantBasic {
		decay = AODecayBasic
	}
	occ := Real(0)
	sca := Real(1)
	for i := 0; i < AOSamples; i++ {
		h := 0.01 + 0.12*Real(i)/4
		d := mapDist(v, p.Add(n.Mul(h)))
		occ += (h - d) * sca
		sca *= decay
	}
	return clamp01(1 - 3*occ)
}

// Sky is the procedural background: an elevation gradient, three octaves of
// hashed-lattice stars and a sinusoidal nebula term.
func Sky(rd mgl32.Vec3, time Real) mgl32.Vec3 {
	grad := smoothstep(-0.5, 0.5, rd[1])
	sky := mix3(mgl32.Vec3{0.02, 0.01, 0.05}, mgl32.Vec3{0.1, 0.05, 0.2}, grad)

	coord := rd.Mul(200)
	star := Real(0)
	for i := 0; i < 3; i++ {
		fl := floor3(coord)
		fr := fract3(coord)
		h := hash3(fl)
		size := 0.02 * h
		star += smoothstep(size, 0, fr.Sub(mgl32.Vec3{0.5, 0.5, 0.5}).Len()) * h
		coord = coord.Mul(1.7)
	}
	sky = sky.Add(mgl32.Vec3{1, 0.9, 0.8}.Mul(star * 0.5))

	nebula := math32.Sin(rd[0]*3+time*0.1) * math32.Cos(rd[1]*4) * math32.Sin(rd[2]*5)
	nebula = maxr(nebula, 0)
	nebula = nebula * nebula * nebula
	return sky.Add(mgl32.Vec3{0.5, 0.2, 0.8}.Mul(nebula * 0.3))
}

// enhancedColor derives the surface hue from the orbit traps, with a second
// palette mixed in by a normal-driven interference pattern.
func enhancedColor(trap, normal mgl32.Vec3, time Real, paletteIdx int) mgl32.Vec3 {
	hue := trap[0]*0.4 + trap[1]*0.3 + time*0.15
	col1 := Palette(hue, paletteIdx)

	hue2 := trap[2]*0.1 + time*0.05
	col2 := Palette(hue2, paletteIdx+1)

	mf := math32.Abs(math32.Sin(normal[0]*10 + normal[1]*7 + time*0.5))
	return mix3(col1, col2, mf*0.3)
}

// volumetricGlow marches the primary ray accumulating palette-tinted glow
// near the surface, up to the hit distance (or the march limit on a miss).
func volumetricGlow(v Variant, ro, rd mgl32.Vec3, maxT, time Real, paletteIdx int) mgl32.Vec3 {
	var glow mgl32.Vec3
	t := Real(0)
	for i := 0; i < GlowSteps; i++ {
		p := ro.Add(rd.Mul(t))
		d, trap := Distance(v, p)

		factor := 0.015 / (0.01 + d*d)
		col := Palette(trap[0]*0.5+time*0.2, paletteIdx)
		glow = glow.Add(col.Mul(factor * 0.002))

		t += maxr(0.05, d*0.5)
		if t > maxT || t > EnhancedMaxDist {
			break
		}
	}
	return glow
}

// shadeReflection traces the mirror ray for a single bounce. Reflected hits
// get a cheap diffuse-only treatment; misses sample the sky.
func shadeReflection(v Variant, pos, rd, normal mgl32.Vec3, time Real, paletteIdx int) mgl32.Vec3 {
	reflDir := reflect(rd, normal)
	ro := pos.Add(normal.Mul(bumpShift))

	hit := March(v, ro, reflDir)
	if !hit.Hit {
		return Sky(reflDir, time)
	}

	n := Normal(v, hit.Pos)
	col := enhancedColor(hit.Trap, n, time, paletteIdx)
	diff := maxr(n.Dot(enhancedLights[0].Dir), 0)
	return col.Mul(0.3 + diff*0.7)
}

// Shade computes the final (pre-post-processing) color for a primary ray.
// The whole pipeline is a pure function of its arguments.
func Shade(v Variant, ro, rd mgl32.Vec3, time Real, paletteIdx int) mgl32.Vec3 {
	if v == VariantBasic {
		return shadeBasic(ro, rd, time)
	}
	return shadeEnhanced(ro, rd, time, paletteIdx)
}

// shadeBasic: one light, step-depth rainbow coloring, fog to black.
func shadeBasic(ro, rd mgl32.Vec3, time Real) mgl32.Vec3 {
	hit := March(VariantBasic, ro, rd)
	if !hit.Hit {
		return mgl32.Vec3{}
	}

	normal := Normal(VariantBasic, hit.Pos)
	diff := maxr(normal.Dot(basicLight.Dir), 0)

	viewDir := rd.Mul(-1)
	halfDir := basicLight.Dir.Add(viewDir).Normalize()
	spec := math32.Pow(maxr(normal.Dot(halfDir), 0), basicLight.SpecPow)

	ao := ambientOcclusion(VariantBasic, hit.Pos, normal)

	stepRatio := Real(hit.Steps) / BasicMaxSteps
	base := mgl32.Vec3{
		0.5 + 0.5*math32.Sin(stepRatio*6.28+time),
		0.5 + 0.5*math32.Sin(stepRatio*6.28+time+2.09),
		0.5 + 0.5*math32.Sin(stepRatio*6.28+time+4.18),
	}

	ambient := mgl32.Vec3{0.1, 0.1, 0.1}.Mul(ao)
	diffuse := base.Mul(diff)
	specular := mgl32.Vec3{1, 1, 1}.Mul(spec * basicLight.Spec)

	col := ambient.Add(diffuse.Add(specular).Mul(ao))

	fog := math32.Exp(-hit.T * BasicFog)
	return col.Mul(fog)
}

// shadeEnhanced: multi-light with soft shadows, Fresnel-weighted single
// reflection bounce, fake subsurface, fog to sky, volumetric glow.
func shadeEnhanced(ro, rd mgl32.Vec3, time Real, paletteIdx int) mgl32.Vec3 {
	col := Sky(rd, time)

	hit := March(VariantEnhanced, ro, rd)

	glowT := Real(EnhancedMaxDist)
	if hit.Hit {
		glowT = hit.T
	}
	glow := volumetricGlow(VariantEnhanced, ro, rd, glowT, time, paletteIdx)

	if hit.Hit {
		p := hit.Pos
		normal := Normal(VariantEnhanced, p)
		ao := ambientOcclusion(VariantEnhanced, p, normal)
		viewDir := rd.Mul(-1)

		var diffuse, specular mgl32.Vec3
		for i := range enhancedLights {
			l := &enhancedLights[i]

			shadow := l.Gate
			if l.Shadowed {
				shadow = softShadow(VariantEnhanced, p, l.Dir, ShadowMinT, ShadowMaxT, ShadowSharpness)
			}

			diff := maxr(normal.Dot(l.Dir), 0) * shadow
			diffuse = diffuse.Add(l.Color.Mul(diff * l.Diffuse))

			if l.SpecPow > 0 {
				halfDir := l.Dir.Add(viewDir).Normalize()
				spec := math32.Pow(maxr(normal.Dot(halfDir), 0), l.SpecPow) * shadow
				specular = specular.Add(l.Color.Mul(spec * l.Spec))
			}
		}
		diffuse = diffuse.Add(mgl32.Vec3{0.05, 0.05, 0.1}) // ambient floor

		base := enhancedColor(hit.Trap, normal, time, paletteIdx)
		lit := mulv(base, diffuse).Mul(ao)

		fresnel := math32.Pow(1-maxr(viewDir.Dot(normal), 0), 3)
		reflection := shadeReflection(VariantEnhanced, p, rd, normal, time, paletteIdx)

		col = mix3(lit, reflection, fresnel*Metallic*0.7)
		col = col.Add(specular.Mul(1 + Metallic*2))

		// back-lit subsurface fake
		sss := math32.Pow(maxr(enhancedLights[0].Dir.Mul(-1).Dot(normal), 0), 3)
		col = col.Add(base.Mul(sss * 0.3))

		fog := math32.Exp(-hit.T * EnhancedFog)
		col = mix3(Sky(rd, time), col, fog)
	}

	return col.Add(glow.Mul(2))
}
