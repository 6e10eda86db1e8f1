package materials

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// GGX is a Disney/principled-style BRDF using the Trowbridge-Reitz
// microfacet model, grounded on original_source's ggx_material.h: a GGX
// visible-normal-distribution importance sample, evaluated with a
// Cook-Torrance D/G/F stack and blended against a Fresnel-weighted diffuse
// term. Treated as specular (PDF folded into the returned attenuation)
// since the VNDF sample has no simple closed-form MIS weight here.
type GGX struct {
	Albedo    vmath.Color
	Roughness float64
	Metallic  float64
}

func NewGGX(albedo vmath.Color, roughness, metallic float64) *GGX {
	return &GGX{Albedo: albedo, Roughness: clampMin(roughness, 0.04), Metallic: metallic}
}

func (m *GGX) Scatter(rIn vmath.Ray, rec *core.HitRecord, rng *sampling.RNG) (core.ScatterResult, bool) {
	v := rIn.Direction.Negate().Unit()
	n := rec.Normal
	if v.Dot(n) < 0 {
		n = n.Negate()
	}

	h := sampleGGXVNDF(v, n, m.Roughness, rng)
	l := vmath.Reflect(v.Negate(), h)

	if l.Dot(n) <= 0 {
		if m.Roughness > 0.5 {
			l = n.Add(rng.RandomUnitVector())
			if l.NearZero() {
				l = n
			}
			l = l.Unit()
		} else {
			return core.ScatterResult{Kind: core.Absorbed}, false
		}
	}

	nDotV := math.Max(0.001, n.Dot(v))
	nDotL := math.Max(0.001, n.Dot(l))
	nDotH := math.Max(0.001, n.Dot(h))
	vDotH := math.Max(0.001, v.Dot(h))

	f0 := vmath.New(0.04, 0.04, 0.04).Mul(1 - m.Metallic).Add(m.Albedo.Mul(m.Metallic))
	f := fresnelSchlickColor(vDotH, f0)

	d := distributionGGX(nDotH, m.Roughness)
	g := geometrySmith(nDotV, nDotL, m.Roughness)

	specular := f.Mul(d * g / (4.0*nDotV*nDotL + 0.0001))

	kD := vmath.One.Sub(f).Mul(1 - m.Metallic)
	diffuse := kD.MulVec(m.Albedo).Mul(1.0 / math.Pi)

	attenuation := diffuse.Add(specular).Mul(nDotL)
	attenuation = vmath.New(
		math.Min(attenuation.X, 10.0),
		math.Min(attenuation.Y, 10.0),
		math.Min(attenuation.Z, 10.0),
	)

	scattered := vmath.NewRayAt(rec.P, l, rIn.Time)
	return core.ScatterResult{
		Kind:        core.Specular,
		Attenuation: attenuation,
		Scattered:   scattered,
	}, true
}

func (m *GGX) ScatteringPDF(rIn vmath.Ray, rec *core.HitRecord, scattered vmath.Ray) float64 {
	return 0
}

func (m *GGX) Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return vmath.ColorBlack
}

func distributionGGX(nDotH, roughness float64) float64 {
	a := roughness * roughness
	a2 := a * a
	nDotH2 := nDotH * nDotH

	denom := nDotH2*(a2-1.0) + 1.0
	denom = math.Pi * denom * denom
	return a2 / denom
}

func geometrySchlickGGX(nDotX, roughness float64) float64 {
	r := roughness + 1.0
	k := (r * r) / 8.0
	return nDotX / (nDotX*(1.0-k) + k)
}

func geometrySmith(nDotV, nDotL, roughness float64) float64 {
	return geometrySchlickGGX(nDotV, roughness) * geometrySchlickGGX(nDotL, roughness)
}

func fresnelSchlickColor(cosTheta float64, f0 vmath.Color) vmath.Color {
	t := math.Pow(1.0-cosTheta, 5.0)
	return f0.Add(vmath.One.Sub(f0).Mul(t))
}

// sampleGGXVNDF importance-samples a microfacet normal around n using the
// visible-normal distribution, following ggx_material.h's local-space
// construction via an orthonormal basis.
func sampleGGXVNDF(v, n vmath.Vec3, roughness float64, rng *sampling.RNG) vmath.Vec3 {
	uvw := sampling.NewONB(n)

	r1 := rng.Float64()
	r2 := rng.Float64()

	a := roughness * roughness
	phi := 2.0 * math.Pi * r1
	cosTheta := math.Sqrt((1.0 - r2) / (1.0 + (a*a-1.0)*r2))
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	hLocal := vmath.New(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return uvw.Local(hLocal).Unit()
}
