package materials

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// PBR is a Cook-Torrance-flavored material implemented as a stochastic
// branch rather than a closed-form BRDF evaluation: per scatter event it
// either samples a perturbed specular reflection (probability = Fresnel
// term) or falls back to cosine-weighted diffuse. Grounded on spec.md
// §4.4's PBR description, sharing its Fresnel math with Dielectric/GGX.
type PBR struct {
	Albedo    vmath.Color
	Metallic  float64
	Roughness float64
}

func NewPBR(albedo vmath.Color, metallic, roughness float64) *PBR {
	return &PBR{Albedo: albedo, Metallic: metallic, Roughness: clampMin(roughness, 0.04)}
}

func (m *PBR) Scatter(rIn vmath.Ray, rec *core.HitRecord, rng *sampling.RNG) (core.ScatterResult, bool) {
	unitDirection := rIn.Direction.Unit()
	cosTheta := -unitDirection.Dot(rec.Normal)
	if cosTheta < 0 {
		cosTheta = 0
	}

	f0 := 0.04
	fresnel := schlickF0(cosTheta, f0)
	if m.Metallic > 0 {
		fresnel = vmath.MaxChannel(m.Albedo)*m.Metallic + fresnel*(1-m.Metallic)
	}

	if rng.Float64() < fresnel {
		reflected := vmath.Reflect(unitDirection, rec.Normal)
		direction := reflected.Add(rng.RandomInUnitSphere().Mul(m.Roughness))
		if direction.Dot(rec.Normal) <= 0 {
			return core.ScatterResult{Kind: core.Absorbed}, false
		}
		attenuation := vmath.ColorWhite
		if m.Metallic > 0 {
			attenuation = vmath.ColorWhite.Lerp(m.Albedo, m.Metallic)
		}
		scattered := vmath.NewRayAt(rec.P, direction.Unit(), rIn.Time)
		return core.ScatterResult{
			Kind:        core.Specular,
			Attenuation: attenuation,
			Scattered:   scattered,
		}, true
	}

	pdf := sampling.NewCosinePDF(rec.Normal)
	direction := pdf.Generate(rng)
	if direction.NearZero() {
		direction = rec.Normal
	}
	scattered := vmath.NewRayAt(rec.P, direction.Unit(), rIn.Time)
	pdfVal := pdf.Value(scattered.Direction)
	return core.ScatterResult{
		Kind:        core.Diffuse,
		Attenuation: m.Albedo,
		Scattered:   scattered,
		PDF:         pdfVal,
	}, true
}

func (m *PBR) ScatteringPDF(rIn vmath.Ray, rec *core.HitRecord, scattered vmath.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Unit())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

func (m *PBR) Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return vmath.ColorBlack
}
