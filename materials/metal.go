package materials

import (
	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Metal reflects around the normal, perturbed by Fuzz*randomInUnitSphere.
// Grounded on the teacher's MetalMaterial() factory (Metallic/Roughness
// fields folded into a dedicated variant per spec.md §4.4) and on the
// classic reflect+fuzz formula.
type Metal struct {
	Albedo vmath.Color
	Fuzz   float64
}

func NewMetal(albedo vmath.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rIn vmath.Ray, rec *core.HitRecord, rng *sampling.RNG) (core.ScatterResult, bool) {
	reflected := vmath.Reflect(rIn.Direction.Unit(), rec.Normal)
	direction := reflected.Add(rng.RandomInUnitSphere().Mul(m.Fuzz))
	if direction.Dot(rec.Normal) <= 0 {
		return core.ScatterResult{Kind: core.Absorbed}, false
	}
	scattered := vmath.NewRayAt(rec.P, direction, rIn.Time)
	return core.ScatterResult{
		Kind:        core.Specular,
		Attenuation: m.Albedo,
		Scattered:   scattered,
	}, true
}

// ScatteringPDF: metal is treated as specular for MIS purposes. Non-zero
// fuzz is a glossy approximation with no analytic PDF (spec.md §4.4), so
// this is never consulted by the integrator's diffuse branch.
func (m *Metal) ScatteringPDF(rIn vmath.Ray, rec *core.HitRecord, scattered vmath.Ray) float64 {
	return 0
}

func (m *Metal) Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return vmath.ColorBlack
}
