package materials

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Isotropic scatters uniformly in all directions, the phase function used
// by ConstantMedium volumes. Grounded on original_source's isotropic.h.
type Isotropic struct {
	Albedo core.Texture
}

func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (m *Isotropic) Scatter(rIn vmath.Ray, rec *core.HitRecord, rng *sampling.RNG) (core.ScatterResult, bool) {
	direction := rng.RandomUnitVector()
	scattered := vmath.NewRayAt(rec.P, direction, rIn.Time)
	return core.ScatterResult{
		Kind:        core.Diffuse,
		Attenuation: m.Albedo.Value(rec.UV, rec.P),
		Scattered:   scattered,
		PDF:         1.0 / (4.0 * math.Pi),
	}, true
}

func (m *Isotropic) ScatteringPDF(rIn vmath.Ray, rec *core.HitRecord, scattered vmath.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (m *Isotropic) Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return vmath.ColorBlack
}
