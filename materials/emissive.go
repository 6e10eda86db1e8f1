package materials

import (
	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Emissive is a light-emitting surface with no scatter, grounded on the
// teacher's EmissiveMaterial() factory and original_source's emissive.h.
// spec.md §9 open question (a) fixes the ambiguous source behavior as
// "no scatter, only emit", unconditionally (not gated on front_face).
type Emissive struct {
	Color     vmath.Color
	Intensity float64
}

func NewEmissive(color vmath.Color, intensity float64) *Emissive {
	return &Emissive{Color: color, Intensity: intensity}
}

func (m *Emissive) Scatter(rIn vmath.Ray, rec *core.HitRecord, rng *sampling.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{Kind: core.Absorbed}, false
}

func (m *Emissive) ScatteringPDF(rIn vmath.Ray, rec *core.HitRecord, scattered vmath.Ray) float64 {
	return 0
}

func (m *Emissive) Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return m.Color.Mul(m.Intensity)
}
