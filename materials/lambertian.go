package materials

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Lambertian is a diffuse material sampled cosine-weighted around the
// surface normal, grounded on the teacher's DefaultMaterial/RedMaterial
// family (a single albedo texture) and spec.md §4.4.
type Lambertian struct {
	Albedo core.Texture
}

func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (m *Lambertian) Scatter(rIn vmath.Ray, rec *core.HitRecord, rng *sampling.RNG) (core.ScatterResult, bool) {
	pdf := sampling.NewCosinePDF(rec.Normal)
	direction := pdf.Generate(rng)
	if direction.NearZero() {
		direction = rec.Normal
	}
	scattered := vmath.NewRayAt(rec.P, direction.Unit(), rIn.Time)
	pdfVal := pdf.Value(scattered.Direction)
	return core.ScatterResult{
		Kind:        core.Diffuse,
		Attenuation: m.Albedo.Value(rec.UV, rec.P),
		Scattered:   scattered,
		PDF:         pdfVal,
	}, true
}

func (m *Lambertian) ScatteringPDF(rIn vmath.Ray, rec *core.HitRecord, scattered vmath.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Unit())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

func (m *Lambertian) Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return vmath.ColorBlack
}
