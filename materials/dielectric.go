package materials

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Dielectric is a refractive material (glass, water) with a tinted
// transmission color, grounded on original_source's dielectric.cpp/h:
// Schlick-approximated Fresnel chooses between reflection and refraction,
// falling back to total internal reflection when Snell's law has no
// solution.
type Dielectric struct {
	RefractionIndex float64
	Tint            vmath.Color
}

func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{RefractionIndex: ior, Tint: vmath.ColorWhite}
}

func NewTintedDielectric(ior float64, tint vmath.Color) *Dielectric {
	return &Dielectric{RefractionIndex: ior, Tint: tint}
}

func (m *Dielectric) Scatter(rIn vmath.Ray, rec *core.HitRecord, rng *sampling.RNG) (core.ScatterResult, bool) {
	refractionRatio := m.RefractionIndex
	if rec.FrontFace {
		refractionRatio = 1.0 / m.RefractionIndex
	}

	unitDirection := rIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0
	var direction vmath.Vec3
	if cannotRefract || schlick(cosTheta, refractionRatio) > rng.Float64() {
		direction = vmath.Reflect(unitDirection, rec.Normal)
	} else {
		direction = vmath.Refract(unitDirection, rec.Normal, refractionRatio)
	}

	scattered := vmath.NewRayAt(rec.P, direction, rIn.Time)
	return core.ScatterResult{
		Kind:        core.Specular,
		Attenuation: m.Tint,
		Scattered:   scattered,
	}, true
}

func (m *Dielectric) ScatteringPDF(rIn vmath.Ray, rec *core.HitRecord, scattered vmath.Ray) float64 {
	return 0
}

func (m *Dielectric) Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return vmath.ColorBlack
}
