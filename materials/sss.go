package materials

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// SSS approximates subsurface scattering (skin, marble, wax) by stochastically
// choosing, per scatter event, between a white specular reflection off the
// surface and a diffuse bounce blended toward an interior scatter color that
// grows stronger at grazing angles. Grounded on original_source's
// sss_material.h.
type SSS struct {
	SurfaceAlbedo   core.Texture
	ScatterColor    vmath.Color
	ScatterDistance float64
	Roughness       float64
}

func NewSSS(surfaceAlbedo core.Texture, scatterColor vmath.Color, scatterDistance, roughness float64) *SSS {
	return &SSS{
		SurfaceAlbedo:   surfaceAlbedo,
		ScatterColor:    scatterColor,
		ScatterDistance: scatterDistance,
		Roughness:       clampMin(roughness, 0.04),
	}
}

func (m *SSS) Scatter(rIn vmath.Ray, rec *core.HitRecord, rng *sampling.RNG) (core.ScatterResult, bool) {
	baseColor := m.SurfaceAlbedo.Value(rec.UV, rec.P)

	unitDirection := rIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)

	fresnel := schlickF0(cosTheta, 0.04)

	var direction vmath.Vec3
	var attenuation vmath.Color

	if rng.Float64() < fresnel*(1.0-m.Roughness*0.5) {
		reflected := vmath.Reflect(unitDirection, rec.Normal)
		direction = reflected.Add(rng.RandomInUnitSphere().Mul(m.Roughness))
		if direction.NearZero() {
			direction = rec.Normal
		}
		attenuation = vmath.ColorWhite
	} else {
		sssFactor := 0.4 * (1.0 - cosTheta)
		mixedColor := baseColor.Mul(1.0 - sssFactor).Add(m.ScatterColor.Mul(sssFactor))

		randomDir := rng.RandomUnitVector()
		forwardBias := unitDirection.Mul(-0.2)
		direction = rec.Normal.Add(randomDir).Add(forwardBias)
		if direction.NearZero() {
			direction = rec.Normal
		}
		attenuation = mixedColor
	}

	scattered := vmath.NewRayAt(rec.P, direction.Unit(), rIn.Time)
	if scattered.Direction.Dot(rec.Normal) <= 0 && rng.Float64() >= 0.1 {
		return core.ScatterResult{Kind: core.Absorbed}, false
	}

	return core.ScatterResult{
		Kind:        core.Specular,
		Attenuation: attenuation,
		Scattered:   scattered,
	}, true
}

func (m *SSS) ScatteringPDF(rIn vmath.Ray, rec *core.HitRecord, scattered vmath.Ray) float64 {
	return 0
}

func (m *SSS) Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return vmath.ColorBlack
}
