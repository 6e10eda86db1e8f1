package render

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/scene"
	"pathtracer/vmath"
)

// traceMinT keeps a reflected/scattered ray from re-hitting its own origin
// surface due to floating-point error, the same epsilon the scene tests use.
const traceMinT = 0.001

var inf = math.Inf(1)

// rouletteMargin is the bounce count from spec.md §4.6 step 8: Russian
// roulette kicks in once the remaining depth has dropped to maxDepth-3 or
// below, i.e. after the first three bounces of the path have been spent.
const rouletteMargin = 3

// Trace recursively estimates the radiance arriving along ray r, implementing
// the path integrator of spec.md §4.6: next-event estimation against a
// sampled light mixed with the material's own BRDF sampling via MIS, emission
// added unconditionally at every bounce, and Russian-roulette termination
// once depth has been exhausted enough that survivors must be reweighted.
func Trace(s *scene.Scene, r vmath.Ray, depth int, rng *sampling.RNG) vmath.Color {
	if depth <= 0 {
		return vmath.ColorBlack
	}

	rec, ok := s.Hit(r, traceMinT, inf, rng)
	if !ok {
		return background(s, r.Direction)
	}

	emitted := rec.Material.Emitted(rec.UV, rec.P)

	result, ok := rec.Material.Scatter(r, &rec, rng)
	if !ok {
		return emitted
	}

	switch result.Kind {
	case core.Specular:
		return vmath.Clamped(emitted.Add(result.Attenuation.MulVec(Trace(s, result.Scattered, depth-1, rng))))

	case core.Diffuse:
		color := emitted.Add(diffuseContribution(s, rec, r, result, depth, rng))
		return vmath.Clamped(russianRoulette(color, result.Attenuation, depth, s.Config.MaxDepth, rng))

	default: // core.Absorbed
		return emitted
	}
}

// materialPDF adapts a hit material's own Scatter/ScatteringPDF pair into a
// sampling.PDF, so diffuseContribution's mixture always samples with
// whatever importance-sampling strategy the material actually implements
// (cosine-weighted for Lambertian, uniform-sphere for Isotropic/constant-
// medium phase functions) instead of assuming every diffuse material wants
// a cosine lobe around the surface normal.
type materialPDF struct {
	rIn vmath.Ray
	rec *core.HitRecord
}

func (m *materialPDF) Value(direction vmath.Vec3) float64 {
	return m.rec.Material.ScatteringPDF(m.rIn, m.rec, vmath.NewRay(m.rec.P, direction))
}

func (m *materialPDF) Generate(rng *sampling.RNG) vmath.Vec3 {
	result, ok := m.rec.Material.Scatter(m.rIn, m.rec, rng)
	if !ok {
		return m.rec.Normal
	}
	return result.Scattered.Direction
}

// diffuseContribution draws one scattered direction from a 50/50 mixture of
// the hit material's own BRDF/phase-function PDF and a light PDF aimed at a
// randomly chosen NEE target, then weights the recursive estimate by
// attenuation * BRDF(w) / pdf(w) per spec.md §4.6 step 7.
func diffuseContribution(s *scene.Scene, rec core.HitRecord, rIn vmath.Ray, result core.ScatterResult, depth int, rng *sampling.RNG) vmath.Color {
	matPDF := &materialPDF{rIn: rIn, rec: &rec}
	var mixture sampling.PDF = matPDF

	if light, ok := s.PickLight(rng); ok {
		mixture = sampling.NewMixturePDF(sampling.NewHittablePDF(light, rec.P), matPDF)
	}

	scatterDir := mixture.Generate(rng)
	scattered := vmath.NewRay(rec.P, scatterDir)

	pdfVal := mixture.Value(scatterDir)
	if pdfVal <= 0 {
		return vmath.ColorBlack
	}

	scatteringPDF := rec.Material.ScatteringPDF(rIn, &rec, scattered)
	if scatteringPDF <= 0 {
		return vmath.ColorBlack
	}

	incoming := Trace(s, scattered, depth-1, rng)
	weight := scatteringPDF / pdfVal
	return result.Attenuation.MulVec(incoming).Mul(weight)
}

// background returns the radiance for a camera/scattered ray that missed
// every primitive: the scene's environment (HDRI or sky gradient plus sun
// disk) when one is set, else a plain sky gradient (spec.md §4.6 step 3).
func background(s *scene.Scene, direction vmath.Vec3) vmath.Color {
	if s.Environment != nil {
		return s.Environment.Sample(direction)
	}
	unitD := direction.Unit()
	t := 0.5 * (unitD.Y + 1.0)
	return vmath.ColorWhite.Lerp(vmath.New(0.5, 0.7, 1.0), t)
}

// russianRoulette probabilistically kills low-throughput paths once depth
// has been whittled down to maxDepth-rouletteMargin or below, reweighting
// survivors by 1/p to stay unbiased. Survival probability is the largest
// channel of the bounce's attenuation, clamped to [0.05,0.95] so neither
// bright nor dark paths terminate deterministically.
func russianRoulette(color, attenuation vmath.Color, depth, maxDepth int, rng *sampling.RNG) vmath.Color {
	if depth > maxDepth-rouletteMargin {
		return color
	}
	p := vmath.MaxChannel(attenuation)
	if p < 0.05 {
		p = 0.05
	}
	if p > 0.95 {
		p = 0.95
	}
	if rng.Float64() > p {
		return vmath.ColorBlack
	}
	return color.Mul(1 / p)
}
