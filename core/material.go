package core

import (
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// ScatterResult is the outcome of a material scatter event. Kind
// distinguishes the three cases the integrator must treat differently:
// absorption (no outgoing ray), specular (a deterministic ray whose PDF is
// a delta and must bypass MIS), and diffuse (a stochastic ray with a
// genuine PDF value).
type ScatterKind int

const (
	Absorbed ScatterKind = iota
	Specular
	Diffuse
)

type ScatterResult struct {
	Kind        ScatterKind
	Attenuation vmath.Color
	Scattered   vmath.Ray
	PDF         float64
}

// Material is the scatter/emit contract every material variant implements.
// Scatter draws a random outgoing direction (when applicable) using rng;
// ScatteringPDF re-evaluates the material's own PDF for a direction already
// chosen by the integrator's MIS mixture, needed by the diffuse branch of
// the path integrator (spec.md §4.6 step 7).
type Material interface {
	Scatter(rIn vmath.Ray, rec *HitRecord, rng *sampling.RNG) (ScatterResult, bool)
	ScatteringPDF(rIn vmath.Ray, rec *HitRecord, scattered vmath.Ray) float64
	Emitted(uv vmath.UV, p vmath.Vec3) vmath.Color
}
