package scene

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// ConstantMedium is a volume of uniform density (fog, smoke) bounded by an
// inner closed primitive, grounded on original_source's constant_medium.h:
// find the two boundary crossings, sample an exponential scatter distance,
// and hit with an arbitrary normal and the isotropic phase function as the
// surface material if the sampled distance lands inside the boundary.
//
// Hit takes the RNG as a call argument rather than capturing one at
// construction time: a ConstantMedium is built once during scene.Build,
// before any render worker goroutine exists, so a constructor-captured RNG
// would be shared and called unsynchronized from every worker's goroutine
// once rendering starts (spec.md §5: RNG is a per-thread resource passed
// or implicit, never a shared one).
type ConstantMedium struct {
	Boundary      core.Primitive
	NegInvDensity float64
	PhaseFunction core.Material
}

func NewConstantMedium(boundary core.Primitive, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: phase,
	}
}

func (c *ConstantMedium) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	rec1, ok := c.Boundary.Hit(r, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return core.HitRecord{}, false
	}

	rec2, ok := c.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1), rng)
	if !ok {
		return core.HitRecord{}, false
	}

	t1, t2 := rec1.T, rec2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return core.HitRecord{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := c.NegInvDensity * math.Log(rng.Float64())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t1 + hitDistance/rayLength
	rec.P = r.At(rec.T)
	rec.Normal = vmath.New(1, 0, 0)
	rec.FrontFace = true
	rec.Material = c.PhaseFunction
	return rec, true
}

func (c *ConstantMedium) BoundingBox() (core.AABB, bool) {
	return c.Boundary.BoundingBox()
}
