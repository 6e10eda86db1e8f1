package core

import (
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Primitive is the hit/bounding-box contract every geometry variant
// implements: sphere, triangle, quad, mesh, the instancing wrappers, and
// the BVH node itself (a BVH node is a primitive over other primitives).
// Hit takes the calling goroutine's RNG so that a volumetric primitive
// (ConstantMedium) can sample a scatter distance without capturing a
// shared RNG at construction time (spec.md §5: RNG is a per-thread
// resource passed or implicit). Most primitives ignore it and pass it
// through to any inner primitive unchanged.
type Primitive interface {
	Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (HitRecord, bool)
	BoundingBox() (AABB, bool)
}
