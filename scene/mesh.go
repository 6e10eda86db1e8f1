package scene

import (
	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Mesh owns a flat list of triangles sharing one material. Its own Hit is a
// linear scan kept correct as a fallback (spec.md §9's "mesh -> BVH
// promotion"); scene construction instead decomposes a mesh's triangles
// into individual primitives contributed to the global BVH, grounded on
// original_source's mesh.h (triangleList owned directly by the mesh).
type Mesh struct {
	Triangles []*Triangle
}

func NewMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

func (m *Mesh) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, tri := range m.Triangles {
		if rec, ok := tri.Hit(r, tMin, closestSoFar, rng); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

func (m *Mesh) BoundingBox() (core.AABB, bool) {
	if len(m.Triangles) == 0 {
		return core.AABB{}, false
	}
	box := core.EmptyAABB
	for _, tri := range m.Triangles {
		triBox, ok := tri.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		box = core.Surrounding(box, triBox)
	}
	return box, true
}

// Primitives flattens the mesh into its individual triangle primitives, for
// the scene builder to feed directly into the BVH instead of keeping the
// mesh as an opaque linear-scan leaf.
func (m *Mesh) Primitives() []core.Primitive {
	out := make([]core.Primitive, len(m.Triangles))
	for i, tri := range m.Triangles {
		out[i] = tri
	}
	return out
}
