package scene

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

const triangleEpsilon = 1e-8

// Triangle is a three-vertex primitive with optional per-vertex UVs,
// grounded on original_source's triangle.cpp: Möller-Trumbore intersection
// with barycentric interpolation.
type Triangle struct {
	V0, V1, V2    vmath.Vec3
	UV0, UV1, UV2 vmath.UV
	HasUVs        bool
	Material      core.Material
	degenerate    bool
}

func NewTriangle(v0, v1, v2 vmath.Vec3, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
	t.checkDegenerate()
	return t
}

func NewTriangleUV(v0, v1, v2 vmath.Vec3, uv0, uv1, uv2 vmath.UV, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, HasUVs: true, Material: mat}
	t.checkDegenerate()
	return t
}

func (t *Triangle) checkDegenerate() {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	t.degenerate = edge1.Cross(edge2).Length() < triangleEpsilon
}

func (t *Triangle) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	if t.degenerate {
		return core.HitRecord{}, false
	}

	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < triangleEpsilon {
		return core.HitRecord{}, false
	}

	f := 1.0 / a
	s := r.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return core.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return core.HitRecord{}, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return core.HitRecord{}, false
	}

	w := 1.0 - u - v

	var rec core.HitRecord
	rec.T = tHit
	rec.P = r.At(tHit)
	outwardNormal := edge1.Cross(edge2).Unit()
	rec.SetFaceNormal(r, outwardNormal)
	rec.Material = t.Material
	if t.HasUVs {
		rec.UV = vmath.UV{
			U: w*t.UV0.U + u*t.UV1.U + v*t.UV2.U,
			V: w*t.UV0.V + u*t.UV1.V + v*t.UV2.V,
		}
	} else {
		rec.UV = vmath.UV{U: u, V: v}
	}
	return rec, true
}

func (t *Triangle) BoundingBox() (core.AABB, bool) {
	const padding = 1e-4
	min := vmath.Min(vmath.Min(t.V0, t.V1), t.V2)
	max := vmath.Max(vmath.Max(t.V0, t.V1), t.V2)
	return core.AABB{Min: min, Max: max}.Pad(padding), true
}
