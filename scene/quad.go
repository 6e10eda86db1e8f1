package scene

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

const quadEpsilon = 1e-8

// Quad is a parallelogram primitive spanning Q, Q+U, Q+V, Q+U+V, grounded on
// original_source's quad.h.
type Quad struct {
	Q, U, V  vmath.Vec3
	Material core.Material

	normal vmath.Vec3
	d      float64
	w      vmath.Vec3
	bbox   core.AABB
	area   float64
}

func NewQuad(q, u, v vmath.Vec3, mat core.Material) *Quad {
	quad := &Quad{Q: q, U: u, V: v, Material: mat}
	n := u.Cross(v)
	quad.normal = n.Unit()
	quad.d = quad.normal.Dot(q)
	quad.w = n.Div(n.Dot(n))
	quad.area = n.Length()

	diag1 := core.AABB{Min: vmath.Min(q, q.Add(u).Add(v)), Max: vmath.Max(q, q.Add(u).Add(v))}
	diag2 := core.AABB{Min: vmath.Min(q.Add(u), q.Add(v)), Max: vmath.Max(q.Add(u), q.Add(v))}
	quad.bbox = core.Surrounding(diag1, diag2).Pad(1e-4)
	return quad
}

func (q *Quad) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	denom := q.normal.Dot(r.Direction)
	if math.Abs(denom) < quadEpsilon {
		return core.HitRecord{}, false
	}

	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	intersection := r.At(t)
	planarHit := intersection.Sub(q.Q)
	alpha := q.w.Dot(planarHit.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHit))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.P = intersection
	rec.SetFaceNormal(r, q.normal)
	rec.Material = q.Material
	rec.UV = vmath.UV{U: alpha, V: beta}
	return rec, true
}

func (q *Quad) BoundingBox() (core.AABB, bool) {
	return q.bbox, true
}

// PDFValue treats the quad as an area light: solid angle ~ cos(theta) * area
// / distance^2, following the ray-tracing-book quad light-sampling formula.
func (q *Quad) PDFValue(origin, direction vmath.Vec3) float64 {
	rec, ok := q.Hit(vmath.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}
	distSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-9 {
		return 0
	}
	return distSquared / (cosine * q.area)
}

func (q *Quad) RandomDirection(origin vmath.Vec3, rng *sampling.RNG) vmath.Vec3 {
	p := q.Q.Add(q.U.Mul(rng.Float64())).Add(q.V.Mul(rng.Float64()))
	return p.Sub(origin)
}
