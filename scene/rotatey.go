package scene

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// RotateY wraps a primitive with a fixed rotation about the Y axis, grounded
// on original_source's rotate_y.h: the ray is rotated by -theta into the
// inner primitive's object space, then the hit point and normal are rotated
// back by +theta.
type RotateY struct {
	Inner          core.Primitive
	SinTheta       float64
	CosTheta       float64
	bbox           core.AABB
	hasBoundingBox bool
}

func NewRotateY(inner core.Primitive, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180.0
	r := &RotateY{
		Inner:    inner,
		SinTheta: math.Sin(radians),
		CosTheta: math.Cos(radians),
	}

	box, ok := inner.BoundingBox()
	r.hasBoundingBox = ok
	if !ok {
		return r
	}

	min := vmath.New(math.Inf(1), math.Inf(1), math.Inf(1))
	max := vmath.New(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := r.CosTheta*x + r.SinTheta*z
				newZ := -r.SinTheta*x + r.CosTheta*z

				tester := vmath.New(newX, y, newZ)
				min = vmath.Min(min, tester)
				max = vmath.Max(max, tester)
			}
		}
	}

	r.bbox = core.AABB{Min: min, Max: max}
	return r
}

func (r *RotateY) Hit(ray vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	origin := vmath.New(
		r.CosTheta*ray.Origin.X-r.SinTheta*ray.Origin.Z,
		ray.Origin.Y,
		r.SinTheta*ray.Origin.X+r.CosTheta*ray.Origin.Z,
	)
	direction := vmath.New(
		r.CosTheta*ray.Direction.X-r.SinTheta*ray.Direction.Z,
		ray.Direction.Y,
		r.SinTheta*ray.Direction.X+r.CosTheta*ray.Direction.Z,
	)
	rotatedRay := vmath.NewRayAt(origin, direction, ray.Time)

	rec, ok := r.Inner.Hit(rotatedRay, tMin, tMax, rng)
	if !ok {
		return core.HitRecord{}, false
	}

	p := vmath.New(
		r.CosTheta*rec.P.X+r.SinTheta*rec.P.Z,
		rec.P.Y,
		-r.SinTheta*rec.P.X+r.CosTheta*rec.P.Z,
	)
	normal := vmath.New(
		r.CosTheta*rec.Normal.X+r.SinTheta*rec.Normal.Z,
		rec.Normal.Y,
		-r.SinTheta*rec.Normal.X+r.CosTheta*rec.Normal.Z,
	)

	rec.P = p
	rec.SetFaceNormal(rotatedRay, normal)
	return rec, true
}

func (r *RotateY) BoundingBox() (core.AABB, bool) {
	return r.bbox, r.hasBoundingBox
}
