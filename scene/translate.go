package scene

import (
	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Translate wraps a primitive with a fixed world-space offset. Instead of
// moving the geometry, the ray is translated by -offset and the hit is
// translated back, grounded on original_source's translate.h.
type Translate struct {
	Inner  core.Primitive
	Offset vmath.Vec3
}

func NewTranslate(inner core.Primitive, offset vmath.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

func (t *Translate) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	movedRay := vmath.NewRayAt(r.Origin.Sub(t.Offset), r.Direction, r.Time)
	rec, ok := t.Inner.Hit(movedRay, tMin, tMax, rng)
	if !ok {
		return core.HitRecord{}, false
	}
	rec.P = rec.P.Add(t.Offset)
	rec.SetFaceNormal(movedRay, rec.Normal)
	return rec, true
}

func (t *Translate) BoundingBox() (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}
	return core.AABB{Min: box.Min.Add(t.Offset), Max: box.Max.Add(t.Offset)}, true
}
