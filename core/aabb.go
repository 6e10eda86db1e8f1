package core

import (
	"math"

	"pathtracer/vmath"
)

// AABB is an axis-aligned bounding box, Min <= Max componentwise.
type AABB struct {
	Min, Max vmath.Vec3
}

// EmptyAABB is the standard "no bound yet" box: inverted so that surrounding
// it with any real box yields that box unchanged.
var EmptyAABB = AABB{
	Min: vmath.New(math.Inf(1), math.Inf(1), math.Inf(1)),
	Max: vmath.New(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
}

// Hit runs the slab method against the ray, narrowing [tMin, tMax]. It
// tolerates dir[axis] == 0, which produces a ±Inf invD that still yields
// the correct empty-slab decision.
func (b AABB) Hit(r vmath.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / r.Direction.Component(axis)
		t0 := (b.Min.Component(axis) - r.Origin.Component(axis)) * invD
		t1 := (b.Max.Component(axis) - r.Origin.Component(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// LongestAxis returns 0, 1 or 2, the axis of greatest extent. Ties are
// broken x > y > z by using strict '>' comparisons in that order.
func (b AABB) LongestAxis() int {
	ex := b.Max.X - b.Min.X
	ey := b.Max.Y - b.Min.Y
	ez := b.Max.Z - b.Min.Z
	if ey > ex || ez > ex {
		if ez > ey {
			return 2
		}
		return 1
	}
	return 0
}

// SurfaceArea returns the box's surface area, for callers that want to
// report tree quality. The BVH build splits at the median and does not
// consult it.
func (b AABB) SurfaceArea() float64 {
	d := b.Max.Sub(b.Min)
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// Surrounding returns the smallest box enclosing both a and b.
func Surrounding(a, b AABB) AABB {
	return AABB{Min: vmath.Min(a.Min, b.Min), Max: vmath.Max(a.Max, b.Max)}
}

// Pad grows the box by e on every side. Used by zero-thickness primitives
// (axis-aligned triangles, quads) to avoid a degenerate slab test.
func (b AABB) Pad(e float64) AABB {
	pad := vmath.New(e, e, e)
	return AABB{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}
