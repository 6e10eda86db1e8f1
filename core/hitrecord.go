package core

import "pathtracer/vmath"

// HitRecord is a short-lived, per-ray record of where a ray hit a
// primitive. The stored Normal always faces the side the ray arrived from:
// Normal = outwardNormal when FrontFace, else its negation.
type HitRecord struct {
	T         float64
	P         vmath.Vec3
	Normal    vmath.Vec3
	FrontFace bool
	UV        vmath.UV
	Material  Material
}

// SetFaceNormal derives FrontFace and the stored Normal from the ray
// direction and the primitive's outward-facing normal.
func (h *HitRecord) SetFaceNormal(r vmath.Ray, outwardNormal vmath.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
