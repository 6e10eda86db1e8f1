package sampling

import "pathtracer/vmath"

// Vec3 is a local alias so the sampling formulas below read the way the
// math they're transcribed from does, without qualifying every vector.
type Vec3 = vmath.Vec3

// ONB is an orthonormal basis built from a single "up" vector, used to map
// samples generated in local space (where W is up) into world space.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a basis whose W axis is n.
func NewONB(n Vec3) ONB {
	w := n.Unit()
	a := Vec3{X: 1, Y: 0, Z: 0}
	if w.X > 0.9 || w.X < -0.9 {
		a = Vec3{X: 0, Y: 1, Z: 0}
	}
	v := w.Cross(a).Unit()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local maps a local-space vector into world space.
func (b ONB) Local(a Vec3) Vec3 {
	return b.U.Mul(a.X).Add(b.V.Mul(a.Y)).Add(b.W.Mul(a.Z))
}
