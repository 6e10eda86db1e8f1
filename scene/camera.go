package scene

import (
	"math"

	"pathtracer/vmath"
)

// Camera is a pinhole perspective camera derived from a look-from/look-at
// pair, grounded on spec.md §3.4: viewport height from vertical FOV, an
// orthonormal (u,v,w) basis, and ray_for(s,t) mapping normalized image
// coordinates to rays through the viewport.
type Camera struct {
	origin          vmath.Vec3
	lowerLeftCorner vmath.Vec3
	horizontal      vmath.Vec3
	vertical        vmath.Vec3
}

// NewCamera builds a camera from lookFrom/lookAt/up, a vertical field of
// view in degrees, and an aspect ratio (width/height).
func NewCamera(lookFrom, lookAt, up vmath.Vec3, vfovDegrees, aspectRatio float64) *Camera {
	theta := vfovDegrees * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Sub(lookAt).Unit()
	u := up.Cross(w).Unit()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Mul(viewportWidth)
	vertical := v.Mul(viewportHeight)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: origin.Sub(horizontal.Div(2)).Sub(vertical.Div(2)).Sub(w),
	}
}

// RayFor builds a ray through normalized image-plane coordinates s,t in
// [0,1], with (0,0) at the lower-left of the viewport.
func (c *Camera) RayFor(s, t float64) vmath.Ray {
	direction := c.lowerLeftCorner.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t)).Sub(c.origin)
	return vmath.NewRay(c.origin, direction)
}
