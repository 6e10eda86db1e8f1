package core

import "pathtracer/vmath"

// Texture is the (u,v,p) -> Color capability every texture variant
// implements (solid, checker, image, Perlin/turbulence).
type Texture interface {
	Value(uv vmath.UV, p vmath.Vec3) vmath.Color
}
