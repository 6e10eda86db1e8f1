// Package textures implements the (u,v,p) -> Color sampling variants:
// solid color, 3D checker, image (bilinear, V-flipped), and Perlin
// turbulence. Grounded on the teacher's textures/texture.go image-decode
// and checker-generation code, generalized from a GPU-uploaded texture to
// a pure CPU sampling function.
package textures

import (
	"math"

	"pathtracer/core"
	"pathtracer/vmath"
)

// Solid is a constant-color texture.
type Solid struct {
	Color vmath.Color
}

func NewSolid(c vmath.Color) *Solid {
	return &Solid{Color: c}
}

func (s *Solid) Value(uv vmath.UV, p vmath.Vec3) vmath.Color {
	return s.Color
}

// Checker is a 3D grid checkerboard between two sub-textures, following
// spec.md §3: floor(invScale*x)+floor(invScale*y)+floor(invScale*z) mod 2.
type Checker struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

func NewCheckerColor(scale float64, even, odd vmath.Color) *Checker {
	return NewChecker(scale, NewSolid(even), NewSolid(odd))
}

func (c *Checker) Value(uv vmath.UV, p vmath.Vec3) vmath.Color {
	sum := math.Floor(c.InvScale*p.X) + math.Floor(c.InvScale*p.Y) + math.Floor(c.InvScale*p.Z)
	if mod2(sum) == 0 {
		return c.Even.Value(uv, p)
	}
	return c.Odd.Value(uv, p)
}

// mod2 is a floored modulo-2, so negative coordinates alternate the same
// way positive ones do instead of truncating toward zero.
func mod2(v float64) int64 {
	m := int64(v) % 2
	if m < 0 {
		m += 2
	}
	return m
}
