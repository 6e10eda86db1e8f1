// Package sampling provides the importance-sampling primitives the
// integrator composes: a per-goroutine RNG, an orthonormal basis, cosine
// and hittable PDFs, and their mixture.
package sampling

import (
	"math"
	"math/rand"
)

// RNG is a thread-local uniform double source. The tile renderer creates one
// per tile, seeded deterministically from the master seed
// plus the tile's coordinates, so the same (seed, tile, sample, bounce)
// tuple always reproduces the same stream (spec.md §4.5/§5).
type RNG struct {
	r *rand.Rand
}

func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform double in [0,1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Range returns a uniform double in [lo,hi).
func (g *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*g.Float64()
}

func (g *RNG) Vec3Range(lo, hi float64) Vec3 {
	return Vec3{X: g.Range(lo, hi), Y: g.Range(lo, hi), Z: g.Range(lo, hi)}
}

// RandomInUnitSphere rejection-samples a point inside the unit ball.
func (g *RNG) RandomInUnitSphere() Vec3 {
	for {
		p := g.Vec3Range(-1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector samples a point in the unit ball by rejection, then
// normalizes it onto the sphere's surface.
func (g *RNG) RandomUnitVector() Vec3 {
	return g.RandomInUnitSphere().Unit()
}

// RandomInHemisphere samples the unit sphere and flips into the hemisphere
// of the given normal.
func (g *RNG) RandomInHemisphere(normal Vec3) Vec3 {
	v := g.RandomInUnitSphere()
	if v.Dot(normal) > 0 {
		return v
	}
	return v.Negate()
}

// RandomCosineDirection samples a direction from the cosine-weighted
// hemisphere around local +Z.
func (g *RNG) RandomCosineDirection() Vec3 {
	r1 := g.Float64()
	r2 := g.Float64()
	phi := 2 * math.Pi * r1
	z := math.Sqrt(1 - r2)
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	return Vec3{X: x, Y: y, Z: z}
}

// RandomInUnitDisk rejection-samples a point in the unit disk (Z = 0). The
// pinhole Camera does not use it.
func (g *RNG) RandomInUnitDisk() Vec3 {
	for {
		p := Vec3{X: g.Range(-1, 1), Y: g.Range(-1, 1), Z: 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
