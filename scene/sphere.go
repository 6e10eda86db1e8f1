package scene

import (
	"math"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Sphere is a center+radius primitive, grounded on original_source's
// sphere.h/sphere.cpp: half-b quadratic solve, spherical UV parameterization.
type Sphere struct {
	Center   vmath.Vec3
	Radius   float64
	Material core.Material
}

func NewSphere(center vmath.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	var rec core.HitRecord
	rec.T = root
	rec.P = r.At(root)
	outwardNormal := rec.P.Sub(s.Center).Div(s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.UV = sphereUV(outwardNormal)
	rec.Material = s.Material
	return rec, true
}

func sphereUV(p vmath.Vec3) vmath.UV {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return vmath.UV{U: phi / (2 * math.Pi), V: theta / math.Pi}
}

func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := vmath.New(s.Radius, s.Radius, s.Radius)
	return core.AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}, true
}

// PDFValue implements sampling.Target for area-light sampling: one over the
// solid angle subtended by the sphere as seen from origin, or 0 when the
// ray misses it.
func (s *Sphere) PDFValue(origin, direction vmath.Vec3) float64 {
	rec, ok := s.Hit(vmath.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}
	distSquared := s.Center.Sub(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	_ = rec
	return 1 / solidAngle
}

// RandomDirection samples a direction toward a random point on the sphere's
// surface as seen from origin, using the cone-sampling method.
func (s *Sphere) RandomDirection(origin vmath.Vec3, rng *sampling.RNG) vmath.Vec3 {
	direction := s.Center.Sub(origin)
	distSquared := direction.LengthSquared()
	basis := sampling.NewONB(direction)
	return basis.Local(randomToSphere(s.Radius, distSquared, rng))
}

func randomToSphere(radius, distanceSquared float64, rng *sampling.RNG) vmath.Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)

	phi := 2 * math.Pi * r1
	sqrtTerm := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sqrtTerm
	y := math.Sin(phi) * sqrtTerm
	return vmath.New(x, y, z)
}
