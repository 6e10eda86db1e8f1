package scene

import (
	"math"

	"pathtracer/core"
	"pathtracer/vmath"
)

// Sun is a directional light with a disk of angular radius AngularRadius,
// adding its full color*intensity to the environment term when a ray
// direction falls within that cone. Direction need not be normalized;
// Environment.Sample normalizes it on each call.
type Sun struct {
	Direction     vmath.Vec3
	Color         vmath.Color
	Intensity     float64
	AngularRadius float64
}

// PointLight is a positional, non-area light with no geometric presence for
// camera rays to hit directly. Point lights are stored on the Scene, but the
// integrator does not sample them: PickLight draws only from emissive
// primitives.
type PointLight struct {
	Position  vmath.Vec3
	Color     vmath.Color
	Intensity float64
}

// Environment is the background contribution a ray receives on a BVH miss:
// either an HDRI equirectangular lookup (with rotation and intensity) or a
// sky gradient, plus an optional sun disk, grounded on spec.md §4.6 step 3
// and original_source's factory_methods.cpp HDRI rotation/intensity fields.
type Environment struct {
	HDRI     core.Texture
	Rotation float64 // radians about Y
	Intensity float64
	Sun      *Sun
}

// Sample returns the background radiance for a miss in direction d (need
// not be unit).
func (e *Environment) Sample(d vmath.Vec3) vmath.Color {
	unitD := d.Unit()

	var background vmath.Color
	if e.HDRI != nil {
		background = e.sampleHDRI(unitD).Mul(e.Intensity)
	} else {
		background = skyGradient(unitD)
	}

	if e.Sun != nil {
		sunDir := e.Sun.Direction.Unit()
		cosAngle := unitD.Dot(sunDir)
		if cosAngle > math.Cos(e.Sun.AngularRadius) {
			background = background.Add(e.Sun.Color.Mul(e.Sun.Intensity))
		}
	}

	return background
}

func (e *Environment) sampleHDRI(unitD vmath.Vec3) vmath.Color {
	rotated := rotateAboutY(unitD, e.Rotation)
	theta := math.Acos(clampUnit(rotated.Y))
	phi := math.Atan2(-rotated.Z, rotated.X) + math.Pi
	u := phi / (2 * math.Pi)
	v := theta / math.Pi
	return e.HDRI.Value(vmath.UV{U: u, V: v}, vmath.Zero)
}

func rotateAboutY(v vmath.Vec3, radians float64) vmath.Vec3 {
	sinT, cosT := math.Sin(radians), math.Cos(radians)
	return vmath.New(cosT*v.X+sinT*v.Z, v.Y, -sinT*v.X+cosT*v.Z)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// skyGradient is the fallback background, per spec.md §4.6:
// mix(white, light-blue, 0.5*(unit_d.y+1)).
func skyGradient(unitD vmath.Vec3) vmath.Color {
	t := 0.5 * (unitD.Y + 1.0)
	return vmath.ColorWhite.Lerp(vmath.New(0.5, 0.7, 1.0), t)
}
