package vmath

// Ray is a half-line Origin + t*Direction. Direction need not be unit
// length. Time is an optional scalar accepted for forward compatibility
// with time-varying scenes; the core never samples motion blur from it
// (spec.md §1 non-goal).
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func NewRayAt(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
