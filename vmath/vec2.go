package vmath

// UV is a double-precision texture coordinate pair.
type UV struct {
	U, V float64
}

func NewUV(u, v float64) UV {
	return UV{U: u, V: v}
}

func (uv UV) Lerp(o UV, t float64) UV {
	return UV{U: uv.U + (o.U-uv.U)*t, V: uv.V + (o.V-uv.V)*t}
}
