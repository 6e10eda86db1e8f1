package textures

import (
	"math"
	"math/rand"

	"pathtracer/vmath"
)

const perlinPointCount = 256

// perlinNoise is a lattice-gradient noise generator. Built once at scene
// construction time and shared read-only across the render, matching the
// "constructed at scene-load time, immutable during rendering" lifecycle
// spec.md §3 requires of textures.
type perlinNoise struct {
	ranvec  [perlinPointCount]vmath.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

func newPerlinNoise(seed int64) *perlinNoise {
	r := rand.New(rand.NewSource(seed))
	p := &perlinNoise{}
	for i := range p.ranvec {
		p.ranvec[i] = vmath.New(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1).Unit()
	}
	p.permX = generatePerm(r)
	p.permY = generatePerm(r)
	p.permZ = generatePerm(r)
	return p
}

func generatePerm(r *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// noise evaluates trilinearly-interpolated, Hermite-smoothed gradient noise
// at p.
func (pn *perlinNoise) noise(p vmath.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)
	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]vmath.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.ranvec[idx]
			}
		}
	}
	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]vmath.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)
	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := vmath.New(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// turbulence sums noise octaves at halving amplitude and doubling
// frequency, the standard fBm construction used for marble/wood textures.
func (pn *perlinNoise) turbulence(p vmath.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pn.noise(temp)
		weight *= 0.5
		temp = temp.Mul(2)
	}
	return math.Abs(accum)
}

// Noise is a marble-like turbulence texture: a sine wave modulated by
// turbulence along the point's Z axis, scaled by Scale.
type Noise struct {
	perlin *perlinNoise
	Scale  float64
	Depth  int
}

func NewNoise(seed int64, scale float64) *Noise {
	return &Noise{perlin: newPerlinNoise(seed), Scale: scale, Depth: 7}
}

func (n *Noise) Value(uv vmath.UV, p vmath.Vec3) vmath.Color {
	s := n.Scale
	t := 1 + math.Sin(s*p.Z+10*n.perlin.turbulence(p.Mul(s), n.Depth))
	return vmath.ColorWhite.Mul(0.5 * t)
}
