package scene

import (
	"math"
	"math/rand"
	"testing"

	"pathtracer/core"
	"pathtracer/materials"
	"pathtracer/sampling"
	"pathtracer/textures"
	"pathtracer/vmath"
)

func TestSphereHit(t *testing.T) {
	mat := materials.NewLambertian(textures.NewSolid(vmath.New(1, 0, 0)))
	s := NewSphere(vmath.New(0, 0, -1), 0.5, mat)

	r := vmath.NewRay(vmath.Zero, vmath.New(0, 0, -1))
	rec, ok := s.Hit(r, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(rec.T-0.5) > 1e-9 {
		t.Fatalf("expected t=0.5, got %v", rec.T)
	}
	if rec.Normal.Sub(vmath.New(0, 0, 1)).Length() > 1e-9 {
		t.Fatalf("expected normal (0,0,1), got %v", rec.Normal)
	}
	if !rec.FrontFace {
		t.Fatalf("expected front face")
	}
	if math.Abs(rec.UV.U-0.25) > 1e-9 || math.Abs(rec.UV.V-0.5) > 1e-9 {
		t.Fatalf("expected uv (0.25,0.5), got %v", rec.UV)
	}
}

func randomSpheresScene(seed int64, n int, accel core.Acceleration) *Scene {
	rng := rand.New(rand.NewSource(seed))
	mat := materials.NewLambertian(textures.NewSolid(vmath.New(0.5, 0.5, 0.5)))

	prims := make([]core.Primitive, 0, n)
	for i := 0; i < n; i++ {
		center := vmath.New(rng.Float64()*20-10, rng.Float64()*2, rng.Float64()*20-10)
		prims = append(prims, NewSphere(center, 0.2, mat))
	}

	cam := NewCamera(vmath.New(13, 2, 3), vmath.Zero, vmath.Up, 20, 3.0/2.0)
	cfg := core.RenderConfig{Width: 16, Height: 16, SamplesPerPixel: 4, MaxDepth: 8, Acceleration: accel, Seed: 42}

	s, _, err := Build(prims, cam, nil, nil, nil, cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func TestBVHMatchesLinearScan(t *testing.T) {
	linear := randomSpheresScene(42, 50, core.Linear)
	bvh := randomSpheresScene(42, 50, core.BVH)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		origin := vmath.New(rng.Float64()*30-15, rng.Float64()*10, rng.Float64()*30-15)
		dir := vmath.New(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		r := vmath.NewRay(origin, dir)

		lRec, lOK := linear.Hit(r, 0.001, math.Inf(1), nil)
		bRec, bOK := bvh.Hit(r, 0.001, math.Inf(1), nil)

		if lOK != bOK {
			t.Fatalf("hit mismatch at iteration %d: linear=%v bvh=%v", i, lOK, bOK)
		}
		if lOK && math.Abs(lRec.T-bRec.T) > 1e-9 {
			t.Fatalf("t mismatch at iteration %d: linear=%v bvh=%v", i, lRec.T, bRec.T)
		}
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	mat := materials.NewLambertian(textures.NewSolid(vmath.ColorWhite))
	base := NewSphere(vmath.New(0, 0, -1), 0.5, mat)
	offset := vmath.New(3, -2, 1)

	forward := NewTranslate(base, offset)
	back := NewTranslate(forward, offset.Negate())

	r := vmath.NewRay(vmath.Zero, vmath.New(0, 0, -1))
	baseRec, baseOK := base.Hit(r, 0.001, math.Inf(1), nil)
	roundTripRec, roundTripOK := back.Hit(r, 0.001, math.Inf(1), nil)

	if baseOK != roundTripOK {
		t.Fatalf("expected matching hit status")
	}
	if baseRec.P.Sub(roundTripRec.P).Length() > 1e-6 {
		t.Fatalf("round-tripped hit point diverged: %v vs %v", baseRec.P, roundTripRec.P)
	}
}

func TestRotateYRoundTrip(t *testing.T) {
	mat := materials.NewLambertian(textures.NewSolid(vmath.ColorWhite))
	base := NewSphere(vmath.New(1, 0, -1), 0.5, mat)

	forward := NewRotateY(base, 37)
	back := NewRotateY(forward, -37)

	r := vmath.NewRay(vmath.New(0, 0, 2), vmath.New(1, 0, -3).Unit())
	baseRec, baseOK := base.Hit(r, 0.001, math.Inf(1), nil)
	roundTripRec, roundTripOK := back.Hit(r, 0.001, math.Inf(1), nil)

	if baseOK != roundTripOK {
		t.Fatalf("expected matching hit status, base=%v roundtrip=%v", baseOK, roundTripOK)
	}
	if baseOK && baseRec.P.Sub(roundTripRec.P).Length() > 1e-6 {
		t.Fatalf("round-tripped hit point diverged: %v vs %v", baseRec.P, roundTripRec.P)
	}
}

func TestConstantMediumMeanFreePath(t *testing.T) {
	rng := sampling.NewRNG(99)
	mat := materials.NewLambertian(textures.NewSolid(vmath.ColorWhite))
	// A boundary much larger than the mean free path so truncation at the far
	// wall essentially never happens, isolating the exponential's mean.
	boundary := NewSphere(vmath.Zero, 1000.0, mat)
	density := 1.0
	medium := NewConstantMedium(boundary, density, mat)

	const samples = 10000
	total := 0.0
	hits := 0
	for i := 0; i < samples; i++ {
		origin := vmath.New(-1000, 0, 0)
		r := vmath.NewRay(origin, vmath.New(1, 0, 0))
		rec, ok := medium.Hit(r, 0.001, math.Inf(1), rng)
		if !ok {
			continue
		}
		hits++
		total += rec.P.Sub(origin).Length() // distance traveled from boundary entry
	}

	if hits == 0 {
		t.Fatalf("expected some scatter events")
	}
	mean := total / float64(hits)
	want := 1.0 / density
	if math.Abs(mean-want)/want > 0.1 {
		t.Fatalf("mean free path %v too far from expected %v", mean, want)
	}
}

func TestBVHStatsDedupSingleElementLeaf(t *testing.T) {
	mat := materials.NewLambertian(textures.NewSolid(vmath.ColorWhite))
	single := []core.Primitive{NewSphere(vmath.Zero, 1, mat)}
	node, err := BuildBVH(single)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats := node.Stats()
	if stats.Leaves != 1 {
		t.Fatalf("expected exactly 1 leaf for a size-1 split, got %d", stats.Leaves)
	}
}

func TestBuildOnlyRegistersEmissivePrimitivesAsLights(t *testing.T) {
	lambertian := materials.NewLambertian(textures.NewSolid(vmath.ColorWhite))
	emissive := materials.NewEmissive(vmath.New(4, 4, 4), 1.0)

	ground := NewSphere(vmath.New(0, -100.5, -1), 100, lambertian)
	ball := NewSphere(vmath.New(0, 0, -1), 0.5, lambertian)
	wall := NewQuad(vmath.New(0, 0, 0), vmath.New(1, 0, 0), vmath.New(0, 1, 0), lambertian)
	light := NewSphere(vmath.New(0, 2, -1), 0.5, emissive)

	cam := NewCamera(vmath.New(0, 0, 1), vmath.New(0, 0, -1), vmath.Up, 60, 1.0)
	cfg := core.RenderConfig{Width: 4, Height: 4, SamplesPerPixel: 1, MaxDepth: 1, Seed: 1}

	s, _, err := Build([]core.Primitive{ground, ball, wall, light}, cam, nil, nil, nil, cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(s.Lights) != 1 {
		t.Fatalf("expected exactly 1 light (the emissive sphere), got %d", len(s.Lights))
	}
	if s.Lights[0] != sampling.Target(light) {
		t.Fatalf("expected the emissive sphere to be the sole registered light")
	}
}
