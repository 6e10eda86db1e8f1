package render

import (
	"context"
	"math"
	"testing"

	"pathtracer/core"
	"pathtracer/materials"
	"pathtracer/scene"
	"pathtracer/textures"
	"pathtracer/vmath"
)

func twoSphereScene(t *testing.T, accel core.Acceleration) *scene.Scene {
	t.Helper()
	ground := scene.NewSphere(vmath.New(0, -100.5, -1), 100, materials.NewLambertian(textures.NewSolid(vmath.New(0.5, 0.5, 0.5))))
	ball := scene.NewSphere(vmath.New(0, 0, -1), 0.5, materials.NewLambertian(textures.NewSolid(vmath.New(0.7, 0.2, 0.2))))
	light := scene.NewSphere(vmath.New(0, 2, -1), 0.5, materials.NewEmissive(vmath.New(4, 4, 4), 1.0))

	cam := scene.NewCamera(vmath.New(0, 0, 1), vmath.New(0, 0, -1), vmath.Up, 60, 1.0)
	cfg := core.RenderConfig{Width: 12, Height: 12, SamplesPerPixel: 8, MaxDepth: 6, Acceleration: accel, Seed: 7}

	s, _, err := scene.Build([]core.Primitive{ground, ball, light}, cam, nil, nil, nil, cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return s
}

func TestRenderBVHMatchesLinear(t *testing.T) {
	linear := twoSphereScene(t, core.Linear)
	bvh := twoSphereScene(t, core.BVH)

	linearImg, err := Render(context.Background(), linear, nil)
	if err != nil {
		t.Fatalf("render linear: %v", err)
	}
	bvhImg, err := Render(context.Background(), bvh, nil)
	if err != nil {
		t.Fatalf("render bvh: %v", err)
	}

	for y := 0; y < linearImg.Height; y++ {
		for x := 0; x < linearImg.Width; x++ {
			l := linearImg.At(x, y)
			b := bvhImg.At(x, y)
			if math.Abs(l.X-b.X) > 1e-9 || math.Abs(l.Y-b.Y) > 1e-9 || math.Abs(l.Z-b.Z) > 1e-9 {
				t.Fatalf("pixel (%d,%d) diverged: linear=%v bvh=%v", x, y, l, b)
			}
		}
	}
}

func TestRenderProducesNonNegativeFiniteColors(t *testing.T) {
	s := twoSphereScene(t, core.BVH)
	img, err := Render(context.Background(), s, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, c := range img.Pixels {
		if c.X < 0 || c.Y < 0 || c.Z < 0 {
			t.Fatalf("negative channel: %v", c)
		}
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
			t.Fatalf("NaN channel: %v", c)
		}
	}
}

func TestRenderRespectsCancellation(t *testing.T) {
	s := twoSphereScene(t, core.Linear)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, err := Render(ctx, s, nil)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
	if _, ok := err.(*core.Cancelled); !ok {
		t.Fatalf("expected *core.Cancelled, got %T", err)
	}
	if img == nil || img.Width != s.Config.Width {
		t.Fatalf("expected a partial image of the configured dimensions")
	}
}

func TestRenderProgressReachesTotal(t *testing.T) {
	s := twoSphereScene(t, core.BVH)
	var progress Progress
	if _, err := Render(context.Background(), s, &progress); err != nil {
		t.Fatalf("render: %v", err)
	}
	if progress.Done() != progress.Total() {
		t.Fatalf("expected done==total, got done=%d total=%d", progress.Done(), progress.Total())
	}
}
