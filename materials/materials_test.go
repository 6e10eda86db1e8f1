package materials

import (
	"testing"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/textures"
	"pathtracer/vmath"
)

func upwardHit() *core.HitRecord {
	rec := &core.HitRecord{
		T:    1,
		P:    vmath.New(0, 0, 0),
		UV:   vmath.UV{U: 0.5, V: 0.5},
	}
	rec.SetFaceNormal(vmath.NewRay(vmath.New(0, 1, 0), vmath.New(0, -1, 0)), vmath.Up)
	return rec
}

func TestLambertianScatterStaysInHemisphere(t *testing.T) {
	m := NewLambertian(textures.NewSolid(vmath.New(0.5, 0.5, 0.5)))
	rng := sampling.NewRNG(1)
	rIn := vmath.NewRay(vmath.New(0, 1, 0), vmath.New(0, -1, 0))
	rec := upwardHit()

	for i := 0; i < 50; i++ {
		res, ok := m.Scatter(rIn, rec, rng)
		if !ok {
			t.Fatalf("lambertian should always scatter")
		}
		if res.Scattered.Direction.Dot(rec.Normal) < -1e-9 {
			t.Fatalf("scattered direction left the hemisphere: %v", res.Scattered.Direction)
		}
		if res.PDF <= 0 {
			t.Fatalf("expected positive pdf, got %v", res.PDF)
		}
	}
}

func TestMetalZeroFuzzIsPerfectMirror(t *testing.T) {
	m := NewMetal(vmath.ColorWhite, 0)
	rng := sampling.NewRNG(2)
	rIn := vmath.NewRay(vmath.New(0, 1, 0), vmath.New(1, -1, 0).Unit())
	rec := upwardHit()

	res, ok := m.Scatter(rIn, rec, rng)
	if !ok {
		t.Fatalf("expected reflection to survive")
	}
	want := vmath.Reflect(rIn.Direction.Unit(), rec.Normal)
	got := res.Scattered.Direction
	if got.Sub(want).Length() > 1e-9 {
		t.Fatalf("expected exact reflection %v, got %v", want, got)
	}
}

func TestMetalAbsorbsWhenReflectionGoesBelowSurface(t *testing.T) {
	m := NewMetal(vmath.ColorWhite, 0)
	rng := sampling.NewRNG(3)
	// A ray travelling slightly upward against an up-facing normal reflects
	// to slightly downward, so the reflected ray dips below the surface and
	// must be absorbed.
	rIn := vmath.NewRay(vmath.New(0, 0, 0), vmath.New(1, 0.0001, 0).Unit())
	rec := &core.HitRecord{P: vmath.New(0, 0, 0), Normal: vmath.Up}

	_, ok := m.Scatter(rIn, rec, rng)
	if ok {
		t.Fatalf("expected a reflection below the surface to be absorbed")
	}
}

func TestDielectricAlwaysProducesUnitDirection(t *testing.T) {
	m := NewDielectric(1.5)
	rng := sampling.NewRNG(4)
	rIn := vmath.NewRay(vmath.New(0, 1, 0), vmath.New(0.3, -1, 0).Unit())
	rec := upwardHit()

	res, ok := m.Scatter(rIn, rec, rng)
	if !ok {
		t.Fatalf("dielectric always scatters")
	}
	if length := res.Scattered.Direction.Length(); length < 0.999 || length > 1.001 {
		t.Fatalf("expected unit direction, got length %v", length)
	}
}

func TestEmissiveEmitsUnconditionally(t *testing.T) {
	m := NewEmissive(vmath.New(1, 0.5, 0.25), 4)
	got := m.Emitted(vmath.UV{}, vmath.Zero)
	want := vmath.New(4, 2, 1)
	if got.Sub(want).Length() > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if _, ok := m.Scatter(vmath.Ray{}, &core.HitRecord{}, sampling.NewRNG(5)); ok {
		t.Fatalf("emissive should never scatter")
	}
}

func TestIsotropicPDFMatchesSphereConstant(t *testing.T) {
	m := NewIsotropic(textures.NewSolid(vmath.ColorWhite))
	got := m.ScatteringPDF(vmath.Ray{}, &core.HitRecord{}, vmath.Ray{})
	want := 1.0 / (4.0 * 3.14159265358979323846)
	if got-want > 1e-9 || want-got > 1e-9 {
		t.Fatalf("expected uniform sphere pdf %v, got %v", want, got)
	}
}

func TestGGXRoughnessClampedAtConstruction(t *testing.T) {
	m := NewGGX(vmath.ColorWhite, 0.0, 0.0)
	if m.Roughness < 0.04 {
		t.Fatalf("expected roughness clamped to >= 0.04, got %v", m.Roughness)
	}
}

func TestSSSRoughnessClampedAtConstruction(t *testing.T) {
	m := NewSSS(textures.NewSolid(vmath.ColorWhite), vmath.ColorWhite, 0.5, 0.0)
	if m.Roughness < 0.04 {
		t.Fatalf("expected roughness clamped to >= 0.04, got %v", m.Roughness)
	}
}

func TestPBRAttenuationNeverNegative(t *testing.T) {
	m := NewPBR(vmath.New(0.8, 0.2, 0.2), 0, 0.5)
	rng := sampling.NewRNG(6)
	rIn := vmath.NewRay(vmath.New(0, 1, 0), vmath.New(0.2, -1, 0).Unit())
	rec := upwardHit()

	for i := 0; i < 20; i++ {
		res, ok := m.Scatter(rIn, rec, rng)
		if !ok {
			continue
		}
		if res.Attenuation.X < 0 || res.Attenuation.Y < 0 || res.Attenuation.Z < 0 {
			t.Fatalf("attenuation went negative: %v", res.Attenuation)
		}
	}
}
