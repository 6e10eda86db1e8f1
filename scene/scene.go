package scene

import (
	"fmt"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// Scene bundles everything the integrator needs for a render: the resolved
// primitive list (flattened, with meshes decomposed into triangles per
// spec.md §9), an acceleration structure, a camera, lighting, and the
// validated render config. Grounded on spec.md §3's Scene entity.
type Scene struct {
	Primitives  []core.Primitive
	BVH         *BVHNode
	Camera      *Camera
	Environment *Environment
	Sun         *Sun
	PointLights []PointLight
	Lights      []sampling.Target
	Config      core.RenderConfig
}

// Build resolves a primitive list into a scene ready to render: it flattens
// any Mesh into its triangles, validates the config, and (for
// core.BVH acceleration) builds the BVH tree. Returns a core.BuildReport
// alongside the scene so the caller can see what was skipped.
func Build(primitives []core.Primitive, camera *Camera, env *Environment, sun *Sun, pointLights []PointLight, cfg core.RenderConfig) (*Scene, core.BuildReport, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, core.BuildReport{}, err
	}

	report := core.BuildReport{}
	flattened := make([]core.Primitive, 0, len(primitives))
	var lights []sampling.Target

	for i, p := range primitives {
		if mesh, ok := p.(*Mesh); ok {
			flattened = append(flattened, mesh.Primitives()...)
			continue
		}
		if _, ok := p.BoundingBox(); !ok {
			report.SkippedCount++
			report.Skipped = append(report.Skipped, fmt.Sprintf("primitive %d", i))
			continue
		}
		flattened = append(flattened, p)
		if target, ok := p.(sampling.Target); ok && isEmissive(p) {
			lights = append(lights, target)
		}
	}
	report.PrimitiveCount = len(flattened)

	s := &Scene{
		Primitives:  flattened,
		Camera:      camera,
		Environment: env,
		Sun:         sun,
		PointLights: pointLights,
		Lights:      lights,
		Config:      cfg,
	}

	if cfg.Acceleration == core.BVH && len(flattened) > 0 {
		bvh, err := BuildBVH(flattened)
		if err != nil {
			return nil, core.BuildReport{}, err
		}
		s.BVH = bvh
		stats := bvh.Stats()
		report.BVHNodes = stats.Nodes
		report.BVHLeaves = stats.Leaves
		report.BVHMaxDepth = stats.MaxDepth
	}

	return s, report, nil
}

// isEmissive reports whether p's material ever emits, so Build only
// registers actually-emissive primitives as NEE targets (spec.md:119 names
// "an emissive primitive" specifically; a non-emissive Lambertian wall or
// sphere implementing sampling.Target for other reasons must not dilute
// light sampling). Only Sphere and Quad implement sampling.Target today, so
// a type switch is enough; a new Target-implementing primitive needs a case
// added here.
func isEmissive(p core.Primitive) bool {
	var mat core.Material
	switch v := p.(type) {
	case *Sphere:
		mat = v.Material
	case *Quad:
		mat = v.Material
	default:
		return false
	}
	return mat.Emitted(vmath.UV{}, vmath.Vec3{}) != vmath.ColorBlack
}

// Hit queries the closest intersection in [tMin, tMax], dispatching to the
// BVH or a linear scan per the scene's configured acceleration mode (spec.md
// §4.6 step 2 and the BVH-equivalence property in §8).
func (s *Scene) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	if s.Config.Acceleration == core.BVH && s.BVH != nil {
		return s.BVH.Hit(r, tMin, tMax, rng)
	}
	return s.linearHit(r, tMin, tMax, rng)
}

func (s *Scene) linearHit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, p := range s.Primitives {
		if rec, ok := p.Hit(r, tMin, closestSoFar, rng); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

// PickLight returns a uniformly chosen NEE target from s.Lights (the
// emissive Sphere/Quad primitives registered by Build) and whether any is
// available. The sun and point lights are not candidates: they do not
// implement sampling.Target and are never returned here.
func (s *Scene) PickLight(rng *sampling.RNG) (sampling.Target, bool) {
	if len(s.Lights) == 0 {
		return nil, false
	}
	idx := int(rng.Float64() * float64(len(s.Lights)))
	if idx >= len(s.Lights) {
		idx = len(s.Lights) - 1
	}
	return s.Lights[idx], true
}
