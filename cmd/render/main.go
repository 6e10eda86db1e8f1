// Command render assembles a small Cornell-box-like demo scene and writes a
// rendered PPM to disk. It is the external wiring the core doesn't own
// (spec.md §1: "no CLI, no environment-variable surface... owned by the
// core"); config here is just a handful of demo flags, in the spirit of the
// teacher's cmd/demo/main.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"pathtracer/core"
	"pathtracer/materials"
	"pathtracer/render"
	"pathtracer/sampling"
	"pathtracer/scene"
	"pathtracer/textures"
	"pathtracer/vmath"
)

func main() {
	width := flag.Int("width", 400, "image width in pixels")
	height := flag.Int("height", 400, "image height in pixels")
	samples := flag.Int("samples", 64, "samples per pixel")
	depth := flag.Int("depth", 12, "max bounce depth")
	seed := flag.Int64("seed", 1, "RNG seed")
	out := flag.String("out", "out.ppm", "output PPM path")
	useBVH := flag.Bool("bvh", true, "use BVH acceleration")
	flag.Parse()

	accel := core.Linear
	if *useBVH {
		accel = core.BVH
	}

	cfg := core.RenderConfig{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Acceleration:    accel,
		Seed:            *seed,
	}

	s, report, err := scene.Build(cornellBox(), cornellCamera(float64(*width)/float64(*height)), nil, nil, nil, cfg)
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}
	if report.SkippedCount > 0 {
		log.Printf("skipped %d primitive(s) without a bounding box: %v", report.SkippedCount, report.Skipped)
	}
	if reportYAML, err := report.YAML(); err != nil {
		log.Printf("build report: %v", report)
	} else {
		log.Printf("build report:\n%s", reportYAML)
	}

	var progress render.Progress
	start := time.Now()

	done := make(chan struct{})
	go reportProgress(&progress, done)

	img, err := render.Render(context.Background(), s, &progress)
	close(done)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	log.Printf("rendered %dx%d in %s", img.Width, img.Height, time.Since(start))

	if err := writePPM(*out, img); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)
}

func reportProgress(p *render.Progress, done <-chan struct{}) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			total := p.Total()
			if total == 0 {
				continue
			}
			log.Printf("progress: %d/%d tiles", p.Done(), total)
		}
	}
}

// writePPM encodes img as a binary (P6) PPM, gamma-correcting and clamping
// each channel to [0,255] the way a reference path tracer's final output
// stage does.
func writePPM(path string, img *render.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	buf := make([]byte, img.Width*img.Height*3)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			i := (y*img.Width + x) * 3
			buf[i] = toByte(c.X)
			buf[i+1] = toByte(c.Y)
			buf[i+2] = toByte(c.Z)
		}
	}
	_, err = f.Write(buf)
	return err
}

// toByte applies a gamma-2 encode (sqrt) before quantizing, the standard
// linear-to-display conversion for a path-traced radiance buffer.
func toByte(linear float64) byte {
	if linear < 0 {
		linear = 0
	}
	gamma := math.Sqrt(linear)
	v := int(256 * clamp01(gamma))
	if v > 255 {
		v = 255
	}
	return byte(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 0.999 {
		return 0.999
	}
	return v
}

func cornellCamera(aspect float64) *scene.Camera {
	return scene.NewCamera(vmath.New(278, 278, -800), vmath.New(278, 278, 0), vmath.Up, 40, aspect)
}

// cornellBox builds the canonical five-wall-plus-light-plus-two-boxes test
// scene using Quad walls and RotateY/Translate-instanced boxes, the standard
// scene for validating a path integrator's NEE/MIS behavior.
func cornellBox() []core.Primitive {
	red := materials.NewLambertian(textures.NewSolid(vmath.New(0.65, 0.05, 0.05)))
	white := materials.NewLambertian(textures.NewSolid(vmath.New(0.73, 0.73, 0.73)))
	green := materials.NewLambertian(textures.NewSolid(vmath.New(0.12, 0.45, 0.15)))
	light := materials.NewEmissive(vmath.New(15, 15, 15), 1.0)

	var prims []core.Primitive
	prims = append(prims,
		scene.NewQuad(vmath.New(555, 0, 0), vmath.New(0, 555, 0), vmath.New(0, 0, 555), green),
		scene.NewQuad(vmath.New(0, 0, 0), vmath.New(0, 555, 0), vmath.New(0, 0, 555), red),
		scene.NewQuad(vmath.New(343, 554, 332), vmath.New(-130, 0, 0), vmath.New(0, 0, -105), light),
		scene.NewQuad(vmath.New(0, 0, 0), vmath.New(555, 0, 0), vmath.New(0, 0, 555), white),
		scene.NewQuad(vmath.New(555, 555, 555), vmath.New(-555, 0, 0), vmath.New(0, 0, -555), white),
		scene.NewQuad(vmath.New(0, 0, 555), vmath.New(555, 0, 0), vmath.New(0, 555, 0), white),
	)

	box1 := boxQuads(vmath.Zero, vmath.New(165, 330, 165), white)
	tall := scene.NewRotateY(&meshBox{quads: box1}, 15)
	prims = append(prims, scene.NewTranslate(tall, vmath.New(265, 0, 295)))

	box2 := boxQuads(vmath.Zero, vmath.New(165, 165, 165), white)
	short := scene.NewRotateY(&meshBox{quads: box2}, -18)
	prims = append(prims, scene.NewTranslate(short, vmath.New(130, 0, 65)))

	return prims
}

// boxQuads builds the six faces of an axis-aligned box spanning [min,max].
func boxQuads(min, max vmath.Vec3, mat core.Material) []*scene.Quad {
	dx := vmath.New(max.X-min.X, 0, 0)
	dy := vmath.New(0, max.Y-min.Y, 0)
	dz := vmath.New(0, 0, max.Z-min.Z)

	return []*scene.Quad{
		scene.NewQuad(vmath.New(min.X, min.Y, max.Z), dx, dy, mat),
		scene.NewQuad(vmath.New(max.X, min.Y, max.Z), dz.Negate(), dy, mat),
		scene.NewQuad(vmath.New(max.X, min.Y, min.Z), dx.Negate(), dy, mat),
		scene.NewQuad(vmath.New(min.X, min.Y, min.Z), dz, dy, mat),
		scene.NewQuad(vmath.New(min.X, max.Y, max.Z), dx, dz.Negate(), mat),
		scene.NewQuad(vmath.New(min.X, min.Y, min.Z), dx, dz, mat),
	}
}

// meshBox adapts a fixed slice of quads into a core.Primitive so it can be
// wrapped by RotateY/Translate, which operate on a single inner primitive.
type meshBox struct {
	quads []*scene.Quad
}

func (b *meshBox) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax
	for _, q := range b.quads {
		if rec, ok := q.Hit(r, tMin, closestSoFar, rng); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

func (b *meshBox) BoundingBox() (core.AABB, bool) {
	box, ok := b.quads[0].BoundingBox()
	if !ok {
		return core.AABB{}, false
	}
	for _, q := range b.quads[1:] {
		qb, ok := q.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		box = core.Surrounding(box, qb)
	}
	return box, true
}
