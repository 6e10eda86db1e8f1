package render

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/scene"
	"pathtracer/vmath"
)

// tile is a rectangular pixel region, half-open on MaxX/MaxY, pushed to the
// work queue and consumed independently by worker goroutines. Generalizes
// the row-per-goroutine scheme of the teacher's ray tracer (each row was one
// work item; a tile is a 2D row) to the tile partitioning spec.md §4.7 asks
// for.
type tile struct {
	MinX, MinY, MaxX, MaxY int
}

// Progress reports render progress as tiles complete, read with Done/Total.
type Progress struct {
	done, total int64
}

func (p *Progress) Done() int64  { return atomic.LoadInt64(&p.done) }
func (p *Progress) Total() int64 { return atomic.LoadInt64(&p.total) }

// Render renders s into a new Image using s.Config's dimensions, sample
// count and tile size, spreading work across runtime.NumCPU() worker
// goroutines per spec.md §4.7: "the image is partitioned into rectangular
// tiles... a pool of workers consumes tiles concurrently." Each pixel
// accumulates SamplesPerPixel calls to Trace, averaged into the final color.
// ctx cancellation is polled between tiles; a partial image is returned
// alongside *core.Cancelled when the caller cancels mid-render.
func Render(ctx context.Context, s *scene.Scene, progress *Progress) (*Image, error) {
	cfg := s.Config
	img := NewImage(cfg.Width, cfg.Height)

	tiles := buildTiles(cfg.Width, cfg.Height, cfg.TileSize)
	if progress != nil {
		atomic.StoreInt64(&progress.total, int64(len(tiles)))
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > len(tiles) {
		workers = len(tiles)
	}

	queue := make(chan tile, len(tiles))
	for _, t := range tiles {
		queue <- t
	}
	close(queue)

	var cancelled int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for t := range queue {
				if ctx.Err() != nil {
					atomic.StoreInt32(&cancelled, 1)
					continue
				}
				// Each tile gets its own deterministic RNG stream seeded
				// from the master seed and the tile's origin, so a fixed
				// seed always reproduces the same image regardless of
				// which worker picks up which tile (spec.md §4.5/§5:
				// reproducibility is keyed to (seed, tile, sample, bounce)).
				tileRNG := sampling.NewRNG(cfg.Seed ^ int64(t.MinY)<<32 ^ int64(t.MinX))
				renderTile(s, img, t, tileRNG)
				if progress != nil {
					atomic.AddInt64(&progress.done, 1)
				}
			}
		}()
	}
	wg.Wait()

	if atomic.LoadInt32(&cancelled) != 0 {
		return img, &core.Cancelled{}
	}
	return img, nil
}

func buildTiles(width, height, tileSize int) []tile {
	var tiles []tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			maxX, maxY := x+tileSize, y+tileSize
			if maxX > width {
				maxX = width
			}
			if maxY > height {
				maxY = height
			}
			tiles = append(tiles, tile{MinX: x, MinY: y, MaxX: maxX, MaxY: maxY})
		}
	}
	return tiles
}

// renderTile fills every pixel of t in img by averaging SamplesPerPixel
// jittered camera rays through the integrator.
func renderTile(s *scene.Scene, img *Image, t tile, rng *sampling.RNG) {
	cfg := s.Config
	for y := t.MinY; y < t.MaxY; y++ {
		for x := t.MinX; x < t.MaxX; x++ {
			sum := vmath.ColorBlack
			for i := 0; i < cfg.SamplesPerPixel; i++ {
				u := (float64(x) + rng.Float64()) / float64(cfg.Width)
				v := (float64(cfg.Height-1-y) + rng.Float64()) / float64(cfg.Height)
				r := s.Camera.RayFor(u, v)
				sum = sum.Add(Trace(s, r, cfg.MaxDepth, rng))
			}
			img.Set(x, y, sum.Div(float64(cfg.SamplesPerPixel)))
		}
	}
}
