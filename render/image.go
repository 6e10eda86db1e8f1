// Package render implements the path integrator and the parallel tile
// renderer that drives it across an image buffer, grounded on the
// gazed-vu/eg/rt.go row-channel worker pool (generalized here from image
// rows to 2D tiles) and spec.md §4.6/§4.7.
package render

import "pathtracer/vmath"

// Image is a linear-RGB width*height buffer of Color values, owned
// exclusively by the tile renderer during a render (spec.md §3: "the image
// buffer is created by the tile renderer and is the only mutable shared
// state during rendering, with per-pixel ownership enforced by tile
// partitioning").
type Image struct {
	Width, Height int
	Pixels        []vmath.Color
}

func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]vmath.Color, width*height)}
}

func (img *Image) At(x, y int) vmath.Color {
	return img.Pixels[y*img.Width+x]
}

func (img *Image) Set(x, y int, c vmath.Color) {
	img.Pixels[y*img.Width+x] = c
}
