package textures

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"pathtracer/vmath"
)

// Image samples a decoded raster image on an (u,v) grid: u wraps by
// fractional part, v is flipped (1 - frac(v)) so (0,0) addresses the
// bottom-left texel, per spec.md §6. Missing or undecodable files fall
// back to a magenta sentinel rather than failing the whole scene build,
// mirroring the teacher's LoadTexture/GetOrDefault fallback-to-default
// behavior in textures/texture.go.
type Image struct {
	width, height int
	pixels        []vmath.Color // row-major, top-left origin, linear [0,1]
}

// LoadImage decodes path into an Image texture. On failure it logs nothing
// itself (the caller, e.g. a scene loader, decides how to surface a
// warning) and returns the error; callers that want the "missing image is
// magenta" behavior should use NewMissingImage as the fallback.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Normalize to a plain RGBA buffer via x/image/draw so paletted,
	// grayscale, and CMYK sources are all handled the same way.
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	pixels := make([]vmath.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := rgba.PixOffset(x, y)
			r := float64(rgba.Pix[idx]) / 255.0
			g := float64(rgba.Pix[idx+1]) / 255.0
			b := float64(rgba.Pix[idx+2]) / 255.0
			pixels[y*w+x] = vmath.Color{X: r, Y: g, Z: b}
		}
	}

	return &Image{width: w, height: h, pixels: pixels}, nil
}

// NewMissingImage returns the 1x1 magenta sentinel texture spec.md §6
// mandates for a missing image file.
func NewMissingImage() *Image {
	return &Image{width: 1, height: 1, pixels: []vmath.Color{vmath.ColorMagenta}}
}

func (img *Image) Value(uv vmath.UV, p vmath.Vec3) vmath.Color {
	if img.width == 0 || img.height == 0 {
		return vmath.ColorMagenta
	}
	u := frac(uv.U)
	v := 1 - frac(uv.V)

	// Bilinear sample on the wrapped grid, with texel centers at half-integer
	// positions.
	fx := u*float64(img.width) - 0.5
	fy := v*float64(img.height) - 0.5
	x0 := wrapInt(int(math.Floor(fx)), img.width)
	y0 := wrapInt(int(math.Floor(fy)), img.height)
	x1 := wrapInt(x0+1, img.width)
	y1 := wrapInt(y0+1, img.height)
	tx := fx - math.Floor(fx)
	ty := fy - math.Floor(fy)

	c00 := img.at(x0, y0)
	c10 := img.at(x1, y0)
	c01 := img.at(x0, y1)
	c11 := img.at(x1, y1)

	top := c00.Lerp(c10, tx)
	bot := c01.Lerp(c11, tx)
	return top.Lerp(bot, ty)
}

func (img *Image) at(x, y int) vmath.Color {
	return img.pixels[y*img.width+x]
}

func frac(v float64) float64 {
	f := v - math.Floor(v)
	if f < 0 {
		f += 1
	}
	return f
}

func wrapInt(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
