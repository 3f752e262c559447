package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"slices"

	"github.com/taigrr/attitude/pkg/math3d"
)

// maxCoord bounds the screen coordinates the framebuffer will rasterize.
// Points this far out only come from a near-zero projection depth.
const maxCoord = 1 << 16

// Framebuffer is a 2D array of pixels that can be rendered to the terminal.
// We use double vertical resolution by using half-block characters (▀▄).
type Framebuffer struct {
	Width  int          // Width in "pixels" (same as terminal columns)
	Height int          // Height in "pixels" (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data

	xs []float64 // Scanline crossings, reused by FillPolygon
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Viewport returns the framebuffer size as a projection viewport.
func (fb *Framebuffer) Viewport() Viewport {
	return VP(fb.Width, fb.Height)
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// BlendPixel draws c over the pixel at (x, y) using c's alpha.
func (fb *Framebuffer) BlendPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	fb.Pixels[i] = blend(fb.Pixels[i], c)
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokePolygon draws the closed outline of poly.
func (fb *Framebuffer) StrokePolygon(poly []math3d.Vec2, c color.RGBA) {
	if len(poly) < 2 || !drawable(poly) {
		return
	}
	prev := poly[len(poly)-1]
	for _, p := range poly {
		fb.DrawLine(
			int(math.Floor(prev.X)), int(math.Floor(prev.Y)),
			int(math.Floor(p.X)), int(math.Floor(p.Y)),
			c,
		)
		prev = p
	}
}

// FillPolygon fills poly with c using an even-odd scanline fill sampled at
// pixel centers. c is alpha-blended over the existing pixels.
func (fb *Framebuffer) FillPolygon(poly []math3d.Vec2, c color.RGBA) {
	if len(poly) < 3 || !drawable(poly) {
		return
	}

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(int(math.Ceil(minY-0.5)), 0)
	y1 := min(int(math.Floor(maxY-0.5)), fb.Height-1)

	for y := y0; y <= y1; y++ {
		sy := float64(y) + 0.5
		fb.xs = fb.xs[:0]

		prev := poly[len(poly)-1]
		for _, p := range poly {
			// Half-open rule so shared vertices are counted once
			if (prev.Y <= sy) != (p.Y <= sy) {
				t := (sy - prev.Y) / (p.Y - prev.Y)
				fb.xs = append(fb.xs, prev.X+t*(p.X-prev.X))
			}
			prev = p
		}
		slices.Sort(fb.xs)

		for i := 0; i+1 < len(fb.xs); i += 2 {
			x0 := max(int(math.Ceil(fb.xs[i]-0.5)), 0)
			x1 := min(int(math.Floor(fb.xs[i+1]-0.5)), fb.Width-1)
			for x := x0; x <= x1; x++ {
				fb.BlendPixel(x, y, c)
			}
		}
	}
}

// drawable reports whether every vertex is finite and within maxCoord.
func drawable(poly []math3d.Vec2) bool {
	for _, p := range poly {
		if !p.IsFinite() || math.Abs(p.X) > maxCoord || math.Abs(p.Y) > maxCoord {
			return false
		}
	}
	return true
}

// blend composites src over dst. The result is opaque.
func blend(dst, src color.RGBA) color.RGBA {
	a := uint32(src.A)
	if a == 255 {
		return src
	}
	inv := 255 - a
	return color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*inv) / 255),
		A: 255,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
