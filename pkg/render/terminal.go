package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them into area.
// Each terminal row shows two framebuffer rows: ▀ with fg = top pixel and
// bg = bottom pixel. Row area.Min.Y shows framebuffer rows 0 and 1.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}

			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(x, topY)),
					Bg: rgbaToColor(fb.GetPixel(x, botY)),
				},
			})
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Console palette.
var (
	ColorBackground = color.RGBA{0x0B, 0x10, 0x18, 255}
	ColorCyan       = color.RGBA{0x18, 0xE4, 0xFF, 255}
	ColorGreen      = color.RGBA{0x3C, 0xFF, 0x9C, 255}
	ColorAmber      = color.RGBA{0xFF, 0xC8, 0x57, 255}
	ColorRed        = color.RGBA{0xFF, 0x6B, 0x6B, 255}
	ColorSteel      = color.RGBA{0x14, 0x1A, 0x26, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// WithAlpha returns c with its alpha replaced by a.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
