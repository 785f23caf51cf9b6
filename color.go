package colors

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Color is an 8-bit RGBA color with non alpha-premultiplied channels.
// An alpha of 0 is fully transparent, 255 is fully opaque.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{0xff, 0xff, 0xff, 0xff}
	Black       = Color{0x00, 0x00, 0x00, 0xff}
	Red         = Color{0xff, 0x00, 0x00, 0xff}
	Green       = Color{0x00, 0xff, 0x00, 0xff}
	Blue        = Color{0x00, 0x00, 0xff, 0xff}
	Gray        = Color{0x80, 0x80, 0x80, 0xff}
	Transparent = Color{}
)

// New returns a Color with each channel clamped to [0, 255].
func New(r, g, b, a int) Color {
	return Color{clamp8(r), clamp8(g), clamp8(b), clamp8(a)}
}

// NewRGB returns a fully opaque Color with each channel clamped to [0, 255].
func NewRGB(r, g, b int) Color {
	return New(r, g, b, 0xff)
}

// Clone returns a copy of the color.
func (c Color) Clone() Color {
	return c
}

// Equal reports whether all four channels of c and o are equal.
func (c Color) Equal(o Color) bool {
	return c == o
}

// String renders the color in CSS functional notation, with the alpha
// channel as a fraction of 255 to two decimals, e.g. "rgba(255,0,128,1.00)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float32(c.A)/0xff)
}

// Hex renders the color as lowercase #rrggbb, or #rrggbbaa when the color is
// not fully opaque. The output round-trips through FromHex.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBA implements the color.Color interface, returning alpha-premultiplied
// values in range 0x0000 - 0xffff.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// Model converts any color.Color to a Color.
var Model color.Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// clamp8f clamps to [0, 255] and rounds half away from zero.
func clamp8f(v float32) uint8 {
	return uint8(math32.Round(math32.Min(math32.Max(v, 0), 0xff)))
}

// fromFloat32 is the construction path for all transform results.
func fromFloat32(r, g, b, a float32) Color {
	return Color{clamp8f(r), clamp8f(g), clamp8f(b), clamp8f(a)}
}
