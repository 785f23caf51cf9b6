package colors

import "github.com/chewxy/math32"

// Luma returns the perceptual luminance of the color using the ITU-R BT.709
// coefficients. Alpha is ignored. The result is in [0, 255].
func Luma(c Color) float32 {
	return 0.2126*float32(c.R) + 0.7152*float32(c.G) + 0.0722*float32(c.B)
}

// LumaYUV returns the luminance of the color using the ITU-R BT.601
// coefficients, the same fractions used by JFIF and func RGBToYCbCr in the
// standard library. Alpha is ignored.
func LumaYUV(c Color) float32 {
	return 0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B)
}

// IsDark reports whether the color falls in the dark half of the BT.601 luma
// range.
func IsDark(c Color) bool {
	return LumaYUV(c) < 128
}

// IsLight is the exact complement of IsDark.
func IsLight(c Color) bool {
	return !IsDark(c)
}

// Contrast returns the WCAG contrast ratio between two colors, in [1, 21].
// The ratio is symmetric in its arguments; a color contrasted with itself
// yields 1, white on black yields 21.
func Contrast(a, b Color) float32 {
	la := Luma(a) / 0xff
	lb := Luma(b) / 0xff
	hi := math32.Max(la, lb)
	lo := math32.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}
