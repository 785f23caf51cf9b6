package colors

// Mix returns the linear interpolation of into towards from, applied
// independently to all four channels. A strength of 0 returns into, 1
// returns from. Strengths outside [0, 1] are not rejected; they extrapolate
// and the channels saturate at [0, 255].
func Mix(into, from Color, strength float32) Color {
	return fromFloat32(
		lerp(float32(into.R), float32(from.R), strength),
		lerp(float32(into.G), float32(from.G), strength),
		lerp(float32(into.B), float32(from.B), strength),
		lerp(float32(into.A), float32(from.A), strength),
	)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Whiten mixes the color towards opaque white.
func Whiten(c Color, strength float32) Color {
	return Mix(c, White, strength)
}

// Blacken mixes the color towards opaque black.
func Blacken(c Color, strength float32) Color {
	return Mix(c, Black, strength)
}

// Grayscale returns the color reduced to its BT.601 luma, with alpha
// preserved.
func Grayscale(c Color) Color {
	y := clamp8f(LumaYUV(c))
	return Color{y, y, y, c.A}
}

// Invert returns the color with the R, G and B channels inverted, with alpha
// preserved. Invert is its own inverse.
func Invert(c Color) Color {
	return Color{0xff - c.R, 0xff - c.G, 0xff - c.B, c.A}
}

// Opacity returns a copy of the color with the alpha channel set to
// strength, where 0 is fully transparent and 1 fully opaque.
func Opacity(c Color, strength float32) Color {
	c.A = clamp8f(strength * 0xff)
	return c
}

// Fill returns a fully opaque color approximating how c would look
// composited over the given background. A fully opaque input is returned as
// a plain clone. The input is never modified.
func Fill(c, background Color) Color {
	if c.A == 0xff {
		return c.Clone()
	}
	strength := 1 - float32(c.A)/0xff
	c.A = 0xff
	return Mix(c, background, strength)
}
