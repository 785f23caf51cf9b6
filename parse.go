package colors

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// Parse errors.
var (
	ErrInvalidFormat     = errors.New("colors: invalid color format")
	ErrUnsupportedFormat = errors.New("colors: unsupported color format")
)

var (
	hexPattern = regexp.MustCompile(`^#(?i:[0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbPattern = regexp.MustCompile(`^(rgba?)\((\d+),\s*(\d+),\s*(\d+)(?:,\s*(\d*\.?\d+))?\)$`)
)

// FromHex parses a hex color in #rgb, #rgba, #rrggbb or #rrggbbaa notation,
// case-insensitive. Short forms duplicate each digit; a missing alpha
// component defaults to fully opaque.
func FromHex(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	x := strings.ToLower(s[1:])
	var r, g, b int
	a := 0xff
	switch len(x) {
	case 3, 4:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		if len(x) == 4 {
			fmt.Sscanf(x[3:], "%1x", &a)
			a |= a << 4
		}
	case 6, 8:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
		if len(x) == 8 {
			fmt.Sscanf(x[6:], "%02x", &a)
		}
	}
	return Color{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// FromRGB parses a color in functional rgb(r,g,b) or rgba(r,g,b,a) notation,
// with optional whitespace after the commas. The r, g and b components are
// decimal integers, clamped to [0, 255]; the alpha component is a fraction
// in [0, 1], rounded half away from zero onto [0, 255], defaulting to fully
// opaque.
func FromRGB(s string) (Color, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil || (m[1] == "rgba") != (m[5] != "") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	r, _ := strconv.Atoi(m[2])
	g, _ := strconv.Atoi(m[3])
	b, _ := strconv.Atoi(m[4])
	a := 0xff
	if m[5] != "" {
		f, err := strconv.ParseFloat(m[5], 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		a = int(math32.Round(float32(f) * 0xff))
	}
	return New(r, g, b, a), nil
}

// FromString parses a color from any supported representation: hex notation
// with a leading #, functional rgb/rgba notation, or a case-insensitive
// SVG 1.1 color name such as "slategray".
func FromString(s string) (Color, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return FromHex(s)
	case strings.HasPrefix(s, "rgb"):
		return FromRGB(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{c.R, c.G, c.B, c.A}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}
