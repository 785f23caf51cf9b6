package colors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMix(t *testing.T) {
	samples := []Color{White, Black, Red, {10, 20, 30, 40}, {200, 100, 50, 128}}
	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, a, Mix(a, b, 0), "strength 0 returns the first color")
			assert.Equal(t, b, Mix(a, b, 1), "strength 1 returns the second color")
		}
	}

	assert.Equal(t, Color{128, 128, 128, 255}, Mix(Black, White, 0.5))
	assert.Equal(t, Color{105, 60, 40, 146}, Mix(Color{10, 20, 30, 40}, Color{200, 100, 50, 251}, 0.5))
}

func TestMixExtrapolates(t *testing.T) {
	a := Color{100, 100, 100, 255}
	b := Color{200, 200, 200, 255}

	assert.Equal(t, Color{255, 255, 255, 255}, Mix(a, b, 2), "overshoot saturates at 255")
	assert.Equal(t, Color{0, 0, 0, 255}, Mix(a, b, -1), "undershoot saturates at 0")
}

func TestWhitenBlacken(t *testing.T) {
	assert.Equal(t, Color{128, 128, 128, 255}, Whiten(Black, 0.5))
	assert.Equal(t, Color{128, 128, 128, 255}, Blacken(White, 0.5))
	assert.Equal(t, White, Whiten(White, 0.25), "white stays white")
	assert.Equal(t, Black, Blacken(Black, 0.25), "black stays black")
}

func TestGrayscale(t *testing.T) {
	got := Grayscale(Color{255, 0, 0, 200})
	assert.Equal(t, Color{76, 76, 76, 200}, got, "pure red reduces to its BT.601 luma, alpha preserved")

	assert.Equal(t, White, Grayscale(White))
	assert.Equal(t, Black, Grayscale(Black))
}

func TestInvert(t *testing.T) {
	assert.Equal(t, Color{0, 0, 0, 255}, Invert(White))
	assert.Equal(t, Color{0, 255, 85, 128}, Invert(Color{255, 0, 170, 128}))

	samples := []Color{White, Black, Red, {10, 20, 30, 40}, {1, 128, 254, 0}}
	for _, c := range samples {
		assert.Equal(t, c, Invert(Invert(c)), "inverting twice returns the original")
	}
}

func TestOpacity(t *testing.T) {
	c := Color{10, 20, 30, 200}
	assert.Equal(t, Color{10, 20, 30, 0}, Opacity(c, 0))
	assert.Equal(t, Color{10, 20, 30, 255}, Opacity(c, 1))
	assert.Equal(t, Color{10, 20, 30, 128}, Opacity(c, 0.5), "rounds half away from zero")
	assert.Equal(t, uint8(200), c.A, "input is not modified")
}

func TestFill(t *testing.T) {
	in := Color{0, 0, 0, 128}
	got := Fill(in, White)
	assert.Equal(t, Color{127, 127, 127, 255}, got, "half-transparent black over white lands mid-gray")
	assert.Equal(t, Color{0, 0, 0, 128}, in, "input is not modified")

	opaque := Color{10, 20, 30, 255}
	assert.Equal(t, opaque, Fill(opaque, White), "opaque input is returned as-is")

	assert.Equal(t, White, Fill(Transparent, White), "fully transparent input becomes the background")
}

func ExampleMix() {
	fmt.Println(Mix(Black, White, 0.5))
	// Output: rgba(128,128,128,1.00)
}

func ExampleFill() {
	fmt.Println(Fill(Color{0, 0, 0, 128}, White))
	// Output: rgba(127,127,127,1.00)
}

func ExampleInvert() {
	fmt.Println(Invert(Color{255, 0, 170, 255}))
	// Output: rgba(0,255,85,1.00)
}
