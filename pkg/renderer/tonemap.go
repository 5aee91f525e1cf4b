package renderer

import (
	"image/color"
	"math"

	"github.com/kbrandt/pathtracer/pkg/core"
)

// Tonemap converts an accumulated color sum over n samples to an integer
// [0, 255] sRGB-assumed RGB triple: divide by n, apply gamma-2.0 (sqrt),
// clamp to [0, 0.999], and scale by 256, truncating to a byte.
func Tonemap(sum core.Color, n int) (r, g, b uint8) {
	scale := 1.0 / float64(n)
	return quantize(sum.X * scale), quantize(sum.Y * scale), quantize(sum.Z * scale)
}

func quantize(c float64) uint8 {
	c = math.Sqrt(math.Max(0, c))
	if c > 0.999 {
		c = 0.999
	}
	return uint8(256 * c)
}

func rgbaColor(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
