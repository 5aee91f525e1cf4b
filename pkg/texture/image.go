package texture

import "github.com/kbrandt/pathtracer/pkg/core"

// cyan is the sentinel color returned for empty/undecoded image data, a
// deliberately garish marker that's easy to spot in a render.
var cyan = core.NewVec3(0, 1, 1)

// Image samples a decoded RGB8 pixel buffer with nearest-neighbor filtering.
// Width/Height describe the buffer; Pixels is row-major, top row first.
type Image struct {
	Width, Height int
	Pixels        []byte // RGB8, 3 bytes per pixel
}

// NewImage wraps a packed RGB8 buffer as a texture.
func NewImage(width, height int, pixels []byte) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Value implements Texture: clamps (u, v) to [0, 1], flips v (image row 0 is
// the top of the texture, but v=0 is conventionally the bottom of a UV
// parameterization), and looks up the nearest pixel.
func (img *Image) Value(u, v float64, p core.Point3) core.Color {
	if len(img.Pixels) == 0 {
		return cyan
	}

	u = clamp01(u)
	v = 1.0 - clamp01(v)

	i := int(u * float64(img.Width))
	j := int(v * float64(img.Height))
	if i >= img.Width {
		i = img.Width - 1
	}
	if j >= img.Height {
		j = img.Height - 1
	}

	offset := (j*img.Width + i) * 3
	const scale = 1.0 / 255.0
	return core.NewVec3(
		float64(img.Pixels[offset])*scale,
		float64(img.Pixels[offset+1])*scale,
		float64(img.Pixels[offset+2])*scale,
	)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
