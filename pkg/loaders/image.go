// Package loaders decodes texture image files into the packed RGB8 buffers
// texture.Image samples.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/kbrandt/pathtracer/pkg/texture"
)

// LoadImage decodes filename (PNG, JPEG, BMP, or TIFF, detected from the
// file header) into a texture.Image backed by a packed RGB8 buffer: pixel
// (i, j) lives at byte offset (j*width + i)*3.
func LoadImage(filename string) (*texture.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", filename, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			offset := (y*width + x) * 3
			pixels[offset] = byte(r >> 8)
			pixels[offset+1] = byte(g >> 8)
			pixels[offset+2] = byte(b >> 8)
		}
	}

	return texture.NewImage(width, height, pixels), nil
}
