// Package encode writes a rendered image to disk as PPM (P3 ASCII) or PNG,
// selected by the output path's file extension.
package encode

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes img to path, selecting PNG for a ".png" extension and
// PPM (P3 ASCII) otherwise.
func WriteFile(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		return WritePNG(f, img)
	}
	return WritePPM(f, img)
}

// WritePNG writes img to w as a standard 8-bit sRGB-assumed RGB PNG.
func WritePNG(w io.Writer, img *image.RGBA) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode: png: %w", err)
	}
	return nil
}

// WritePPM writes img to w as ASCII PPM (P3): a header of the format,
// dimensions, and max value, followed by one "R G B" triple per pixel in
// row-major order with row 0 as the top of the image.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode: ppm: %w", err)
	}
	return nil
}
