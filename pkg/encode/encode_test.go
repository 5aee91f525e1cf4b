package encode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(1, 0, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	return img
}

func TestWritePPMFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, testImage()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "P3", lines[0])
	assert.Equal(t, "2 1", lines[1])
	assert.Equal(t, "255", lines[2])
	assert.Equal(t, "255 0 0", lines[3])
	assert.Equal(t, "0 255 0", lines[4])
}

func TestWritePNGDecodesBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, testImage()))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Bounds().Dx())
	assert.Equal(t, 1, decoded.Bounds().Dy())
}

func TestWriteFileSelectsEncoderByExtension(t *testing.T) {
	dir := t.TempDir()

	ppmPath := dir + "/out.ppm"
	require.NoError(t, WriteFile(ppmPath, testImage()))

	pngPath := dir + "/out.png"
	require.NoError(t, WriteFile(pngPath, testImage()))
}
