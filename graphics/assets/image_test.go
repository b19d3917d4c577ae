package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/opal/graphics/driver"
)

// encodeTestPNG builds a 2x2 image with a distinct color per pixel so
// flipping is observable.
func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadImage(t *testing.T) {
	data := encodeTestPNG(t)

	img, err := LoadImage(bytes.NewReader(data), false)
	require.NoError(t, err)

	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, driver.PixelRGBA8, img.Format)
	require.Len(t, img.Pixels, 16)

	// Top-left pixel first when not flipping.
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pixels[0:4])
	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pixels[8:12])
}

func TestLoadImageFlipY(t *testing.T) {
	data := encodeTestPNG(t)

	img, err := LoadImage(bytes.NewReader(data), true)
	require.NoError(t, err)

	// The bottom row comes first when flipping.
	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pixels[0:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pixels[8:12])
}

func TestLoadImageBadData(t *testing.T) {
	_, err := LoadImage(strings.NewReader("not an image"), false)
	require.Error(t, err)
}

func TestLoadImageFileMissing(t *testing.T) {
	_, err := LoadImageFile("does/not/exist.png", false)
	require.Error(t, err)
}
