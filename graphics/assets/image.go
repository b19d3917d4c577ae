// Package assets bridges external file formats into the raw inputs the
// graphics layer consumes: shader source text and tightly packed pixel
// data. It also offers a file watcher for shader hot-reloading. Nothing
// here touches the device; decoded data is handed to a Context by the
// caller.
package assets

import (
	"fmt"
	"image"
	"io"
	"os"

	// Register the decoders for the formats textures commonly ship in.
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/spaghettifunk/opal/graphics/driver"
)

// ImageData is decoded pixel data in the byte layout CreateTexture2D
// expects: tightly packed rows, no padding.
type ImageData struct {
	Width  int
	Height int
	Format driver.PixelFormat
	Pixels []byte
}

// LoadImage decodes PNG or JPEG data into 8-bit RGBA pixels. With flipY
// set the rows are reversed, for devices whose texture origin is the
// bottom-left corner.
func LoadImage(r io.Reader, flipY bool) (*ImageData, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, bounds.Min, xdraw.Src)

	width, height := rgba.Rect.Dx(), rgba.Rect.Dy()
	pixels := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		dstY := y
		if flipY {
			dstY = height - 1 - y
		}
		copy(pixels[dstY*width*4:(dstY+1)*width*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+width*4])
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: driver.PixelRGBA8,
		Pixels: pixels,
	}, nil
}

// LoadImageFile is LoadImage reading from a file path.
func LoadImageFile(path string, flipY bool) (*ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadImage(f, flipY)
}
