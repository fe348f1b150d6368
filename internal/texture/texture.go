package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/draw"
)

// ErrLoad is returned when an image file cannot be read or decoded.
var ErrLoad = errors.New("texture load failed")

// PlaceholderSize is the edge length of the placeholder texture in pixels.
const PlaceholderSize = 64

var (
	placeholderA = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	placeholderB = color.RGBA{A: 255}
)

// Load decodes the image at path into RGBA pixels, first row at the top.
func Load(path string) (*image.RGBA, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	rgba := clone.AsRGBA(img)
	if rgba.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", ErrLoad, path)
	}
	return rgba, nil
}

// Placeholder returns a magenta and black checkerboard, drawn when no image is configured.
func Placeholder() *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, placeholderA)
	src.SetRGBA(1, 1, placeholderA)
	src.SetRGBA(1, 0, placeholderB)
	src.SetRGBA(0, 1, placeholderB)

	dst := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Resolve loads path, or returns the placeholder when path is empty.
func Resolve(path string) (*image.RGBA, error) {
	if path == "" {
		return Placeholder(), nil
	}
	return Load(path)
}
