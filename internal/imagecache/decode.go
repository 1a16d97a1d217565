package imagecache

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var (
	ErrFormat = errors.New("unrecognized image format")
	ErrDecode = errors.New("image decode failed")
)

// PlaceholderColor fills rasters that stand in for images that could not be loaded.
var PlaceholderColor = color.NRGBA{R: 160, G: 32, B: 240, A: 1}

// DecodeResize detects the format of data, decodes it and resizes it to
// exactly w×h with nearest-neighbour sampling. Aspect ratio is not kept.
func DecodeResize(data []byte, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrDecode, w, h)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d source", ErrDecode, b.Dx(), b.Dy())
	}
	return imaging.Resize(img, w, h, imaging.NearestNeighbor), nil
}

// Placeholder returns a w×h raster with every pixel set to PlaceholderColor.
func Placeholder(w, h int) *image.NRGBA {
	return imaging.New(w, h, PlaceholderColor)
}
