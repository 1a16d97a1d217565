package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	ThumbWidth  = 202
	ThumbHeight = 228
	Columns     = 5
	Rows        = 2
	TenRoll     = Columns * Rows
)

var (
	ErrCount = errors.New("collage needs exactly ten images")
	ErrSize  = errors.New("collage image has the wrong size")
)

// Collage lays ten tw×th rasters on a 5×2 grid, filling each row right to
// left: column k holds images[4-k] on top and images[9-k] below. Pixels are
// copied as stored, including alpha.
func Collage(images []*image.NRGBA, tw, th int) (*image.NRGBA, error) {
	if len(images) != TenRoll {
		return nil, fmt.Errorf("%w: got %d", ErrCount, len(images))
	}
	if tw <= 0 || th <= 0 {
		return nil, fmt.Errorf("%w: thumbnail %dx%d", ErrSize, tw, th)
	}
	for i, img := range images {
		if img == nil {
			return nil, fmt.Errorf("%w: image %d is nil", ErrSize, i)
		}
		if b := img.Bounds(); b.Dx() != tw || b.Dy() != th {
			return nil, fmt.Errorf("%w: image %d is %dx%d, want %dx%d", ErrSize, i, b.Dx(), b.Dy(), tw, th)
		}
	}

	canvas := imaging.New(Columns*tw, Rows*th, color.NRGBA{})
	for k := 0; k < Columns; k++ {
		x := k * tw
		paste(canvas, images[Columns-1-k], x, 0)
		paste(canvas, images[TenRoll-1-k], x, th)
	}
	return canvas, nil
}

// paste copies src into dst at (x,y) row by row. draw.Draw would round
// low-alpha pixels through premultiplied colour.
func paste(dst, src *image.NRGBA, x, y int) {
	b := src.Bounds()
	n := 4 * b.Dx()
	for r := 0; r < b.Dy(); r++ {
		so := src.PixOffset(b.Min.X, b.Min.Y+r)
		do := dst.PixOffset(x, y+r)
		copy(dst.Pix[do:do+n], src.Pix[so:so+n])
	}
}
