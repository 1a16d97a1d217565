package render

import (
	"image"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
)

// Encoder writes a finished collage.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// EncodeFunc adapts a function to Encoder.
type EncodeFunc func(w io.Writer, img image.Image) error

func (f EncodeFunc) Encode(w io.Writer, img image.Image) error { return f(w, img) }

// JPEGEncoder writes baseline JPEG. The colour channels are written as
// stored and alpha is dropped, so translucent pixels keep their colour.
type JPEGEncoder struct {
	Quality int // 0 means jpeg.DefaultQuality
}

func (e JPEGEncoder) Encode(w io.Writer, img image.Image) error {
	q := e.Quality
	if q == 0 {
		q = jpeg.DefaultQuality
	}
	return imaging.Encode(w, opaque(img), imaging.JPEG, imaging.JPEGQuality(q))
}

// opaque copies img with every alpha byte set to 255.
func opaque(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}
