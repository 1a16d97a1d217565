package imagecache

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync/atomic"
	"testing"

	"golang.org/x/image/tiff"
)

// pngBytes encodes a w×h image whose pixel (x,y) is derived from seed.
func pngBytes(t *testing.T, w, h int, seed uint8) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: seed, G: uint8(x * 7), B: uint8(y * 13), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// countingFetcher serves fixed bodies per URL and counts calls.
type countingFetcher struct {
	bodies map[string][]byte
	calls  atomic.Int32
}

func (f *countingFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls.Add(1)
	b, ok := f.bodies[url]
	if !ok {
		return nil, ErrTransport
	}
	return b, nil
}

func isPlaceholder(img *image.NRGBA, w, h int) bool {
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h || len(img.Pix) != 4*w*h {
		return false
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 160 || img.Pix[i+1] != 32 || img.Pix[i+2] != 240 || img.Pix[i+3] != 1 {
			return false
		}
	}
	return true
}

func encodePNG(w *bytes.Buffer, img image.Image) error {
	return png.Encode(w, img)
}

// emptyImage encodes a 0×0 image in a format whose decoder accepts it.
func emptyImage(t *testing.T, encode func(io.Writer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf, image.NewNRGBA(image.Rect(0, 0, 0, 0))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeTIFF(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) }
