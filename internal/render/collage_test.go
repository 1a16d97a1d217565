package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

// thumbs returns ten distinct solid rasters; thumbnail i has R=i+1 and A=i*20+1.
func thumbs(tw, th int) []*image.NRGBA {
	out := make([]*image.NRGBA, TenRoll)
	for i := range out {
		out[i] = imaging.New(tw, th, color.NRGBA{R: uint8(i + 1), G: 32, B: 240, A: uint8(i*20 + 1)})
	}
	return out
}

func TestCollage_IndexLaw(t *testing.T) {
	in := thumbs(ThumbWidth, ThumbHeight)
	out, err := Collage(in, ThumbWidth, ThumbHeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 1010 || b.Dy() != 456 {
		t.Fatalf("canvas %dx%d want 1010x456", b.Dx(), b.Dy())
	}
	for k := 0; k < Columns; k++ {
		for _, cell := range []struct{ y, src int }{{0, 4 - k}, {ThumbHeight, 9 - k}} {
			want := in[cell.src].NRGBAAt(0, 0)
			for _, p := range []image.Point{
				{k * ThumbWidth, cell.y},
				{k*ThumbWidth + ThumbWidth - 1, cell.y + ThumbHeight - 1},
				{k*ThumbWidth + ThumbWidth/2, cell.y + ThumbHeight/2},
			} {
				if got := out.NRGBAAt(p.X, p.Y); got != want {
					t.Fatalf("column %d pixel %v = %v want images[%d] %v", k, p, got, cell.src, want)
				}
			}
		}
	}
}

func TestCollage_Idempotent(t *testing.T) {
	in := thumbs(7, 9)
	a, err := Collage(in, 7, 9)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Collage(in, 7, 9)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("collage not deterministic")
	}
}

func TestCollage_Errors(t *testing.T) {
	if _, err := Collage(thumbs(4, 4)[:9], 4, 4); !errors.Is(err, ErrCount) {
		t.Errorf("nine images err=%v want ErrCount", err)
	}
	in := thumbs(4, 4)
	in[3] = imaging.New(4, 5, color.NRGBA{})
	if _, err := Collage(in, 4, 4); !errors.Is(err, ErrSize) {
		t.Errorf("wrong size err=%v want ErrSize", err)
	}
	in[3] = nil
	if _, err := Collage(in, 4, 4); !errors.Is(err, ErrSize) {
		t.Errorf("nil image err=%v want ErrSize", err)
	}
}

func TestCollage_MatchesPasteOnSubImages(t *testing.T) {
	in := make([]*image.NRGBA, TenRoll)
	for i := range in {
		big := imaging.New(9, 11, color.NRGBA{})
		for y := 0; y < 11; y++ {
			for x := 0; x < 9; x++ {
				big.SetNRGBA(x, y, color.NRGBA{R: uint8(i), G: uint8(x * 9), B: uint8(y * 7), A: uint8(1 + x + y)})
			}
		}
		in[i] = big.SubImage(image.Rect(2, 3, 7, 9)).(*image.NRGBA)
	}
	out, err := Collage(in, 5, 6)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < Columns; k++ {
		for _, cell := range []struct{ y, src int }{{0, 4 - k}, {6, 9 - k}} {
			src := in[cell.src]
			for y := 0; y < 6; y++ {
				for x := 0; x < 5; x++ {
					want := src.NRGBAAt(src.Rect.Min.X+x, src.Rect.Min.Y+y)
					if got := out.NRGBAAt(k*5+x, cell.y+y); got != want {
						t.Fatalf("column %d (%d,%d) = %v want %v", k, x, cell.y+y, got, want)
					}
				}
			}
		}
	}
}
