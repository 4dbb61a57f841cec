package hwlib

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBuffer_StartsTransparent(t *testing.T) {
	// The zero Color is opaque black; the constructor must install the
	// sentinel so untouched pixels read back and export as transparent.
	b := NewBuffer(Pos(3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := b.PixelAt(Pos(x, y)); !got.IsTransparent() {
				t.Errorf("fresh pixel (%d,%d) = %v, want Transparent", x, y, got)
			}
		}
	}
	img := b.Image()
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("fresh pixel exports with alpha %d, want 0", a)
	}
}

func TestBuffer_WriteAndRead(t *testing.T) {
	b := NewBuffer(Pos(8, 8))
	b.WritePixel(Pos(3, 4), Red)

	if got := b.PixelAt(Pos(3, 4)); got != Red {
		t.Errorf("PixelAt(3,4) = %v, want Red", got)
	}
	if got := b.PixelAt(Pos(4, 3)); !got.IsTransparent() {
		t.Errorf("PixelAt(4,3) = %v, want Transparent", got)
	}
}

func TestBuffer_ClipsOutOfRange(t *testing.T) {
	b := NewBuffer(Pos(4, 4))
	// must not panic, must not alter the buffer
	for _, p := range []XY{
		Pos(-1, 0), Pos(0, -1), Pos(4, 0), Pos(0, 4),
		Pos(-100, -100), Pos(1000, 1000),
	} {
		b.WritePixel(p, Red)
		if got := b.PixelAt(p); !got.IsTransparent() {
			t.Errorf("PixelAt(%v) = %v after clipped write, want Transparent", p, got)
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !b.PixelAt(Pos(x, y)).IsTransparent() {
				t.Errorf("in-range pixel (%d,%d) altered by clipped write", x, y)
			}
		}
	}
}

func TestBuffer_Clear(t *testing.T) {
	b := NewBuffer(Pos(5, 3))
	b.Clear(Blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if got := b.PixelAt(Pos(x, y)); got != Blue {
				t.Errorf("pixel (%d,%d) = %v after Clear(Blue)", x, y, got)
			}
		}
	}
}

func TestBuffer_Image(t *testing.T) {
	b := NewBuffer(Pos(4, 4))
	b.WritePixel(Pos(1, 2), Green)

	img := b.Image()
	if got := img.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Fatalf("image bounds = %v, want 4x4", got)
	}
	r, g, bl, a := img.At(1, 2).RGBA()
	if r != 0 || g != 0xffff || bl != 0 || a != 0xffff {
		t.Errorf("At(1,2) = (%d,%d,%d,%d), want opaque green", r, g, bl, a)
	}
	// untouched pixel stays fully transparent
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("At(0,0) alpha = %d, want 0", a)
	}
}

func TestBuffer_SavePNG(t *testing.T) {
	b := NewBuffer(Pos(16, 16))
	b.Clear(White)
	NewCircle(Pos(8, 8), 5, Black, Transparent).Draw(b)

	path := filepath.Join(t.TempDir(), "circle.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 16 || got.Dy() != 16 {
		t.Errorf("decoded bounds = %v, want 16x16", got)
	}
}

func TestBuffer_SavePNG_BadPath(t *testing.T) {
	b := NewBuffer(Pos(2, 2))
	if err := b.SavePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png")); err == nil {
		t.Error("SavePNG to a missing directory succeeded, want error")
	}
}
