package hwlib

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Buffer is an in-memory framebuffer implementing Window.
//
// Writes are clipped to the buffer extent; pixels never written hold
// Transparent. Buffer is a plain memory sink, so Flush is a no-op beyond
// a debug log line.
type Buffer struct {
	size XY
	pix  []Color
}

// NewBuffer creates a buffer of the given size. Every pixel starts out
// Transparent.
func NewBuffer(size XY) *Buffer {
	b := &Buffer{
		size: size,
		pix:  make([]Color, size.X*size.Y),
	}
	// the zero Color is opaque black, not the sentinel
	b.Clear(Transparent)
	return b
}

// Size returns the extent of the buffer in pixels.
func (b *Buffer) Size() XY { return b.size }

// WritePixel sets one pixel. Out-of-range coordinates are ignored.
func (b *Buffer) WritePixel(p XY, c Color) {
	if p.X < 0 || p.X >= b.size.X || p.Y < 0 || p.Y >= b.size.Y {
		return
	}
	b.pix[p.Y*b.size.X+p.X] = c
}

// PixelAt returns the color of one pixel. Out-of-range coordinates
// return Transparent.
func (b *Buffer) PixelAt(p XY) Color {
	if p.X < 0 || p.X >= b.size.X || p.Y < 0 || p.Y >= b.size.Y {
		return Transparent
	}
	return b.pix[p.Y*b.size.X+p.X]
}

// Clear fills the entire buffer with a color.
func (b *Buffer) Clear(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Flush implements Window. The buffer has no underlying target.
func (b *Buffer) Flush() {
	Logger().Debug("hwlib: buffer flush", "width", b.size.X, "height", b.size.Y)
}

// Image converts the buffer to an image.RGBA. Transparent pixels become
// fully transparent image pixels.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.size.X, b.size.Y))
	for y := 0; y < b.size.Y; y++ {
		for x := 0; x < b.size.X; x++ {
			c := b.pix[y*b.size.X+x]
			if c.IsTransparent() {
				continue
			}
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	Logger().Debug("hwlib: saving buffer", "path", path)
	return png.Encode(f, b.Image())
}
