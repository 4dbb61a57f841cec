package hwlib

import (
	"image/color"
	"image/draw"
)

// ImageWindow adapts any draw.Image to the Window interface so the
// drawables can render straight into standard library images.
//
// Clipping against the image bounds is done by the image itself.
// Transparent writes are dropped: a plain image has no sentinel pixel.
type ImageWindow struct {
	img draw.Image
}

// NewImageWindow wraps img as a Window. Window coordinate (0,0) maps to
// the minimum point of the image bounds.
func NewImageWindow(img draw.Image) *ImageWindow {
	return &ImageWindow{img: img}
}

// Size returns the extent of the image bounds.
func (w *ImageWindow) Size() XY {
	b := w.img.Bounds()
	return Pos(b.Dx(), b.Dy())
}

// WritePixel sets one image pixel.
func (w *ImageWindow) WritePixel(p XY, c Color) {
	if c.IsTransparent() {
		return
	}
	b := w.img.Bounds()
	w.img.Set(b.Min.X+p.X, b.Min.Y+p.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Flush implements Window. Images need no flushing.
func (w *ImageWindow) Flush() {}
