package hwlib

// RGB565Buffer is a packed 16-bit framebuffer in the 5-6-5 layout used
// by most small TFT panels, stored low byte first. It implements Window
// and is intended as the staging buffer for an SPI or parallel display
// driver: render into it, then hand Raw to the driver's bulk transfer.
//
// Transparent writes are dropped: the packed format has no way to
// represent the sentinel.
type RGB565Buffer struct {
	size   XY
	stride int // bytes per row
	pix    []byte
}

// NewRGB565Buffer creates a zeroed buffer of the given size.
func NewRGB565Buffer(size XY) *RGB565Buffer {
	stride := size.X * 2
	return &RGB565Buffer{
		size:   size,
		stride: stride,
		pix:    make([]byte, stride*size.Y),
	}
}

// Size returns the extent of the buffer in pixels.
func (b *RGB565Buffer) Size() XY { return b.size }

// Stride returns the number of bytes per row.
func (b *RGB565Buffer) Stride() int { return b.stride }

// Raw returns the backing pixel storage.
func (b *RGB565Buffer) Raw() []byte { return b.pix }

// WritePixel sets one pixel. Out-of-range coordinates and Transparent
// are ignored.
func (b *RGB565Buffer) WritePixel(p XY, c Color) {
	if c.IsTransparent() {
		return
	}
	if p.X < 0 || p.X >= b.size.X || p.Y < 0 || p.Y >= b.size.Y {
		return
	}
	v := c.RGB565()
	off := p.Y*b.stride + p.X*2
	b.pix[off] = byte(v)
	b.pix[off+1] = byte(v >> 8)
}

// PixelAt returns the packed value of one pixel. Out-of-range
// coordinates return 0.
func (b *RGB565Buffer) PixelAt(p XY) uint16 {
	if p.X < 0 || p.X >= b.size.X || p.Y < 0 || p.Y >= b.size.Y {
		return 0
	}
	off := p.Y*b.stride + p.X*2
	return uint16(b.pix[off]) | uint16(b.pix[off+1])<<8
}

// Clear fills the entire buffer with a color.
func (b *RGB565Buffer) Clear(c Color) {
	v := c.RGB565()
	lo, hi := byte(v), byte(v>>8)
	for i := 0; i < len(b.pix); i += 2 {
		b.pix[i] = lo
		b.pix[i+1] = hi
	}
}

// Flush implements Window. The buffer has no underlying target.
func (b *RGB565Buffer) Flush() {
	Logger().Debug("hwlib: rgb565 buffer flush", "width", b.size.X, "height", b.size.Y)
}
