package hwlib

// Window is the pixel sink every drawable renders onto.
//
// A Window must accept any coordinate without failing: clipping or
// ignoring out-of-range writes is the sink's responsibility, never the
// rasterizer's. A buffered Window commits its writes on Flush; direct
// sinks implement Flush as a no-op.
type Window interface {
	// Size returns the extent of the window in pixels.
	Size() XY

	// WritePixel commits or buffers one pixel write.
	WritePixel(p XY, c Color)

	// Flush commits buffered writes to the underlying target.
	// The rasterizers never call Flush; it is the caller's concern.
	Flush()
}

// SubWindow exposes a rectangular part of a parent window as a window of
// its own, with a translated origin. Writes outside the part are dropped.
type SubWindow struct {
	parent Window
	origin XY
	size   XY
}

// NewSubWindow creates a window covering size pixels of parent, with the
// sub-window's (0,0) mapped to origin in the parent.
func NewSubWindow(parent Window, origin, size XY) *SubWindow {
	return &SubWindow{parent: parent, origin: origin, size: size}
}

// Size returns the extent of the sub-window.
func (w *SubWindow) Size() XY { return w.size }

// WritePixel writes p translated into the parent, dropping writes that
// fall outside the sub-window.
func (w *SubWindow) WritePixel(p XY, c Color) {
	if p.X < 0 || p.X >= w.size.X || p.Y < 0 || p.Y >= w.size.Y {
		return
	}
	w.parent.WritePixel(p.Add(w.origin), c)
}

// Flush flushes the parent window.
func (w *SubWindow) Flush() { w.parent.Flush() }

// InvertWindow writes the channel-inverted color to its parent window.
// Useful for highlight and cursor effects on monochrome panels.
type InvertWindow struct {
	parent Window
}

// NewInvertWindow wraps parent so that every write is color-inverted.
func NewInvertWindow(parent Window) *InvertWindow {
	return &InvertWindow{parent: parent}
}

// Size returns the extent of the parent window.
func (w *InvertWindow) Size() XY { return w.parent.Size() }

// WritePixel writes the inverted color to the parent.
func (w *InvertWindow) WritePixel(p XY, c Color) {
	w.parent.WritePixel(p, c.Invert())
}

// Flush flushes the parent window.
func (w *InvertWindow) Flush() { w.parent.Flush() }
