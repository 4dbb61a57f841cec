package hwlib

// Line is a straight line segment between two points.
//
// Draw emits the 8-connected Bresenham approximation of the segment.
// The end point itself is never written: a closed outline built from
// consecutive segments does not double-draw shared corners. A line with
// Start == End therefore emits nothing.
type Line struct {
	Start, End XY
	Foreground Color
}

// NewLine creates a line from start to end in the given color.
func NewLine(start, end XY, fg Color) Line {
	return Line{Start: start, End: end, Foreground: fg}
}

// Draw renders the line onto w.
func (l Line) Draw(w Window) {
	x0, y0 := l.Start.X, l.Start.Y
	x1, y1 := l.End.X, l.End.Y

	dx := x1 - x0
	dy := y1 - y0

	// Transpose steep lines so the loop always advances along the axis
	// with the larger delta.
	steep := abs(dy) >= abs(dx)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		dx = x1 - x0
		dy = y1 - y0
	}

	xstep := 1
	if dx < 0 {
		xstep = -1
		dx = -dx
	}
	ystep := 1
	if dy < 0 {
		ystep = -1
		dy = -dy
	}

	twoDy := 2 * dy
	twoDyTwoDx := twoDy - 2*dx
	e := twoDy - dx

	y := y0
	for x := x0; x != x1; x += xstep {
		if steep {
			w.WritePixel(Pos(y, x), l.Foreground)
		} else {
			w.WritePixel(Pos(x, y), l.Foreground)
		}
		if e > 0 {
			e += twoDyTwoDx
			y += ystep
		} else {
			e += twoDy
		}
	}
}
