package hwlib

// Circle is a circle around a center point.
//
// Draw traces the boundary with the integer midpoint algorithm, emitting
// the boundary points in Foreground with eight-fold symmetry. When
// Background is not Transparent the interior is filled by drawing a
// horizontal or vertical background line between each symmetric boundary
// pair as it is produced. The fill setup draws the horizontal diameter in
// the Foreground color and writes the top and bottom points a second
// time; this matches the established behavior of the drawable family and
// is kept for compatibility.
//
// A circle with Radius < 1 draws nothing.
type Circle struct {
	Center     XY
	Radius     int
	Foreground Color
	Background Color
}

// NewCircle creates a circle around center. Pass Transparent as bg for an
// unfilled circle.
func NewCircle(center XY, radius int, fg, bg Color) Circle {
	return Circle{Center: center, Radius: radius, Foreground: fg, Background: bg}
}

// Draw renders the circle onto w.
func (c Circle) Draw(w Window) {
	if c.Radius < 1 {
		return
	}

	fill := c.Background != Transparent

	fx := 1 - c.Radius
	ddFx := 1
	ddFy := -2 * c.Radius
	x := 0
	y := c.Radius

	// top and bottom
	w.WritePixel(c.Center.Add(Pos(0, c.Radius)), c.Foreground)
	w.WritePixel(c.Center.Add(Pos(0, -c.Radius)), c.Foreground)

	// left and right
	w.WritePixel(c.Center.Add(Pos(c.Radius, 0)), c.Foreground)
	w.WritePixel(c.Center.Add(Pos(-c.Radius, 0)), c.Foreground)

	if fill {
		// top and bottom again, then the diameter row in Foreground
		w.WritePixel(c.Center.Add(Pos(0, c.Radius)), c.Foreground)
		w.WritePixel(c.Center.Add(Pos(0, -c.Radius)), c.Foreground)

		NewLine(
			c.Center.Sub(Pos(c.Radius, 0)),
			c.Center.Add(Pos(c.Radius, 0)),
			c.Foreground,
		).Draw(w)
	}

	for x < y {
		// next outer boundary point
		if fx >= 0 {
			y--
			ddFy += 2
			fx += ddFy
		}
		x++
		ddFx += 2
		fx += ddFx

		w.WritePixel(c.Center.Add(Pos(x, y)), c.Foreground)
		w.WritePixel(c.Center.Add(Pos(-x, y)), c.Foreground)
		w.WritePixel(c.Center.Add(Pos(x, -y)), c.Foreground)
		w.WritePixel(c.Center.Add(Pos(-x, -y)), c.Foreground)
		w.WritePixel(c.Center.Add(Pos(y, x)), c.Foreground)
		w.WritePixel(c.Center.Add(Pos(-y, x)), c.Foreground)
		w.WritePixel(c.Center.Add(Pos(y, -x)), c.Foreground)
		w.WritePixel(c.Center.Add(Pos(-y, -x)), c.Foreground)

		if fill {
			NewLine(
				c.Center.Add(Pos(-x, y)),
				c.Center.Add(Pos(x, y)),
				c.Background,
			).Draw(w)
			NewLine(
				c.Center.Add(Pos(-x, -y)),
				c.Center.Add(Pos(x, -y)),
				c.Background,
			).Draw(w)
			NewLine(
				c.Center.Add(Pos(-y, x)),
				c.Center.Add(Pos(y, x)),
				c.Background,
			).Draw(w)
			NewLine(
				c.Center.Add(Pos(-y, -x)),
				c.Center.Add(Pos(y, -x)),
				c.Background,
			).Draw(w)
		}
	}
}
