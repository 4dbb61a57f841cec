package hwlib

// XY is a location or a distance in integer pixel coordinates.
// It is an immutable value type: all methods return a new XY.
type XY struct {
	X, Y int
}

// Pos is a convenience function to create an XY.
func Pos(x, y int) XY {
	return XY{X: x, Y: y}
}

// Add returns the component-wise sum of two coordinates.
func (a XY) Add(b XY) XY {
	return XY{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (a XY) Sub(b XY) XY {
	return XY{X: a.X - b.X, Y: a.Y - b.Y}
}

// Neg returns the coordinate with both components negated.
func (a XY) Neg() XY {
	return XY{X: -a.X, Y: -a.Y}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
