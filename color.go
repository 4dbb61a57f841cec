package hwlib

// Color is an opaque RGB value as used by small displays.
// Colors compare with ==; the zero Color is opaque black.
//
// Transparent is a distinguished sentinel, not an alpha channel: a
// drawable that receives Transparent as its background color skips its
// fill pass. There is no blending model beyond opaque replace.
type Color struct {
	R, G, B uint8

	// nonzero marks the transparent sentinel
	t uint8
}

// RGB creates an opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
	Gray    = RGB(128, 128, 128)

	// Transparent requests "no drawing" where a background color is
	// expected. Writing it to a sink is allowed; what a sink does with
	// it is the sink's own policy.
	Transparent = Color{t: 1}
)

// IsTransparent reports whether c is the Transparent sentinel.
func (c Color) IsTransparent() bool {
	return c.t != 0
}

// Invert returns the channel-wise inverted color.
// Transparent inverts to itself.
func (c Color) Invert() Color {
	if c.t != 0 {
		return c
	}
	return RGB(^c.R, ^c.G, ^c.B)
}

// RGB565 packs the color into the 16-bit 5-6-5 layout used by most
// small TFT panels.
func (c Color) RGB565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}
