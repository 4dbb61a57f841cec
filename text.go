package hwlib

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text draws a string in the fixed-cell 7x13 basic font.
//
// Start is the top-left corner of the first glyph cell. A '\n' in the
// string moves the pen back to the start column and down one line.
// Glyph coverage is thresholded to on/off pixel writes; there is no
// anti-aliasing. Runes the face cannot render are skipped.
type Text struct {
	Start      XY
	Content    string
	Foreground Color
}

// NewText creates a text drawable at start.
func NewText(start XY, content string, fg Color) Text {
	return Text{Start: start, Content: content, Foreground: fg}
}

// Draw renders the text onto w.
func (t Text) Draw(w Window) {
	face := basicfont.Face7x13
	metrics := face.Metrics()

	dot := fixed.P(t.Start.X, t.Start.Y+metrics.Ascent.Ceil())
	for _, r := range t.Content {
		if r == '\n' {
			dot.X = fixed.I(t.Start.X)
			dot.Y += metrics.Height
			continue
		}
		dot.X += drawGlyph(w, face, dot, r, t.Foreground)
	}
}

// drawGlyph writes one glyph's opaque coverage to w and returns the pen
// advance.
func drawGlyph(w Window, face font.Face, dot fixed.Point26_6, r rune, fg Color) fixed.Int26_6 {
	dr, mask, maskp, advance, ok := face.Glyph(dot, r)
	if !ok {
		return 0
	}
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			m := mask.At(maskp.X+x, maskp.Y+y)
			if _, _, _, a := m.RGBA(); a >= 0x8000 {
				w.WritePixel(Pos(dr.Min.X+x, dr.Min.Y+y), fg)
			}
		}
	}
	return advance
}
