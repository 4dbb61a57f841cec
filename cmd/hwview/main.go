// Command hwview renders the hwlib demo scene into an in-memory buffer
// and displays it in a window, scaled up so individual pixels are
// visible. Useful for eyeballing rasterizer output without flashing a
// board.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OscarKro/hwlib"
)

const pixelScale = 4

type viewer struct {
	frame *ebiten.Image
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.frame.Bounds().Dx(), v.frame.Bounds().Dy()
}

func main() {
	var (
		width  = flag.Int("width", 160, "buffer width in pixels")
		height = flag.Int("height", 120, "buffer height in pixels")
	)
	flag.Parse()

	buf := hwlib.NewBuffer(hwlib.Pos(*width, *height))
	buf.Clear(hwlib.White)
	drawScene(buf)

	v := &viewer{frame: ebiten.NewImageFromImage(buf.Image())}

	ebiten.SetWindowSize(*width*pixelScale, *height*pixelScale)
	ebiten.SetWindowTitle("hwlib viewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func drawScene(w hwlib.Window) {
	size := w.Size()
	center := hwlib.Pos(size.X/2, size.Y/2)

	for _, d := range []hwlib.Drawable{
		hwlib.NewCircle(center, size.Y/3, hwlib.Black, hwlib.Cyan),
		hwlib.NewCircle(center, size.Y/2-2, hwlib.Blue, hwlib.Transparent),
		hwlib.NewLine(hwlib.Pos(0, 0), center, hwlib.Red),
		hwlib.NewLine(hwlib.Pos(size.X-1, 0), center, hwlib.Red),
		hwlib.NewText(hwlib.Pos(4, 4), "hwlib", hwlib.Black),
	} {
		d.Draw(w)
	}
	w.Flush()
}
