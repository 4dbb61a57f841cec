// Command hwdemo renders a demo scene with the hwlib drawables and saves
// it as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/OscarKro/hwlib"
)

func main() {
	var (
		width   = flag.Int("width", 320, "image width")
		height  = flag.Int("height", 240, "image height")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		hwlib.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	buf := hwlib.NewBuffer(hwlib.Pos(*width, *height))
	buf.Clear(hwlib.White)

	drawScene(buf)

	if err := buf.SavePNG(*output); err != nil {
		log.Fatalf("save %s: %v", *output, err)
	}
	log.Printf("demo saved to %s (%dx%d)", *output, *width, *height)
}

func drawScene(w hwlib.Window) {
	size := w.Size()
	center := hwlib.Pos(size.X/2, size.Y/2)

	scene := []hwlib.Drawable{
		// frame
		hwlib.NewLine(hwlib.Pos(0, 0), hwlib.Pos(size.X-1, 0), hwlib.Black),
		hwlib.NewLine(hwlib.Pos(size.X-1, 0), hwlib.Pos(size.X-1, size.Y-1), hwlib.Black),
		hwlib.NewLine(hwlib.Pos(size.X-1, size.Y-1), hwlib.Pos(0, size.Y-1), hwlib.Black),
		hwlib.NewLine(hwlib.Pos(0, size.Y-1), hwlib.Pos(0, 0), hwlib.Black),

		// diagonals
		hwlib.NewLine(hwlib.Pos(0, 0), center, hwlib.Gray),
		hwlib.NewLine(hwlib.Pos(size.X-1, 0), center, hwlib.Gray),

		// stroked and filled circles
		hwlib.NewCircle(center, size.Y/3, hwlib.Blue, hwlib.Transparent),
		hwlib.NewCircle(center, size.Y/5, hwlib.Red, hwlib.Yellow),

		hwlib.NewText(hwlib.Pos(8, 8), "hwlib demo", hwlib.Black),
	}
	for _, d := range scene {
		d.Draw(w)
	}

	// the same circle again, color-inverted in a sub-window
	part := hwlib.NewSubWindow(w, hwlib.Pos(8, size.Y-72), hwlib.Pos(64, 64))
	hwlib.NewCircle(hwlib.Pos(32, 32), 20, hwlib.Red.Invert(), hwlib.Transparent).
		Draw(hwlib.NewInvertWindow(part))

	w.Flush()
}
