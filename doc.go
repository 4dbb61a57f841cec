// Package hwlib provides an integer-only 2D rasterization layer for small
// display hardware.
//
// # Overview
//
// hwlib converts shape descriptions (lines, circles, text) into individual
// pixel writes against a Window, using only integer arithmetic so it can
// run on microcontrollers with kilobytes of RAM. There is no anti-aliasing,
// no sub-pixel precision and no blending: every write is an opaque replace.
//
// # Quick Start
//
//	import "github.com/OscarKro/hwlib"
//
//	// Create an in-memory framebuffer
//	buf := hwlib.NewBuffer(hwlib.Pos(128, 64))
//	buf.Clear(hwlib.White)
//
//	// Draw shapes
//	hwlib.NewLine(hwlib.Pos(0, 0), hwlib.Pos(127, 63), hwlib.Black).Draw(buf)
//	hwlib.NewCircle(hwlib.Pos(64, 32), 20, hwlib.Black, hwlib.Transparent).Draw(buf)
//
//	// Save to PNG
//	buf.SavePNG("output.png")
//
// # Architecture
//
// The library is organized around two small contracts:
//   - Window: the pixel sink. Concrete sinks (Buffer, RGB565Buffer,
//     ImageWindow) own clipping and buffering; decorators (SubWindow,
//     InvertWindow) compose on top of any sink.
//   - Drawable: anything that can render itself onto a Window. The
//     rasterizers never pre-clip; coordinates pass through to the sink.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. All
// coordinates are signed integers.
package hwlib
