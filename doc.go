// Package px is a software rasterizer that draws directly into a
// caller-supplied pixel buffer.
//
// # Overview
//
// px has no GPU, window or OS surface dependency. A [Canvas] wraps a
// []uint32 store, one packed [Color] per pixel, and every drawing operation
// writes straight into that store. The host application decides what to do
// with the pixels: hand them to its own display loop, or encode them with
// the ppm sub-package.
//
// # Quick Start
//
//	import "github.com/gogpu/px"
//
//	buf := make([]uint32, 256*256)
//	c, err := px.NewCanvas(buf, 256, 256)
//	if err != nil {
//	    return err
//	}
//	c.Clear(px.Black)
//	c.FillRect(80, 40, 128, 192, px.Green)
//	c.OutlineCircle(128, 128, 60, px.Yellow)
//
// # Pixel Format
//
// Each pixel is a uint32 laid out as 0x00RRGGBB: red in bits 16-23, green
// in bits 8-15, blue in bits 0-7 and a zero top byte. Rows are stored top to
// bottom with no padding. The ppm encoder writes the channels in that order.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left by default
//   - X increases right
//   - Y increases down
//   - [WithOrigin] and [WithCenterOrigin] move the logical origin, so
//     negative coordinates can address the left and top of the canvas
//
// Every drawing operation clips per pixel. Geometry that is partly or fully
// off-canvas is never an error.
//
// # Turtle Graphics
//
// A [Pen] borrows a Canvas and draws with relative movement commands:
//
//	pen := c.Pen()
//	pen.SetPosition(64, 64).Repeat(6, func(p *px.Pen) {
//	    p.Forward(40).TurnRight(60)
//	})
//
// [Pen.State] and [Pen.SetState] snapshot and restore the pen exactly,
// which is how recursive drawings keep sibling branches independent.
//
// # Concurrency
//
// Canvas and Pen are not safe for concurrent use. Callers that share a
// canvas between goroutines must serialize access themselves.
package px

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
