// Package core implements the frame-by-frame rendering state machine for the
// Phillips curve animation.
package core

import "fedcurve/schema"

// Point is a position in data space (unemployment on X, inflation on Y).
type Point struct {
	X, Y float64
}

// Scene is a backend-independent description of one rendered frame.
// The renderer core only ever emits scenes; rasterization is a separate
// concern behind the Renderer interface.
type Scene struct {
	Title  string
	XLabel string
	YLabel string

	// Fixed data-space bounds, redrawn every frame.
	XMin, XMax float64
	YMin, YMax float64

	Grid      bool
	GridAlpha float64

	Ops    []Op
	Legend []LegendEntry

	// Badge is the large semi-transparent date label in the corner.
	Badge string

	// PreviewStamp marks the frame with the PREVIEW banner.
	PreviewStamp bool
}

// LegendEntry is one swatch in the frame legend.
type LegendEntry struct {
	Label string
	Color schema.RGB
}

// Op is a single drawing operation in data space.
type Op interface {
	op()
}

// PolygonOp fills a closed polygon, used for completed tenure shapes.
type PolygonOp struct {
	Points    []Point
	Fill      schema.RGB
	FillAlpha float64
	Edge      schema.RGB
	EdgeWidth float64
}

// PolylineOp draws a connected line through the points.
type PolylineOp struct {
	Points []Point
	Color  schema.RGB
	Width  float64
	Alpha  float64
}

// MarkersOp draws filled circular markers at each point.
type MarkersOp struct {
	Points    []Point
	Color     schema.RGB
	Size      float64
	Alpha     float64
	EdgeColor schema.RGB
	EdgeWidth float64
}

// RingOp draws an unfilled circle outline, used for the pulsing highlight on
// the newest observation.
type RingOp struct {
	At    Point
	Color schema.RGB
	Size  float64
	Width float64
}

// RectOp draws a rectangle anchored at its lower-left corner, used for the
// dual-mandate target box.
type RectOp struct {
	X, Y, W, H float64
	Fill       schema.RGB
	FillAlpha  float64
	Edge       schema.RGB
	EdgeWidth  float64
}

// TextOp places a text label at a data-space position.
type TextOp struct {
	At       Point
	Text     string
	Size     float64
	Bold     bool
	Alpha    float64
	Color    schema.RGB
	Centered bool
}

// AnnotationOp draws text with an arrow pointing from the text position to
// the target position.
type AnnotationOp struct {
	Text   string
	At     Point // Arrow head (the annotated observation)
	TextAt Point // Text anchor
}

func (PolygonOp) op()    {}
func (PolylineOp) op()   {}
func (MarkersOp) op()    {}
func (RingOp) op()       {}
func (RectOp) op()       {}
func (TextOp) op()       {}
func (AnnotationOp) op() {}
