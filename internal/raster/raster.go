// Package raster turns scene descriptions into pixels with a 2D canvas.
// It is the only package that knows how to draw; the renderer core just
// emits scenes.
package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"fedcurve/core"
	"fedcurve/schema"
)

// Plot margins in pixels.
const (
	marginLeft   = 70.0
	marginRight  = 25.0
	marginTop    = 45.0
	marginBottom = 60.0

	axisTickStep = 2.5 // data units between grid lines and tick labels
)

// Backend rasterizes scenes at a fixed pixel size.
type Backend struct {
	width  int
	height int
	fonts  *fontCache
}

var _ core.Renderer = &Backend{} // Compile-time check

// NewBackend creates a rasterizer producing width x height images.
func NewBackend(width, height int) (*Backend, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	return &Backend{width: width, height: height, fonts: fonts}, nil
}

// Render draws the scene into a fresh RGBA image.
func (b *Backend) Render(sc *core.Scene) (*image.RGBA, error) {
	dc := gg.NewContext(b.width, b.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plot := plotArea{
		sc:     sc,
		left:   marginLeft,
		top:    marginTop,
		width:  float64(b.width) - marginLeft - marginRight,
		height: float64(b.height) - marginTop - marginBottom,
	}

	if sc.Grid {
		b.drawGrid(dc, plot)
	}
	b.drawFrameBox(dc, plot)

	for _, op := range sc.Ops {
		if err := b.drawOp(dc, plot, op); err != nil {
			return nil, err
		}
	}

	if err := b.drawAxisLabels(dc, plot); err != nil {
		return nil, err
	}
	if err := b.drawTitle(dc, plot); err != nil {
		return nil, err
	}
	if len(sc.Legend) > 0 {
		if err := b.drawLegend(dc, plot); err != nil {
			return nil, err
		}
	}
	if sc.Badge != "" {
		if err := b.drawBadge(dc, plot); err != nil {
			return nil, err
		}
	}
	if sc.PreviewStamp {
		if err := b.drawPreviewStamp(dc, plot); err != nil {
			return nil, err
		}
	}

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected canvas image type %T", dc.Image())
	}
	return img, nil
}

// plotArea maps data space to pixel space.
type plotArea struct {
	sc          *core.Scene
	left, top   float64
	width       float64
	height      float64
}

func (p plotArea) x(v float64) float64 {
	return p.left + (v-p.sc.XMin)/(p.sc.XMax-p.sc.XMin)*p.width
}

func (p plotArea) y(v float64) float64 {
	return p.top + p.height - (v-p.sc.YMin)/(p.sc.YMax-p.sc.YMin)*p.height
}

func (p plotArea) point(pt core.Point) (float64, float64) {
	return p.x(pt.X), p.y(pt.Y)
}

func setColor(dc *gg.Context, c schema.RGB, alpha float64) {
	dc.SetRGBA(c.R, c.G, c.B, alpha)
}

func (b *Backend) drawGrid(dc *gg.Context, p plotArea) {
	setColor(dc, schema.ColorGray, p.sc.GridAlpha)
	dc.SetLineWidth(1)
	for v := p.sc.XMin; v <= p.sc.XMax; v += axisTickStep {
		dc.DrawLine(p.x(v), p.top, p.x(v), p.top+p.height)
		dc.Stroke()
	}
	for v := p.sc.YMin; v <= p.sc.YMax; v += axisTickStep {
		dc.DrawLine(p.left, p.y(v), p.left+p.width, p.y(v))
		dc.Stroke()
	}
}

func (b *Backend) drawFrameBox(dc *gg.Context, p plotArea) {
	setColor(dc, schema.ColorBlack, 1)
	dc.SetLineWidth(1)
	dc.DrawRectangle(p.left, p.top, p.width, p.height)
	dc.Stroke()
}

func (b *Backend) drawOp(dc *gg.Context, p plotArea, op core.Op) error {
	switch o := op.(type) {
	case core.PolygonOp:
		if len(o.Points) < 2 {
			return nil
		}
		dc.NewSubPath()
		for i, pt := range o.Points {
			x, y := p.point(pt)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		setColor(dc, o.Fill, o.FillAlpha)
		dc.FillPreserve()
		setColor(dc, o.Edge, 1)
		dc.SetLineWidth(o.EdgeWidth)
		dc.Stroke()

	case core.PolylineOp:
		if len(o.Points) < 2 {
			return nil
		}
		for i, pt := range o.Points {
			x, y := p.point(pt)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		setColor(dc, o.Color, o.Alpha)
		dc.SetLineWidth(o.Width)
		dc.Stroke()

	case core.MarkersOp:
		radius := markerRadius(o.Size)
		for _, pt := range o.Points {
			x, y := p.point(pt)
			dc.DrawCircle(x, y, radius)
			setColor(dc, o.Color, o.Alpha)
			dc.FillPreserve()
			setColor(dc, o.EdgeColor, 1)
			dc.SetLineWidth(o.EdgeWidth)
			dc.Stroke()
		}

	case core.RingOp:
		x, y := p.point(o.At)
		dc.DrawCircle(x, y, markerRadius(o.Size))
		setColor(dc, o.Color, 1)
		dc.SetLineWidth(o.Width)
		dc.Stroke()

	case core.RectOp:
		// Rect is anchored at its lower-left corner in data space.
		x := p.x(o.X)
		y := p.y(o.Y + o.H)
		w := p.x(o.X+o.W) - x
		h := p.y(o.Y) - y
		dc.DrawRectangle(x, y, w, h)
		setColor(dc, o.Fill, o.FillAlpha)
		dc.FillPreserve()
		setColor(dc, o.Edge, 1)
		dc.SetLineWidth(o.EdgeWidth)
		dc.Stroke()

	case core.TextOp:
		face, err := b.fonts.face(o.Size, o.Bold)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
		setColor(dc, o.Color, o.Alpha)
		x, y := p.point(o.At)
		if o.Centered {
			dc.DrawStringAnchored(o.Text, x, y, 0.5, 0.35)
		} else {
			dc.DrawString(o.Text, x, y)
		}

	case core.AnnotationOp:
		if err := b.drawAnnotation(dc, p, o); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown scene op %T", op)
	}
	return nil
}

// drawAnnotation draws the label text and an arrow to the annotated point.
func (b *Backend) drawAnnotation(dc *gg.Context, p plotArea, o core.AnnotationOp) error {
	face, err := b.fonts.face(10, true)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	setColor(dc, schema.ColorBlack, 1)

	tx, ty := p.point(o.TextAt)
	dc.DrawString(o.Text, tx, ty)

	ax, ay := p.point(o.At)
	// Start the arrow just left of the text, pointing at the observation.
	sx, sy := tx-4, ty-4
	dc.SetLineWidth(2)
	dc.DrawLine(sx, sy, ax, ay)
	dc.Stroke()

	// Arrowhead: two short strokes back along the shaft.
	angle := math.Atan2(ay-sy, ax-sx)
	const headLen = 8.0
	for _, spread := range []float64{0.5, -0.5} {
		hx := ax - headLen*math.Cos(angle+spread)
		hy := ay - headLen*math.Sin(angle+spread)
		dc.DrawLine(ax, ay, hx, hy)
		dc.Stroke()
	}
	return nil
}

func (b *Backend) drawAxisLabels(dc *gg.Context, p plotArea) error {
	face, err := b.fonts.face(11, false)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	setColor(dc, schema.ColorBlack, 1)

	// Tick labels.
	for v := p.sc.XMin; v <= p.sc.XMax; v += axisTickStep {
		dc.DrawStringAnchored(trimFloat(v), p.x(v), p.top+p.height+14, 0.5, 0.5)
	}
	for v := p.sc.YMin; v <= p.sc.YMax; v += axisTickStep {
		dc.DrawStringAnchored(trimFloat(v), p.left-16, p.y(v), 1, 0.35)
	}

	// Axis titles.
	if p.sc.XLabel != "" {
		dc.DrawStringAnchored(p.sc.XLabel, p.left+p.width/2, p.top+p.height+38, 0.5, 0.5)
	}
	if p.sc.YLabel != "" {
		dc.Push()
		dc.RotateAbout(-math.Pi/2, 18, p.top+p.height/2)
		dc.DrawStringAnchored(p.sc.YLabel, 18, p.top+p.height/2, 0.5, 0.5)
		dc.Pop()
	}
	return nil
}

func (b *Backend) drawTitle(dc *gg.Context, p plotArea) error {
	if p.sc.Title == "" {
		return nil
	}
	face, err := b.fonts.face(13, true)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	setColor(dc, schema.ColorBlack, 1)
	dc.DrawStringAnchored(p.sc.Title, p.left+p.width/2, marginTop/2, 0.5, 0.5)
	return nil
}

// drawLegend renders the legend box in the upper-left corner of the plot.
func (b *Backend) drawLegend(dc *gg.Context, p plotArea) error {
	face, err := b.fonts.face(9, false)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	const (
		pad       = 8.0
		rowHeight = 15.0
		swatchR   = 4.0
	)

	maxLabel := 0.0
	for _, e := range p.sc.Legend {
		if w, _ := dc.MeasureString(e.Label); w > maxLabel {
			maxLabel = w
		}
	}
	boxW := pad + 2*swatchR + 6 + maxLabel + pad
	boxH := pad + rowHeight*float64(len(p.sc.Legend)) + pad/2

	x := p.left + 6
	y := p.top + 6
	dc.DrawRectangle(x, y, boxW, boxH)
	setColor(dc, schema.ColorWhite, 0.85)
	dc.FillPreserve()
	setColor(dc, schema.ColorGray, 1)
	dc.SetLineWidth(1)
	dc.Stroke()

	for i, e := range p.sc.Legend {
		rowY := y + pad + rowHeight*float64(i) + rowHeight/2
		dc.DrawCircle(x+pad+swatchR, rowY, swatchR)
		setColor(dc, e.Color, 1)
		dc.Fill()
		setColor(dc, schema.ColorBlack, 1)
		dc.DrawStringAnchored(e.Label, x+pad+2*swatchR+6, rowY, 0, 0.35)
	}
	return nil
}

// drawBadge renders the large semi-transparent date label in the top-right
// corner of the plot.
func (b *Backend) drawBadge(dc *gg.Context, p plotArea) error {
	face, err := b.fonts.face(24, true)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	w, h := dc.MeasureString(p.sc.Badge)
	const pad = 10.0
	x := p.left + p.width - w - 2*pad - 6
	y := p.top + 6

	dc.DrawRoundedRectangle(x, y, w+2*pad, h+2*pad, 6)
	setColor(dc, schema.ColorWhite, 0.8)
	dc.FillPreserve()
	setColor(dc, schema.ColorGray, 1)
	dc.SetLineWidth(1)
	dc.Stroke()

	setColor(dc, schema.ColorBlack, 0.7)
	dc.DrawStringAnchored(p.sc.Badge, x+pad+w/2, y+pad+h/2, 0.5, 0.35)
	return nil
}

// drawPreviewStamp renders the PREVIEW banner in the top-left corner.
func (b *Backend) drawPreviewStamp(dc *gg.Context, p plotArea) error {
	face, err := b.fonts.face(16, true)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	const label = "PREVIEW"
	w, h := dc.MeasureString(label)
	const pad = 6.0
	x := p.left + 6
	y := p.top + p.height*0.02

	dc.DrawRoundedRectangle(x, y, w+2*pad, h+2*pad, 4)
	setColor(dc, schema.ColorWhite, 0.9)
	dc.FillPreserve()
	setColor(dc, schema.ColorRed, 1)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	setColor(dc, schema.ColorRed, 0.8)
	dc.DrawStringAnchored(label, x+pad+w/2, y+pad+h/2, 0.5, 0.35)
	return nil
}

// markerRadius converts an area-style marker size into a pixel radius.
func markerRadius(size float64) float64 {
	return math.Sqrt(size / math.Pi)
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
