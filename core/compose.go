package core

import (
	"fmt"

	"fedcurve/schema"
)

// Fixed chart furniture shared by every frame.
const (
	axisMin = 0.0
	axisMax = 15.0

	xAxisLabel = "Unemployment Rate (%)"
	yAxisLabel = "Core CPI YoY (%)"

	badgeDateFormat = "Jan 2006"
	titleDateFormat = "2006-01"
)

// Dual-mandate target box: 2% inflation, 4-6% unemployment.
const (
	targetBoxX = 4.0
	targetBoxY = 2.0
	targetBoxW = 2.0
	targetBoxH = 1.0
)

// baseScene returns a scene with the fixed axis limits, labels and grid that
// every frame redraws.
func (s *Session) baseScene() *Scene {
	return &Scene{
		XLabel:    xAxisLabel,
		YLabel:    yAxisLabel,
		XMin:      axisMin,
		XMax:      axisMax,
		YMin:      axisMin,
		YMax:      axisMax,
		Grid:      true,
		GridAlpha: 0.3,
	}
}

// targetBoxOps draws the Fed dual-mandate target zone.
func targetBoxOps() []Op {
	return []Op{
		RectOp{
			X: targetBoxX, Y: targetBoxY, W: targetBoxW, H: targetBoxH,
			Fill: schema.ColorGray, FillAlpha: 0.5,
			Edge: schema.ColorBlack, EdgeWidth: 2,
		},
		TextOp{
			At:       Point{X: targetBoxX + targetBoxW/2, Y: targetBoxY + targetBoxH/2},
			Text:     "Fed Target",
			Size:     8,
			Bold:     true,
			Alpha:    1.0,
			Color:    schema.ColorBlack,
			Centered: true,
		},
	}
}

// hereAnnotation points at the final observation with a fixed offset.
func hereAnnotation(final schema.Observation) Op {
	return AnnotationOp{
		Text:   "We are here",
		At:     Point{X: final.Unemployment, Y: final.Inflation},
		TextAt: Point{X: final.Unemployment + 1.5, Y: final.Inflation + 1},
	}
}

// composeStandard builds the scene for a standard animation frame.
func (s *Session) composeStandard(st frameState) *Scene {
	sc := s.baseScene()
	sc.Ops = append(sc.Ops, targetBoxOps()...)

	// Completed tenures render as their memoized filled shapes. Tenures that
	// completed with fewer than three points have no shape and draw nothing.
	for _, chair := range st.completed {
		sh, ok := s.shapes[chair]
		if !ok {
			continue
		}
		sc.Ops = append(sc.Ops, PolygonOp{
			Points:    sh.Points,
			Fill:      sh.Fill,
			FillAlpha: 0.3,
			Edge:      sh.Edge,
			EdgeWidth: 2,
		})
	}

	// In-progress tenures render as a connected line plus point markers over
	// only the visible portion.
	for _, chair := range st.inProgress {
		points := visiblePoints(st.visible, chair)
		color := s.colorFor(chair)
		if len(points) > 1 {
			sc.Ops = append(sc.Ops, PolylineOp{
				Points: points,
				Color:  color,
				Width:  2,
				Alpha:  0.8,
			})
		}
		sc.Ops = append(sc.Ops, MarkersOp{
			Points:    points,
			Color:     color,
			Size:      30,
			Alpha:     0.9,
			EdgeColor: schema.ColorWhite,
			EdgeWidth: 1,
		})
	}

	// Pulsing ring on the newest revealed observation.
	if st.highlight != nil {
		sc.Ops = append(sc.Ops, RingOp{
			At:    Point{X: st.highlight.Unemployment, Y: st.highlight.Inflation},
			Color: s.colorFor(st.highlight.Chair),
			Size:  50,
			Width: 3,
		})
	}

	if st.final {
		if final, ok := s.series.Last(); ok {
			sc.Ops = append(sc.Ops, hereAnnotation(final))
		}
	}

	current := st.visible[len(st.visible)-1]
	sc.Badge = current.Date.Format(badgeDateFormat)
	sc.Title = fmt.Sprintf("Phillips Curve Path - %s (%s)", current.Date.Format(titleDateFormat), current.Chair)
	sc.Legend = s.legendEntries(st)
	return sc
}

// composePreview builds the static preview scene: every tenure of the full
// dataset that is large enough for a polygon, independent of frame
// progression. Shapes are derived on the fly and never stored in the
// completed-shapes cache.
func (s *Session) composePreview() *Scene {
	sc := s.baseScene()
	sc.Ops = append(sc.Ops, targetBoxOps()...)

	for _, chair := range s.order {
		sh, ok := deriveShape(s.series, chair, s.colorFor(chair))
		if !ok {
			continue
		}
		sc.Ops = append(sc.Ops, PolygonOp{
			Points:    sh.Points,
			Fill:      sh.Fill,
			FillAlpha: 0.3,
			Edge:      sh.Edge,
			EdgeWidth: 2,
		})
	}

	final, _ := s.series.Last()
	sc.Ops = append(sc.Ops, hereAnnotation(final))
	sc.PreviewStamp = true
	sc.Badge = final.Date.Format(badgeDateFormat)

	first := s.series.At(0)
	sc.Title = fmt.Sprintf("Phillips Curve Evolution by Fed Chair (%d-%d)", first.Date.Year(), final.Date.Year())

	// The preview legend lists every configured chair.
	for _, chair := range s.order {
		sc.Legend = append(sc.Legend, LegendEntry{Label: chair, Color: s.colorFor(chair)})
	}
	return sc
}

// legendEntries restricts the legend to tenures that are visible or completed
// in this frame, in term order.
func (s *Session) legendEntries(st frameState) []LegendEntry {
	include := make(map[string]bool, len(st.completed)+len(st.inProgress))
	for _, chair := range st.completed {
		include[chair] = true
	}
	for _, chair := range st.inProgress {
		include[chair] = true
	}

	var entries []LegendEntry
	for _, chair := range s.order {
		if include[chair] {
			entries = append(entries, LegendEntry{Label: chair, Color: s.colorFor(chair)})
		}
	}
	return entries
}

// visiblePoints projects the visible observations of one chair into data
// space.
func visiblePoints(visible []schema.Observation, chair string) []Point {
	var points []Point
	for _, o := range visible {
		if o.Chair == chair {
			points = append(points, Point{X: o.Unemployment, Y: o.Inflation})
		}
	}
	return points
}
