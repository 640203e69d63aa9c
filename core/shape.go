package core

import (
	"fedcurve/internal/contract"
	"fedcurve/schema"
)

// Shape is the closed polygon formed by a tenure's (unemployment, inflation)
// points. Once derived for a completed tenure it is immutable: redrawing it
// verbatim on every later frame is what keeps completed shapes from
// flickering as the dataset grows.
type Shape struct {
	Chair  string
	Points []Point
	Fill   schema.RGB
	Edge   schema.RGB
}

// deriveShape builds the shape for a chair from ALL of that chair's
// observations in the series, not just the visible prefix. Tenures with fewer
// than three points cannot form a polygon and yield no shape.
func deriveShape(series *schema.Series, chair string, fill schema.RGB) (*Shape, bool) {
	obs := series.TenureObservations(chair)
	if len(obs) < contract.MinShapePoints {
		return nil, false
	}
	points := make([]Point, len(obs))
	for i, o := range obs {
		points[i] = Point{X: o.Unemployment, Y: o.Inflation}
	}
	return &Shape{
		Chair:  chair,
		Points: points,
		Fill:   fill,
		Edge:   fill.Scale(0.5),
	}, true
}
