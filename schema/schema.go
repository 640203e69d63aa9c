// Package schema has configs, models and chair metadata for all parts of fedcurve.
package schema

import "time"

// Observation represents one month of merged macroeconomic data.
// It pairs the unemployment rate with the year-over-year change in core CPI
// and records the Fed Chair who held office at that date.
type Observation struct {
	Date         time.Time `json:"date"`         // First day of the observation month
	Unemployment float64   `json:"unemployment"` // Unemployment rate in percent (UNRATE)
	Inflation    float64   `json:"inflation"`    // Core CPI year-over-year change in percent (CPILFESL)
	Chair        string    `json:"chair"`        // Fed Chair in office at Date
}

// Tenure maps a Fed Chair to the closed date interval of their term.
// Tenures are contiguous and non-overlapping.
type Tenure struct {
	Chair string    `json:"chair"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls within the tenure, inclusive on both ends.
func (t Tenure) Contains(d time.Time) bool {
	return !d.Before(t.Start) && !d.After(t.End)
}

// RawPoint is a single (date, value) observation from an upstream data source,
// before merging and chair assignment.
type RawPoint struct {
	Date  time.Time
	Value float64
}
