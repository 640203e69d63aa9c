package outwriter

import (
	"encoding/csv"
	"io"

	"fedcurve/internal/contract"
	"fedcurve/schema"
)

// writeJSONResultsForSeries marshals the observation table to JSON and writes it.
func writeJSONResultsForSeries(w io.Writer, obs []schema.Observation) error {
	return writeJSON(w, obs)
}

// writeCSVResultsForSeries writes the observation table to a CSV writer.
func writeCSVResultsForSeries(w *csv.Writer, obs []schema.Observation, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"date",
		"unemployment",
		"inflation",
		"chair",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, o := range obs {
		row := []string{
			o.Date.Format(contract.DateFormat),
			fmtFloat(o.Unemployment),
			fmtFloat(o.Inflation),
			o.Chair,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
