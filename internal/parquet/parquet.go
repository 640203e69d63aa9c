// Package parquet exports the merged observation table to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"fedcurve/schema"
)

// ObservationRow is the Parquet projection of one merged observation.
type ObservationRow struct {
	// Date is the observation month (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"date,snappy"`

	// Unemployment is the unemployment rate in percent
	Unemployment float64 `parquet:"unemployment,snappy"`

	// Inflation is the core CPI year-over-year change in percent
	Inflation float64 `parquet:"inflation,snappy"`

	// Chair is the Fed Chair in office at Date
	Chair string `parquet:"chair,snappy"`
}

// WriteObservationsParquet writes the observation table to a Parquet file.
func WriteObservationsParquet(obs []schema.Observation, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ObservationRow struct tags.
	writer := parquet.NewGenericWriter[ObservationRow](file)
	defer func() { _ = writer.Close() }()

	rows := make([]ObservationRow, len(obs))
	for i, o := range obs {
		rows[i] = ObservationRow{
			Date:         o.Date,
			Unemployment: o.Unemployment,
			Inflation:    o.Inflation,
			Chair:        o.Chair,
		}
	}

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
