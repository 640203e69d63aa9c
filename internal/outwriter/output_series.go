package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"fedcurve/internal/contract"
	"fedcurve/internal/parquet"
	"fedcurve/schema"
)

// PrintSeriesResults outputs the merged observation table, dispatching based
// on the output format configured.
func PrintSeriesResults(series *schema.Series, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)
	obs := series.Observations()

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSeries(obs, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSeries(obs, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("parquet output requires --output-file")
		}
		if err := parquet.WriteObservationsParquet(obs, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet observations to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		if err := printSeriesTable(series, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing series table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForSeries handles opening the file and calling the JSON writer.
func printJSONResultsForSeries(obs []schema.Observation, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSeries(w, obs)
	}, "Wrote JSON observations")
}

// printCSVResultsForSeries handles opening the file and calling the CSV writer.
func printCSVResultsForSeries(obs []schema.Observation, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForSeries(csvWriter, obs, fmtFloat)
	}, "Wrote CSV observations")
}

// printSeriesTable prints the observation table in a four-column table.
func printSeriesTable(series *schema.Series, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Date", "Unemployment %", "Core CPI YoY %", "Chair"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Date + numeric columns + borders take ~46 columns; the chair column
	// gets whatever is left.
	maxChair := max(getTerminalWidth(cfg)-46, 10)

	var data [][]string
	for _, o := range series.Observations() {
		chair := truncateLabel(o.Chair, maxChair)
		if cfg.UseColors {
			chair = contract.ChairColor.Sprint(chair)
		}
		data = append(data, []string{
			o.Date.Format(contract.DateFormat),
			fmtFloat(o.Unemployment),
			fmtFloat(o.Inflation),
			chair,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Built %d observations across %d tenures in %v. Cache backend: %s\n",
		series.Len(), len(series.Spans()), duration, cfg.CacheBackend)
	return nil
}
