package cmd

import (
	"github.com/spf13/cobra"

	"fedcurve/core"
	"fedcurve/internal/contract"
)

// seriesCmd prints the merged observation table.
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Show the merged unemployment/inflation observation table.",
	Long: `Fetch both input series, derive core inflation as year-over-year percent
change and print the merged monthly table with the chair in office per row.

Useful for inspecting exactly what the animation will draw, and for exporting
the dataset to other tools.

Examples:
  # Print the table to the terminal
  fedcurve series

  # Export to CSV for a spreadsheet
  fedcurve series --output csv --output-file observations.csv

  # Export to Parquet for analytical tooling
  fedcurve series --output parquet --output-file observations.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build series table", err)
		}
	},
}
