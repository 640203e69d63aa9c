package cmd

import (
	"github.com/spf13/cobra"

	"fedcurve/core"
	"fedcurve/internal/contract"
)

// chairsCmd prints the configured chair tenure table.
var chairsCmd = &cobra.Command{
	Use:   "chairs",
	Short: "Show the chair tenure table with data coverage.",
	Long: `Print the configured Fed Chair tenures with per-chair observation counts
for the selected date range, and whether each tenure has enough points to
form a filled polygon in the animation.

Examples:
  # Show all tenures with default range
  fedcurve chairs

  # Check coverage for a narrow window
  fedcurve chairs --start 2006-01-01 --end 2014-02-01`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChairs(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build chair table", err)
		}
	},
}
