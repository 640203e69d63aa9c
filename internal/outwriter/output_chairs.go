package outwriter

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"fedcurve/internal/contract"
	"fedcurve/schema"
)

// PrintChairResults prints the tenure table with per-chair observation
// counts and shape eligibility.
func PrintChairResults(series *schema.Series, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Chair", "Start", "End", "Color", "Observations", "Shape"})

	byChair := make(map[string]int, len(series.Spans()))
	for _, sp := range series.Spans() {
		byChair[sp.Chair] = sp.Last - sp.First + 1
	}

	var data [][]string
	for _, t := range cfg.Tenures {
		count := byChair[t.Chair]
		shape := "yes"
		if count < contract.MinShapePoints {
			// Too few points to close a polygon
			shape = "no"
		}
		name := t.Chair
		if cfg.UseColors {
			name = contract.ChairColor.Sprint(name)
		}
		swatch := ""
		if c, ok := cfg.Palette[t.Chair]; ok {
			swatch = c.String()
		}
		data = append(data, []string{
			name,
			t.Start.Format(contract.DateFormat),
			t.End.Format(contract.DateFormat),
			swatch,
			fmt.Sprintf("%d", count),
			shape,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
