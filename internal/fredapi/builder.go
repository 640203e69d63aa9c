package fredapi

import (
	"context"
	"errors"
	"fmt"

	"fedcurve/internal/contract"
	"fedcurve/schema"
)

// FRED series identifiers for the two inputs.
const (
	UnemploymentSeries = "UNRATE"   // Unemployment rate, percent, monthly
	CoreCPISeries      = "CPILFESL" // Core CPI index level, monthly
)

// yoyLagMonths is the lag for the year-over-year percent change.
const yoyLagMonths = 12

// BuildSeries fetches both inputs, derives core inflation YoY, joins the two
// series by month, assigns chairs and returns the ordered observation table.
func BuildSeries(ctx context.Context, src contract.SeriesSource, cfg *contract.Config) (*schema.Series, error) {
	unemployment, err := src.FetchSeries(ctx, UnemploymentSeries, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return nil, fmt.Errorf("unemployment series: %w", err)
	}

	// The CPI fetch starts a year earlier so the YoY change is defined from
	// the first requested month onward.
	cpiStart := cfg.StartTime.AddDate(-1, 0, 0)
	coreCPI, err := src.FetchSeries(ctx, CoreCPISeries, cpiStart, cfg.EndTime)
	if err != nil {
		return nil, fmt.Errorf("core CPI series: %w", err)
	}

	inflation := YoYPercentChange(coreCPI, yoyLagMonths)
	obs := MergeObservations(unemployment, inflation, cfg.Tenures)
	if len(obs) == 0 {
		return nil, errors.New("no observations after merging series and assigning chairs")
	}
	return schema.NewSeries(obs), nil
}

// YoYPercentChange converts an index-level series into percent change against
// the observation lag months earlier. Months without a matching lagged
// observation are dropped.
func YoYPercentChange(points []schema.RawPoint, lagMonths int) []schema.RawPoint {
	byMonth := make(map[string]float64, len(points))
	for _, p := range points {
		byMonth[contract.MonthKey(p.Date).Format(contract.DateFormat)] = p.Value
	}

	var out []schema.RawPoint
	for _, p := range points {
		laggedMonth := contract.MonthKey(p.Date).AddDate(0, -lagMonths, 0)
		prev, ok := byMonth[laggedMonth.Format(contract.DateFormat)]
		if !ok || prev == 0 {
			continue
		}
		out = append(out, schema.RawPoint{
			Date:  p.Date,
			Value: (p.Value/prev - 1) * 100,
		})
	}
	return out
}

// MergeObservations inner-joins the two series by month, tags each row with
// the chair in office and drops rows outside every tenure.
func MergeObservations(unemployment, inflation []schema.RawPoint, tenures []schema.Tenure) []schema.Observation {
	inflationByMonth := make(map[string]float64, len(inflation))
	for _, p := range inflation {
		inflationByMonth[contract.MonthKey(p.Date).Format(contract.DateFormat)] = p.Value
	}

	var obs []schema.Observation
	for _, u := range unemployment {
		month := contract.MonthKey(u.Date)
		infl, ok := inflationByMonth[month.Format(contract.DateFormat)]
		if !ok {
			continue
		}
		chair, ok := schema.ChairAt(tenures, month)
		if !ok {
			continue
		}
		obs = append(obs, schema.Observation{
			Date:         month,
			Unemployment: u.Value,
			Inflation:    infl,
			Chair:        chair,
		})
	}
	return obs
}
