package fredapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedcurve/internal/contract"
	"fedcurve/schema"
)

// fakeSource serves canned points per series ID and records requested ranges.
type fakeSource struct {
	points map[string][]schema.RawPoint
	ranges map[string][2]time.Time
	err    error
}

func (f *fakeSource) FetchSeries(_ context.Context, seriesID string, start, end time.Time) ([]schema.RawPoint, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.ranges == nil {
		f.ranges = make(map[string][2]time.Time)
	}
	f.ranges[seriesID] = [2]time.Time{start, end}
	return f.points[seriesID], nil
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func point(year int, m time.Month, v float64) schema.RawPoint {
	return schema.RawPoint{Date: month(year, m), Value: v}
}

func TestYoYPercentChange(t *testing.T) {
	points := []schema.RawPoint{
		point(1999, 1, 100),
		point(1999, 2, 100),
		point(2000, 1, 110), // +10% against 1999-01
		point(2000, 2, 95),  // -5% against 1999-02
		point(2001, 3, 120), // no lagged month, dropped
	}

	out := YoYPercentChange(points, 12)
	require.Len(t, out, 2)
	assert.Equal(t, month(2000, 1), out[0].Date)
	assert.InDelta(t, 10.0, out[0].Value, 1e-9)
	assert.Equal(t, month(2000, 2), out[1].Date)
	assert.InDelta(t, -5.0, out[1].Value, 1e-9)
}

func TestYoYPercentChangeZeroBase(t *testing.T) {
	points := []schema.RawPoint{
		point(1999, 1, 0),
		point(2000, 1, 50),
	}
	assert.Empty(t, YoYPercentChange(points, 12))
}

func TestMergeObservations(t *testing.T) {
	tenures := []schema.Tenure{
		{Chair: "A", Start: month(2000, 1), End: month(2000, 2)},
		{Chair: "B", Start: month(2000, 3), End: month(2000, 12)},
	}
	unemployment := []schema.RawPoint{
		point(2000, 1, 4.0),
		point(2000, 2, 4.1),
		point(2000, 3, 4.2),
		point(2000, 4, 4.3), // no inflation match, dropped
		point(2001, 1, 5.0), // outside every tenure, dropped
	}
	inflation := []schema.RawPoint{
		point(2000, 1, 2.0),
		point(2000, 2, 2.1),
		point(2000, 3, 2.2),
		point(2001, 1, 3.0),
	}

	obs := MergeObservations(unemployment, inflation, tenures)
	require.Len(t, obs, 3)
	assert.Equal(t, schema.Observation{Date: month(2000, 1), Unemployment: 4.0, Inflation: 2.0, Chair: "A"}, obs[0])
	assert.Equal(t, "A", obs[1].Chair)
	assert.Equal(t, "B", obs[2].Chair)
}

func TestBuildSeries(t *testing.T) {
	cfg := &contract.Config{
		StartTime: month(2000, 1),
		EndTime:   month(2000, 3),
		Tenures: []schema.Tenure{
			{Chair: "A", Start: month(2000, 1), End: month(2000, 12)},
		},
	}
	src := &fakeSource{points: map[string][]schema.RawPoint{
		UnemploymentSeries: {
			point(2000, 1, 4.0),
			point(2000, 2, 4.1),
			point(2000, 3, 4.2),
		},
		CoreCPISeries: {
			point(1999, 1, 100),
			point(1999, 2, 100),
			point(1999, 3, 100),
			point(2000, 1, 102),
			point(2000, 2, 103),
			point(2000, 3, 104),
		},
	}}

	series, err := BuildSeries(context.Background(), src, cfg)
	require.NoError(t, err)
	require.Equal(t, 3, series.Len())
	assert.InDelta(t, 2.0, series.At(0).Inflation, 1e-9)
	assert.InDelta(t, 4.0, series.At(2).Inflation, 1e-9)
	assert.Equal(t, []string{"A"}, series.Chairs())

	// The CPI fetch starts a year early so YoY is defined from month one.
	cpiRange := src.ranges[CoreCPISeries]
	assert.Equal(t, month(1999, 1), cpiRange[0])
	assert.Equal(t, cfg.EndTime, cpiRange[1])
}

func TestBuildSeriesNoObservations(t *testing.T) {
	cfg := &contract.Config{
		StartTime: month(2000, 1),
		EndTime:   month(2000, 3),
		Tenures:   []schema.Tenure{{Chair: "A", Start: month(2010, 1), End: month(2011, 1)}},
	}
	src := &fakeSource{points: map[string][]schema.RawPoint{}}

	_, err := BuildSeries(context.Background(), src, cfg)
	assert.ErrorContains(t, err, "no observations")
}

func TestBuildSeriesFetchError(t *testing.T) {
	cfg := &contract.Config{StartTime: month(2000, 1), EndTime: month(2000, 3)}
	src := &fakeSource{err: errors.New("boom")}

	_, err := BuildSeries(context.Background(), src, cfg)
	assert.ErrorContains(t, err, "unemployment series")
}
