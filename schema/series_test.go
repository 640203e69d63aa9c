package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obsAt(year int, month time.Month, chair string) Observation {
	return Observation{
		Date:         time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		Unemployment: 5,
		Inflation:    2,
		Chair:        chair,
	}
}

func TestNewSeriesSortsAndDedupes(t *testing.T) {
	obs := []Observation{
		obsAt(2000, 3, "A"),
		obsAt(2000, 1, "A"),
		obsAt(2000, 2, "A"),
		obsAt(2000, 2, "A"), // duplicate month, first occurrence wins
	}
	s := NewSeries(obs)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, time.January, s.At(0).Date.Month())
	assert.Equal(t, time.February, s.At(1).Date.Month())
	assert.Equal(t, time.March, s.At(2).Date.Month())
}

func TestNewSeriesSpans(t *testing.T) {
	obs := []Observation{
		obsAt(2000, 1, "A"),
		obsAt(2000, 2, "A"),
		obsAt(2000, 3, "B"),
		obsAt(2000, 4, "B"),
		obsAt(2000, 5, "B"),
	}
	s := NewSeries(obs)

	spans := s.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, TenureSpan{Chair: "A", First: 0, Last: 1}, spans[0])
	assert.Equal(t, TenureSpan{Chair: "B", First: 2, Last: 4}, spans[1])

	sp, ok := s.Span("B")
	require.True(t, ok)
	assert.Equal(t, 2, sp.First)

	_, ok = s.Span("C")
	assert.False(t, ok)

	assert.Equal(t, []string{"A", "B"}, s.Chairs())
}

func TestTenureObservations(t *testing.T) {
	obs := []Observation{
		obsAt(2000, 1, "A"),
		obsAt(2000, 2, "A"),
		obsAt(2000, 3, "B"),
	}
	s := NewSeries(obs)

	assert.Len(t, s.TenureObservations("A"), 2)
	assert.Len(t, s.TenureObservations("B"), 1)
	assert.Nil(t, s.TenureObservations("C"))
}

func TestSeriesLast(t *testing.T) {
	_, ok := NewSeries(nil).Last()
	assert.False(t, ok)

	s := NewSeries([]Observation{obsAt(2000, 1, "A"), obsAt(2000, 2, "A")})
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, time.February, last.Date.Month())
}
