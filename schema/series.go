package schema

import "sort"

// TenureSpan records the index range a chair's observations occupy within a
// series. Because tenures are contiguous in time and the series is
// date-ascending, each chair owns exactly one run of indices.
type TenureSpan struct {
	Chair string
	First int // Index of the chair's first observation
	Last  int // Index of the chair's last observation
}

// Series is the chronologically ordered observation table consumed by the
// frame renderer. Observations are date-ascending and unique per date.
type Series struct {
	obs   []Observation
	spans []TenureSpan
}

// NewSeries builds a Series from raw observations. Input is sorted by date and
// deduplicated (first occurrence wins) before tenure spans are resolved.
func NewSeries(obs []Observation) *Series {
	sorted := make([]Observation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	deduped := sorted[:0]
	for _, o := range sorted {
		if len(deduped) > 0 && deduped[len(deduped)-1].Date.Equal(o.Date) {
			continue
		}
		deduped = append(deduped, o)
	}

	s := &Series{obs: deduped}
	for i, o := range deduped {
		if n := len(s.spans); n > 0 && s.spans[n-1].Chair == o.Chair {
			s.spans[n-1].Last = i
			continue
		}
		s.spans = append(s.spans, TenureSpan{Chair: o.Chair, First: i, Last: i})
	}
	return s
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.obs)
}

// At returns the observation at index i.
func (s *Series) At(i int) Observation {
	return s.obs[i]
}

// Last returns the final observation, or false for an empty series.
func (s *Series) Last() (Observation, bool) {
	if len(s.obs) == 0 {
		return Observation{}, false
	}
	return s.obs[len(s.obs)-1], true
}

// Observations returns the full ordered observation slice.
func (s *Series) Observations() []Observation {
	return s.obs
}

// Spans returns the tenure spans in chronological order.
func (s *Series) Spans() []TenureSpan {
	return s.spans
}

// Span returns the index span for the given chair.
func (s *Series) Span(chair string) (TenureSpan, bool) {
	for _, sp := range s.spans {
		if sp.Chair == chair {
			return sp, true
		}
	}
	return TenureSpan{}, false
}

// TenureObservations returns every observation belonging to the chair's
// tenure, regardless of how much of the series has been revealed.
func (s *Series) TenureObservations(chair string) []Observation {
	sp, ok := s.Span(chair)
	if !ok {
		return nil
	}
	return s.obs[sp.First : sp.Last+1]
}

// Chairs returns the chairs present in the series, in term order.
func (s *Series) Chairs() []string {
	chairs := make([]string, len(s.spans))
	for i, sp := range s.spans {
		chairs[i] = sp.Chair
	}
	return chairs
}
