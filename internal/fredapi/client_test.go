package fredapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedcurve/schema"
)

// memStore is an in-memory CacheStore for tests.
type memStore struct {
	entries map[string]memEntry
	sets    int
}

type memEntry struct {
	payload   []byte
	version   int
	timestamp int64
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string]memEntry)}
}

func (m *memStore) Get(key string) ([]byte, int, int64, error) {
	e, ok := m.entries[key]
	if !ok {
		return nil, 0, 0, nil
	}
	return e.payload, e.version, e.timestamp, nil
}

func (m *memStore) Set(key string, value []byte, version int, timestamp int64) error {
	m.sets++
	m.entries[key] = memEntry{payload: value, version: version, timestamp: timestamp}
	return nil
}

func (m *memStore) GetStatus() (schema.CacheStatus, error) {
	return schema.CacheStatus{Backend: "memory", Connected: true, TotalEntries: len(m.entries)}, nil
}

func (m *memStore) Close() error { return nil }

const sampleCSV = `observation_date,UNRATE
2000-01-01,4.0
2000-02-01,4.1
2000-03-01,.
2000-04-01,3.8
`

func testDates() (time.Time, time.Time) {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 3, 0)
}

func TestFetchSeries(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "UNRATE", r.URL.Query().Get("id"))
		assert.Equal(t, "2000-01-01", r.URL.Query().Get("cosd"))
		assert.Equal(t, "2000-04-01", r.URL.Query().Get("coed"))
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	store := newMemStore()
	client := NewClient(server.URL, store, false)
	start, end := testDates()

	points, err := client.FetchSeries(context.Background(), "UNRATE", start, end)
	require.NoError(t, err)

	// The missing "." observation is dropped.
	require.Len(t, points, 3)
	assert.Equal(t, 4.0, points[0].Value)
	assert.Equal(t, time.Date(2000, 4, 1, 0, 0, 0, 0, time.UTC), points[2].Date)
	assert.Equal(t, 1, store.sets)

	// A second fetch is served from cache.
	again, err := client.FetchSeries(context.Background(), "UNRATE", start, end)
	require.NoError(t, err)
	assert.Equal(t, points, again)
	assert.Equal(t, 1, requests)
}

func TestFetchSeriesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, false)
	start, end := testDates()
	_, err := client.FetchSeries(context.Background(), "UNRATE", start, end)
	assert.ErrorContains(t, err, "unexpected status")
}

func TestFetchSeriesOffline(t *testing.T) {
	store := newMemStore()
	client := NewClient("http://localhost:1", store, true)
	start, end := testDates()

	// Offline with an empty cache is an error, not a network call.
	_, err := client.FetchSeries(context.Background(), "UNRATE", start, end)
	assert.ErrorIs(t, err, ErrOfflineMiss)

	// Offline accepts stale cached payloads.
	staleTS := time.Now().Add(-30 * 24 * time.Hour).Unix()
	require.NoError(t, store.Set(cacheKey("UNRATE", start, end), []byte(sampleCSV), cacheVersion, staleTS))
	points, err := client.FetchSeries(context.Background(), "UNRATE", start, end)
	require.NoError(t, err)
	assert.Len(t, points, 3)
}

func TestCachedPayloadRules(t *testing.T) {
	store := newMemStore()
	client := NewClient("http://localhost:1", store, false)
	start, end := testDates()
	key := cacheKey("UNRATE", start, end)

	// Stale entries are ignored online.
	staleTS := time.Now().Add(-2 * cacheTTL).Unix()
	require.NoError(t, store.Set(key, []byte(sampleCSV), cacheVersion, staleTS))
	_, ok := client.cachedPayload(key)
	assert.False(t, ok)

	// Version mismatches are ignored.
	require.NoError(t, store.Set(key, []byte(sampleCSV), cacheVersion+1, time.Now().Unix()))
	_, ok = client.cachedPayload(key)
	assert.False(t, ok)

	// Fresh entries with the right version are served.
	require.NoError(t, store.Set(key, []byte(sampleCSV), cacheVersion, time.Now().Unix()))
	payload, ok := client.cachedPayload(key)
	require.True(t, ok)
	assert.Equal(t, []byte(sampleCSV), payload)
}

func TestParseSeriesCSV(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantLen     int
		expectError bool
	}{
		{"valid payload", sampleCSV, 3, false},
		{"header only", "observation_date,UNRATE\n", 0, true},
		{"empty payload", "", 0, true},
		{"bad value", "observation_date,UNRATE\n2000-01-01,abc\n", 0, true},
		{"bad date", "observation_date,UNRATE\n01/01/2000,4.0\n", 0, true},
		{"ragged row", "observation_date,UNRATE\n2000-01-01\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := parseSeriesCSV([]byte(tt.payload))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, points, tt.wantLen)
		})
	}
}
