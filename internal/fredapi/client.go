// Package fredapi retrieves economic time series from FRED
// (Federal Reserve Economic Data) and builds the merged observation table
// consumed by the renderer.
package fredapi

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fedcurve/internal/contract"
	"fedcurve/schema"
)

// DefaultBaseURL is the keyless CSV endpoint behind the FRED chart UI.
const DefaultBaseURL = "https://fred.stlouisfed.org/graph/fredgraph.csv"

// cacheVersion invalidates cached payloads when the parser changes.
const cacheVersion = 1

// cacheTTL is how long a cached payload stays fresh. FRED series update
// monthly, so a day of staleness is acceptable.
const cacheTTL = 24 * time.Hour

// ErrOfflineMiss is returned when --offline is set and the requested series
// is not in the cache.
var ErrOfflineMiss = errors.New("series not in cache and offline mode is enabled")

// Client fetches series payloads over HTTP with a read-through cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      contract.CacheStore
	offline    bool
}

var _ contract.SeriesSource = &Client{} // Compile-time check

// NewClient creates a FRED client. baseURL may be empty to use the default
// endpoint; store may be nil to disable caching.
func NewClient(baseURL string, store contract.CacheStore, offline bool) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
		offline:    offline,
	}
}

// FetchSeries returns the (date, value) points for the series ID within
// [start, end]. Cached payloads are used when fresh; fetched payloads are
// written back to the cache.
func (c *Client) FetchSeries(ctx context.Context, seriesID string, start, end time.Time) ([]schema.RawPoint, error) {
	key := cacheKey(seriesID, start, end)

	if payload, ok := c.cachedPayload(key); ok {
		return parseSeriesCSV(payload)
	}
	if c.offline {
		return nil, fmt.Errorf("%w: %s", ErrOfflineMiss, seriesID)
	}

	payload, err := c.fetch(ctx, seriesID, start, end)
	if err != nil {
		return nil, err
	}
	points, err := parseSeriesCSV(payload)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Set(key, payload, cacheVersion, time.Now().Unix()); err != nil {
			contract.Warning(fmt.Sprintf("could not cache %s payload: %v", seriesID, err))
		}
	}
	return points, nil
}

// cachedPayload returns a cached payload if present, version-compatible and
// fresh. Offline mode accepts stale entries.
func (c *Client) cachedPayload(key string) ([]byte, bool) {
	if c.store == nil {
		return nil, false
	}
	payload, version, ts, err := c.store.Get(key)
	if err != nil || version != cacheVersion {
		return nil, false
	}
	if !c.offline && time.Since(time.Unix(ts, 0)) > cacheTTL {
		return nil, false
	}
	return payload, true
}

// fetch performs the HTTP request for one series.
func (c *Client) fetch(ctx context.Context, seriesID string, start, end time.Time) ([]byte, error) {
	params := url.Values{}
	params.Set("id", seriesID)
	params.Set("cosd", start.Format(contract.DateFormat))
	params.Set("coed", end.Format(contract.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building FRED request for %s: %w", seriesID, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s from FRED: %w", seriesID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s from FRED: unexpected status %s", seriesID, resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s payload: %w", seriesID, err)
	}
	return payload, nil
}

// parseSeriesCSV decodes a fredgraph.csv payload: a header row followed by
// (date, value) rows. Missing observations are marked "." and skipped.
func parseSeriesCSV(payload []byte) ([]schema.RawPoint, error) {
	reader := csv.NewReader(strings.NewReader(string(payload)))
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing series CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("series CSV has no observation rows")
	}

	points := make([]schema.RawPoint, 0, len(records)-1)
	for _, rec := range records[1:] { // skip header
		raw := strings.TrimSpace(rec[1])
		if raw == "." || raw == "" {
			continue
		}
		date, err := time.Parse(contract.DateFormat, strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("parsing observation date %q: %w", rec[0], err)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing observation value %q: %w", raw, err)
		}
		points = append(points, schema.RawPoint{Date: date, Value: value})
	}
	return points, nil
}

func cacheKey(seriesID string, start, end time.Time) string {
	return fmt.Sprintf("fred:%s:%s:%s", seriesID, start.Format(contract.DateFormat), end.Format(contract.DateFormat))
}
