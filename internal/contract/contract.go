// Package contract defines the shared configuration and the interfaces that
// connect the data source, the fetch cache and the renderer.
package contract

import (
	"context"
	"time"

	"fedcurve/schema"
)

// SeriesSource fetches raw observations for a single upstream series.
type SeriesSource interface {
	// FetchSeries returns the (date, value) points for the series ID within
	// [start, end], in ascending date order.
	FetchSeries(ctx context.Context, seriesID string, start, end time.Time) ([]schema.RawPoint, error)
}

// CacheStore provides durable key/value storage for fetched payloads.
type CacheStore interface {
	// Get retrieves a value by key, returning the payload, its version and
	// its storage timestamp (unix seconds).
	Get(key string) ([]byte, int, int64, error)

	// Set inserts or replaces a key/value pair.
	Set(key string, value []byte, version int, timestamp int64) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.CacheStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// CacheManager hands out the configured cache store.
type CacheManager interface {
	GetFetchStore() CacheStore
}

// ProgressReporter is notified once per rendered frame. Implementations must
// not fail rendering: they report, they never return errors.
type ProgressReporter interface {
	// Start announces the total frame count before rendering begins.
	Start(total int, label string)

	// FrameRendered is called after each frame with a short label.
	FrameRendered(label string)

	// Finish is called once all frames are rendered.
	Finish()
}

// NopReporter is a ProgressReporter that does nothing.
type NopReporter struct{}

// Start implements ProgressReporter.
func (NopReporter) Start(int, string) {}

// FrameRendered implements ProgressReporter.
func (NopReporter) FrameRendered(string) {}

// Finish implements ProgressReporter.
func (NopReporter) Finish() {}
