// Package core has core logic for frame sequencing, tenure completion and
// scene composition.
package core

import (
	"context"
	"fmt"
	"image"
	"time"

	"fedcurve/internal/contract"
	"fedcurve/internal/fredapi"
	"fedcurve/internal/outwriter"
	"fedcurve/internal/progress"
	"fedcurve/internal/seriescache"
	"fedcurve/schema"
)

// buildSeries assembles the merged observation series from the configured
// data source, going through the fetch cache.
func buildSeries(ctx context.Context, cfg *contract.Config) (*schema.Series, error) {
	store := seriescache.GetManager().GetFetchStore()
	client := fredapi.NewClient(cfg.FredBaseURL, store, cfg.Offline)
	return fredapi.BuildSeries(ctx, client, cfg)
}

// newSession builds the fetch-to-session pipeline shared by the render and
// preview commands.
func newSession(ctx context.Context, cfg *contract.Config) (*Session, error) {
	series, err := buildSeries(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewSession(series, cfg.Palette, schema.ChairOrder(cfg.Tenures))
}

// ExecuteRender renders the full animation through the renderer and feeds the
// frames to the sink. It serves as the main entry point for the 'render' mode.
func ExecuteRender(ctx context.Context, cfg *contract.Config, renderer Renderer, sink FrameSink) error {
	start := time.Now()
	session, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	reporter := progress.NewBarReporter()
	if err := Animate(session, renderer, sink, reporter, cfg.PauseFrames, !cfg.SkipPreview); err != nil {
		return err
	}
	duration := time.Since(start)
	fmt.Printf("Rendered %d data frames across %d tenures in %v.\n",
		session.FrameCount(), len(session.Series().Spans()), duration)
	return nil
}

// ExecutePreview renders only the standalone preview frame and returns the
// image. It serves as the main entry point for the 'preview' mode.
func ExecutePreview(ctx context.Context, cfg *contract.Config, renderer Renderer) (*image.RGBA, error) {
	session, err := newSession(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sc, err := session.RenderFrame(PreviewFrame)
	if err != nil {
		return nil, err
	}
	return renderer.Render(sc)
}

// ExecuteSeries fetches the merged observation table and prints it to stdout.
// It serves as the main entry point for the 'series' mode.
func ExecuteSeries(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	series, err := buildSeries(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintSeriesResults(series, cfg, duration)
}

// ExecuteChairs prints the configured tenure table with per-chair coverage.
// It serves as the main entry point for the 'chairs' mode.
func ExecuteChairs(ctx context.Context, cfg *contract.Config) error {
	series, err := buildSeries(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintChairResults(series, cfg)
}
