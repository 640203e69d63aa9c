package raster

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"

	"fedcurve/core"
)

// GIFSink assembles rendered frames into an animated GIF file.
// Frames are quantized to the web-safe palette with Floyd-Steinberg
// dithering as they arrive, so only paletted frames are held in memory.
type GIFSink struct {
	path  string
	delay int // per-frame delay in 1/100ths of a second
	anim  *gif.GIF
}

var _ core.FrameSink = &GIFSink{} // Compile-time check

// NewGIFSink creates a sink writing to path at the given frame rate.
func NewGIFSink(path string, fps int) *GIFSink {
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}
	return &GIFSink{
		path:  path,
		delay: delay,
		anim:  &gif.GIF{},
	}
}

// Add quantizes and appends one frame.
func (s *GIFSink) Add(img *image.RGBA) error {
	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
	s.anim.Image = append(s.anim.Image, paletted)
	s.anim.Delay = append(s.anim.Delay, s.delay)
	return nil
}

// Close encodes the assembled animation to disk.
func (s *GIFSink) Close() error {
	if len(s.anim.Image) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.path, err)
	}
	defer func() { _ = file.Close() }()

	if err := gif.EncodeAll(file, s.anim); err != nil {
		return fmt.Errorf("encoding GIF: %w", err)
	}
	return nil
}

// FrameCount returns the number of frames added so far.
func (s *GIFSink) FrameCount() int {
	return len(s.anim.Image)
}

// SavePNG writes a single frame to a PNG file, used for the preview command.
func SavePNG(img *image.RGBA, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
