package core

import (
	"fmt"
	"image"

	"fedcurve/internal/contract"
)

// Renderer rasterizes a scene description into pixels. Implementations live
// outside the core so the state machine stays testable without drawing.
type Renderer interface {
	Render(sc *Scene) (*image.RGBA, error)
}

// FrameSink consumes rendered frames in order, typically assembling them into
// an animated image file.
type FrameSink interface {
	Add(img *image.RGBA) error
	Close() error
}

// FrameSequence returns the full frame schedule: an optional preview frame,
// every data frame in increasing order, then the terminal frame repeated
// pauseFrames times for the trailing pause.
func FrameSequence(frameCount, pauseFrames int, withPreview bool) []FrameIndex {
	var frames []FrameIndex
	if withPreview {
		frames = append(frames, PreviewFrame)
	}
	for i := range frameCount {
		frames = append(frames, FrameIndex(i))
	}
	for range pauseFrames {
		frames = append(frames, FrameIndex(frameCount-1))
	}
	return frames
}

// Animate renders the session's full frame sequence through the renderer and
// feeds each frame to the sink. The reporter is notified once per frame;
// reporter misbehavior never aborts rendering.
func Animate(s *Session, r Renderer, sink FrameSink, reporter contract.ProgressReporter, pauseFrames int, withPreview bool) error {
	frames := FrameSequence(s.FrameCount(), pauseFrames, withPreview)
	notify(func() { reporter.Start(len(frames), "Generating frames") })

	for _, idx := range frames {
		sc, err := s.RenderFrame(idx)
		if err != nil {
			return fmt.Errorf("frame %d: %w", idx, err)
		}
		img, err := r.Render(sc)
		if err != nil {
			return fmt.Errorf("rasterizing frame %d: %w", idx, err)
		}
		if err := sink.Add(img); err != nil {
			return fmt.Errorf("encoding frame %d: %w", idx, err)
		}
		notify(func() { reporter.FrameRendered(frameLabel(idx)) })
	}

	notify(reporter.Finish)
	return sink.Close()
}

// notify shields rendering from reporter panics.
func notify(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func frameLabel(idx FrameIndex) string {
	if idx == PreviewFrame {
		return "preview"
	}
	return fmt.Sprintf("frame %d", idx)
}
