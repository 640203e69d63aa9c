package core

import (
	"errors"
	"fmt"

	"fedcurve/schema"
)

// FrameIndex identifies one frame of the animation. Valid values are the
// PreviewFrame sentinel or an integer in [0, N-1] where N is the observation
// count.
type FrameIndex int

// PreviewFrame is the sentinel index for the preview frame drawn before the
// animation starts.
const PreviewFrame FrameIndex = -1

// TenureState is the per-tenure lifecycle within a rendering session.
// Transitions only move forward: pending -> in-progress -> completed.
type TenureState int

// Tenure states.
const (
	TenurePending TenureState = iota
	TenureInProgress
	TenureCompleted
)

func (ts TenureState) String() string {
	switch ts {
	case TenurePending:
		return "pending"
	case TenureInProgress:
		return "in-progress"
	case TenureCompleted:
		return "completed"
	default:
		return fmt.Sprintf("TenureState(%d)", int(ts))
	}
}

// Rendering errors returned for caller contract violations.
var (
	ErrFrameOutOfRange = errors.New("frame index out of range")
	ErrFrameOutOfOrder = errors.New("frames must be rendered in increasing order")
	ErrEmptySeries     = errors.New("series has no observations")
)

// Session owns the mutable state of one rendering run: the memoized
// completed-tenure shapes and the frame cursor. A session renders frames
// strictly in increasing index order; re-rendering an earlier frame after a
// later one has completed a tenure would desynchronize the shape cache from
// the timeline, so out-of-order calls are rejected. Start a new session to
// render again.
type Session struct {
	series  *schema.Series
	palette map[string]schema.RGB
	order   []string // chair names in term order, drives legend and draw order

	shapes    map[string]*Shape // memoized shapes for completed tenures
	completed map[string]bool   // completed chairs, including those too small for a shape
	cursor    FrameIndex        // highest standard frame rendered so far
}

// NewSession creates a rendering session for the series. The order slice
// fixes legend and draw ordering; chairs absent from the palette fall back to
// gray.
func NewSession(series *schema.Series, palette map[string]schema.RGB, order []string) (*Session, error) {
	if series.Len() == 0 {
		return nil, ErrEmptySeries
	}
	return &Session{
		series:    series,
		palette:   palette,
		order:     order,
		shapes:    make(map[string]*Shape),
		completed: make(map[string]bool),
		cursor:    PreviewFrame,
	}, nil
}

// Series returns the observation series the session renders.
func (s *Session) Series() *schema.Series {
	return s.series
}

// FrameCount returns the number of standard (non-preview) frames.
func (s *Session) FrameCount() int {
	return s.series.Len()
}

// visibleCount returns the size of the visible subset at frame i.
//
// Frame i reveals observations[0 : i+2]: frame 0 shows the first two
// observations, and the highlighted point at frame i is the observation at
// index i+1. Callers must treat this one-ahead window as a contract.
func (s *Session) visibleCount(i FrameIndex) int {
	return min(int(i)+2, s.series.Len())
}

// TenureStateAt reports the lifecycle state of a chair's tenure at frame i
// without touching the session cache. A tenure is completed once none of its
// observations remain in the not-yet-revealed tail; with the series indexed
// up front that reduces to comparing its last index against the window end.
func (s *Session) TenureStateAt(chair string, i FrameIndex) TenureState {
	sp, ok := s.series.Span(chair)
	if !ok {
		return TenurePending
	}
	vc := s.visibleCount(i)
	switch {
	case sp.Last < vc:
		return TenureCompleted
	case sp.First < vc:
		return TenureInProgress
	default:
		return TenurePending
	}
}

// CompletedShape returns the memoized shape for a chair, if the tenure has
// completed during this session and was large enough to form a polygon.
func (s *Session) CompletedShape(chair string) (*Shape, bool) {
	sh, ok := s.shapes[chair]
	return sh, ok
}

// frameState is the computed visual state for one standard frame.
type frameState struct {
	index      FrameIndex
	visible    []schema.Observation
	completed  []string // term order
	inProgress []string // term order, visible but not completed
	highlight  *schema.Observation
	final      bool
}

// RenderFrame computes the scene for the given frame index and advances the
// session. PreviewFrame renders the static preview and leaves the session
// untouched. Standard frames must be within [0, N-1] and non-decreasing;
// the terminal index may repeat for the trailing pause.
func (s *Session) RenderFrame(i FrameIndex) (*Scene, error) {
	if i == PreviewFrame {
		return s.composePreview(), nil
	}
	if int(i) < 0 || int(i) >= s.series.Len() {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrFrameOutOfRange, i, s.series.Len()-1)
	}
	if i < s.cursor {
		return nil, fmt.Errorf("%w: frame %d after frame %d", ErrFrameOutOfOrder, i, s.cursor)
	}
	s.cursor = i

	st := s.frameStateAt(i)
	s.memoizeCompleted(st.completed)
	return s.composeStandard(st), nil
}

// frameStateAt derives the frame state from the visible window.
func (s *Session) frameStateAt(i FrameIndex) frameState {
	vc := s.visibleCount(i)
	st := frameState{
		index:   i,
		visible: s.series.Observations()[:vc],
		final:   int(i) >= s.series.Len()-1,
	}

	for _, sp := range s.series.Spans() {
		switch {
		case sp.Last < vc:
			st.completed = append(st.completed, sp.Chair)
		case sp.First < vc:
			st.inProgress = append(st.inProgress, sp.Chair)
		}
	}

	// The newest revealed observation pulses, except on the terminal frame.
	if int(i) < s.series.Len()-1 {
		o := s.series.At(int(i) + 1)
		st.highlight = &o
	}
	return st
}

// memoizeCompleted derives and caches shapes for newly completed tenures.
// A shape is computed exactly once, from the tenure's full observation set,
// and reused verbatim in all later frames.
func (s *Session) memoizeCompleted(completed []string) {
	for _, chair := range completed {
		if s.completed[chair] {
			continue
		}
		s.completed[chair] = true
		if sh, ok := deriveShape(s.series, chair, s.colorFor(chair)); ok {
			s.shapes[chair] = sh
		}
	}
}

func (s *Session) colorFor(chair string) schema.RGB {
	if c, ok := s.palette[chair]; ok {
		return c
	}
	return schema.ColorGray
}
