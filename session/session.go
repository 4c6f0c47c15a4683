// Package session implements the interactive sketching of a stroke and its
// retargeting onto a reference path.
//
// A [Session] is a small state machine. [Session.Begin] starts a stroke,
// [Session.Move] adds the point under the pointer, and [Session.Finalize]
// retargets the stroke and writes the result back into the stroke buffer.
// [Session.Cancel] discards the stroke instead. Sessions are driven by a
// single event loop and are not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/view"
)

// State is the state of a session.
type State int

const (
	Idle State = iota
	Sketching
	Cancelled
	Finalized
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sketching:
		return "sketching"
	case Cancelled:
		return "cancelled"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrInvalidState is returned for operations not allowed in the
	// session's current state.
	ErrInvalidState = errors.New("session: invalid state")
	// ErrTooFewPoints is returned when finalizing a stroke of fewer than two
	// points.
	ErrTooFewPoints = errors.New("session: stroke needs at least two points")
)

// Session holds the state of one stroke.
type Session struct {
	Timeline *Timeline

	state  State
	points []sketchpath.Point3
	log    *slog.Logger
}

// New returns an idle session. The timeline is only needed for frame and
// wheel events; without one those events fail. If logger is nil,
// slog.Default() is used.
func New(tl *Timeline, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		Timeline: tl,
		log:      logger,
	}
}

// State returns the session's state.
func (s *Session) State() State {
	return s.state
}

// Points returns a copy of the stroke buffer.
func (s *Session) Points() sketchpath.Polyline {
	return sketchpath.Polyline(s.points).Clone()
}

func (s *Session) expect(op string, want State) error {
	if s.state != want {
		return fmt.Errorf("%s while %s: %w", op, s.state, ErrInvalidState)
	}
	return nil
}

// Begin starts a new stroke with an empty buffer.
func (s *Session) Begin() error {
	if err := s.expect("begin", Idle); err != nil {
		return err
	}
	s.points = s.points[:0]
	s.state = Sketching
	s.log.Debug("stroke started")
	return nil
}

// Move adds the point under the region coordinates (x, y) to the stroke. The
// point is placed on the plane through the view's pivot.
func (s *Session) Move(x, y float64, v view.View) error {
	if err := s.expect("move", Sketching); err != nil {
		return err
	}
	p := v.RegionToLocation(x, y, v.Location)
	if !p.IsFinite() {
		return fmt.Errorf("pointer at (%g, %g): %w", x, y, sketchpath.ErrNonFinite)
	}
	s.points = append(s.points, p)
	return nil
}

// Cancel discards the stroke.
func (s *Session) Cancel() error {
	if err := s.expect("cancel", Sketching); err != nil {
		return err
	}
	s.points = s.points[:0]
	s.state = Cancelled
	s.log.Debug("stroke cancelled")
	return nil
}

// Finalize retargets the stroke onto reference as seen through v and
// overwrites the stroke buffer with the result.
//
// On error the session stays in the sketching state and the buffer is left
// as it was.
func (s *Session) Finalize(reference sketchpath.Polyline, v view.View) error {
	if err := s.expect("finalize", Sketching); err != nil {
		return err
	}
	if len(s.points) < 2 {
		return fmt.Errorf("finalize %d points: %w", len(s.points), ErrTooFewPoints)
	}
	out, err := sketchpath.RetargetWith(reference, s.points, v.Reprojector())
	if err != nil {
		return err
	}
	if err := sketchpath.Apply(s.points, out); err != nil {
		return err
	}
	s.state = Finalized
	s.log.Info("stroke retargeted",
		"points", len(s.points),
		"reference_points", len(reference),
		"length", sketchpath.Polyline(s.points).Length())
	return nil
}

// Reset returns a cancelled or finalized session to idle. The stroke buffer
// keeps the finalized stroke until the next Begin.
func (s *Session) Reset() error {
	if s.state != Cancelled && s.state != Finalized {
		return fmt.Errorf("reset while %s: %w", s.state, ErrInvalidState)
	}
	s.state = Idle
	return nil
}
