package session

import (
	"fmt"

	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/view"
)

// EventKind identifies the input an [Event] represents.
type EventKind int

const (
	// Begin starts a stroke.
	Begin EventKind = iota + 1
	// Move reports the pointer at X, Y.
	Move
	// Finalize ends the stroke and retargets it.
	Finalize
	// Cancel discards the stroke.
	Cancel
	// Frame changes the current frame to Frame.
	Frame
	// Wheel widens the timeline window for positive Delta and narrows it for
	// negative Delta, one frame per unit.
	Wheel
	// Reset returns a finished session to idle.
	Reset
)

var eventNames = map[EventKind]string{
	Begin:    "begin",
	Move:     "move",
	Finalize: "finalize",
	Cancel:   "cancel",
	Frame:    "frame",
	Wheel:    "wheel",
	Reset:    "reset",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// ParseEventKind returns the kind named s.
func ParseEventKind(s string) (EventKind, error) {
	for k, name := range eventNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown event %q", s)
}

// Event is one input delivered to a session.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Frame int
	Delta int
}

// Env is what a session needs from its host to handle events.
type Env struct {
	View view.View
	// Reference returns the reference path to retarget onto. It is only
	// called when a stroke is finalized.
	Reference func() (sketchpath.Polyline, error)
}

// Handle applies ev to the session.
func (s *Session) Handle(ev Event, env Env) error {
	if (ev.Kind == Frame || ev.Kind == Wheel) && s.Timeline == nil {
		return fmt.Errorf("%s event without a timeline: %w", ev.Kind, ErrInvalidState)
	}
	switch ev.Kind {
	case Begin:
		return s.Begin()
	case Move:
		return s.Move(ev.X, ev.Y, env.View)
	case Finalize:
		if err := s.expect("finalize", Sketching); err != nil {
			return err
		}
		ref, err := env.Reference()
		if err != nil {
			return err
		}
		return s.Finalize(ref, env.View)
	case Cancel:
		return s.Cancel()
	case Frame:
		s.Timeline.SetCurrent(ev.Frame)
		return nil
	case Wheel:
		for range ev.Delta {
			s.Timeline.Widen()
		}
		for range -ev.Delta {
			s.Timeline.Narrow()
		}
		return nil
	case Reset:
		return s.Reset()
	default:
		return fmt.Errorf("unhandled event %s", ev.Kind)
	}
}

// Run handles events in order and stops at the first error.
func (s *Session) Run(events []Event, env Env) error {
	for i, ev := range events {
		if err := s.Handle(ev, env); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev.Kind, err)
		}
	}
	return nil
}
