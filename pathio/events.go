package pathio

import (
	"fmt"
	"io"

	"honnef.co/go/sketchpath/session"
)

type eventFile struct {
	Type  string  `json:"type" yaml:"type"`
	X     float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y     float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Frame int     `json:"frame,omitempty" yaml:"frame,omitempty"`
	Delta int     `json:"delta,omitempty" yaml:"delta,omitempty"`
}

func events(efs []eventFile) ([]session.Event, error) {
	out := make([]session.Event, len(efs))
	for i, ef := range efs {
		kind, err := session.ParseEventKind(ef.Type)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out[i] = session.Event{
			Kind:  kind,
			X:     ef.X,
			Y:     ef.Y,
			Frame: ef.Frame,
			Delta: ef.Delta,
		}
	}
	return out, nil
}

// DecodeEvents reads a list of recorded input events in format f.
//
// Each event has a type, one of begin, move, finalize, cancel, frame, wheel
// and reset, and the fields that type uses: x and y for move, frame for frame
// and delta for wheel.
func DecodeEvents(r io.Reader, f Format) ([]session.Event, error) {
	var efs []eventFile
	if err := decode(r, f, &efs); err != nil {
		return nil, err
	}
	return events(efs)
}

// ReadEvents reads the recorded input events stored in path.
func ReadEvents(path string) ([]session.Event, error) {
	var efs []eventFile
	if err := readFile(path, &efs); err != nil {
		return nil, err
	}
	evs, err := events(efs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return evs, nil
}
