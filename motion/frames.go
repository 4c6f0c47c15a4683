package motion

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned for frame ranges that end before they start.
var ErrInvalidRange = errors.New("motion: invalid frame range")

// FrameRange is an inclusive range of frames.
type FrameRange struct {
	Start int
	End   int
}

func (r FrameRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// Validate returns [ErrInvalidRange] if r ends before it starts.
func (r FrameRange) Validate() error {
	if r.End < r.Start {
		return fmt.Errorf("%s: %w", r, ErrInvalidRange)
	}
	return nil
}

// Len returns the number of frames in r.
func (r FrameRange) Len() int {
	return max(r.End-r.Start+1, 0)
}

// Contains reports whether frame lies within r.
func (r FrameRange) Contains(frame int) bool {
	return frame >= r.Start && frame <= r.End
}

// Clamp returns the frame of r closest to frame.
func (r FrameRange) Clamp(frame int) int {
	return max(r.Start, min(frame, r.End))
}

// Intersect returns the frames common to r and o. The result is invalid if
// they do not overlap.
func (r FrameRange) Intersect(o FrameRange) FrameRange {
	return FrameRange{
		Start: max(r.Start, o.Start),
		End:   min(r.End, o.End),
	}
}
