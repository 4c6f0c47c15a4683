package session

import "honnef.co/go/sketchpath/motion"

// Timeline tracks the window of frames shown around the current frame.
type Timeline struct {
	// Range is the scene's frame range.
	Range motion.FrameRange
	// Width is the number of frames shown on either side of Current.
	Width   int
	Current int

	viewStart, viewEnd int
}

// NewTimeline returns a timeline over r, positioned at its first frame. A
// width of zero or less selects half the range's length.
func NewTimeline(r motion.FrameRange, width int) *Timeline {
	if width <= 0 {
		width = r.Len() / 2
	}
	tl := &Timeline{
		Range:   r,
		Width:   width,
		Current: r.Start,
	}
	tl.update()
	return tl
}

// View returns the frames currently shown.
func (tl *Timeline) View() motion.FrameRange {
	return motion.FrameRange{Start: tl.viewStart, End: tl.viewEnd}
}

// SetCurrent moves the window to be centred on frame, clamped to the range.
func (tl *Timeline) SetCurrent(frame int) {
	tl.Current = tl.Range.Clamp(frame)
	tl.update()
}

// Widen shows one more frame on either side, up to the length of the range.
func (tl *Timeline) Widen() {
	tl.Width = min(tl.Width+1, tl.Range.End-tl.Range.Start)
	tl.update()
}

// Narrow shows one frame less on either side, down to one.
func (tl *Timeline) Narrow() {
	tl.Width = max(1, tl.Width-1)
	tl.update()
}

func (tl *Timeline) update() {
	tl.viewStart = max(tl.Range.Start, tl.Current-tl.Width)
	tl.viewEnd = min(tl.Range.End, tl.Current+tl.Width)
}
