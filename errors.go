package sketchpath

import "errors"

var (
	// ErrEmptyPath is returned when a path that must contain points is empty.
	ErrEmptyPath = errors.New("sketchpath: nothing to retarget: empty path")
	// ErrNonFinite is returned when an input coordinate is NaN or infinite.
	ErrNonFinite = errors.New("sketchpath: non-finite coordinate")
	// ErrLengthMismatch is returned when a result cannot be applied to a
	// buffer of a different length.
	ErrLengthMismatch = errors.New("sketchpath: length mismatch")
)
