package sketchpath

import (
	"iter"
	"slices"
)

// Polyline is an ordered sequence of points joined by straight segments.
//
// Functions in this package never modify a Polyline they were given; those
// that produce paths return new slices.
type Polyline []Point3

// Segments returns the polyline's segments in order. A polyline of n points
// has max(n-1, 0) segments, some of which may have zero length.
func (pl Polyline) Segments() iter.Seq[Line3] {
	return func(yield func(Line3) bool) {
		for i := 1; i < len(pl); i++ {
			if !yield(Line3{pl[i-1], pl[i]}) {
				return
			}
		}
	}
}

// Length returns the sum of the polyline's segment lengths.
func (pl Polyline) Length() float64 {
	total := 0.0
	for seg := range pl.Segments() {
		total += seg.Length()
	}
	return total
}

// Clone returns a copy of the polyline.
func (pl Polyline) Clone() Polyline {
	return slices.Clone(pl)
}

// Transform returns a new polyline with every point transformed by aff.
func (pl Polyline) Transform(aff Affine3) Polyline {
	return slices.Collect(Transform(slices.Values(pl), aff))
}

// Window returns the points with indices in [start, end), clamped to the
// polyline's bounds. The result shares memory with pl.
func (pl Polyline) Window(start, end int) Polyline {
	start = max(0, min(start, len(pl)))
	end = max(start, min(end, len(pl)))
	return pl[start:end]
}

// IsFinite reports whether every point of the polyline is finite.
func (pl Polyline) IsFinite() bool {
	for _, pt := range pl {
		if !pt.IsFinite() {
			return false
		}
	}
	return true
}
