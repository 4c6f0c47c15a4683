package sketchpath

// ArclenIndex holds the cumulative arc length at each point of a polyline.
//
// Lengths[0] is 0 and Lengths[i] is Lengths[i-1] plus the distance between
// points i-1 and i, so Lengths is non-decreasing and has one entry per point.
// Total is the last entry, or 0 for an empty polyline.
type ArclenIndex struct {
	Lengths []float64
	Total   float64
}

// BuildArclenIndex computes the arc length index of points.
//
// Zero-length segments are kept: they produce repeated entries, which
// [SampleAt] handles by not moving along them.
func BuildArclenIndex(points Polyline) ArclenIndex {
	if len(points) == 0 {
		return ArclenIndex{}
	}
	lengths := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Sub(points[i-1]).Hypot()
		lengths[i] = total
	}
	return ArclenIndex{
		Lengths: lengths,
		Total:   total,
	}
}

// Len returns the number of entries in the index.
func (idx ArclenIndex) Len() int {
	return len(idx.Lengths)
}

// Param returns the normalized arc length position of point i, in [0, 1].
// Every point of a path with zero total length is at position 0.
func (idx ArclenIndex) Param(i int) float64 {
	if idx.Total == 0 {
		return 0
	}
	// Guard against the final quotient rounding above 1.
	return min(idx.Lengths[i]/idx.Total, 1)
}

// SampleAt returns the point that lies at the fraction t of the arc length of
// points, where idx must be the index of points.
//
// SampleAt finds the first point whose cumulative length reaches t * Total and
// interpolates linearly within the segment ending at that point. A t of 0
// returns the first point and a t of 1 the last. t is not clamped: a negative
// t extrapolates backwards along the first segment. If no point's cumulative length reaches the target, as happens for t > 1,
// t = NaN or when rounding leaves the target slightly above Total, the last
// point is returned.
//
// Segments of zero length are never interpolated across: the target can only
// land on one when it equals the segment's start, in which case the segment's
// start is returned.
//
// SampleAt panics if points is empty or idx does not match points.
func SampleAt(points Polyline, idx ArclenIndex, t float64) Point3 {
	if len(points) != len(idx.Lengths) {
		panic("sketchpath: arc length index does not match polyline")
	}
	if len(points) == 1 {
		return points[0]
	}
	target := t * idx.Total
	for i := 1; i < len(points); i++ {
		if idx.Lengths[i] >= target {
			prev := idx.Lengths[i-1]
			seg := idx.Lengths[i] - prev
			factor := 0.0
			if seg > 0 {
				factor = (target - prev) / seg
			}
			return points[i-1].Lerp(points[i], factor)
		}
	}
	return points[len(points)-1]
}

// Sampler samples a polyline by normalized arc length.
type Sampler struct {
	points Polyline
	idx    ArclenIndex
}

// NewSampler indexes points for sampling. It returns [ErrEmptyPath] if points
// is empty. The sampler keeps a reference to points, which must not be
// modified while the sampler is in use.
func NewSampler(points Polyline) (*Sampler, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPath
	}
	return &Sampler{
		points: points,
		idx:    BuildArclenIndex(points),
	}, nil
}

// At returns the point at the fraction t of the path's arc length. See
// [SampleAt].
func (s *Sampler) At(t float64) Point3 {
	return SampleAt(s.points, s.idx, t)
}

// Total returns the path's arc length.
func (s *Sampler) Total() float64 {
	return s.idx.Total
}

// Index returns the path's arc length index.
func (s *Sampler) Index() ArclenIndex {
	return s.idx
}
