package sketchpath

import "fmt"

// Retarget reshapes sketch so that it follows the spatial cadence of
// reference, as seen from a perspective eye at origin.
//
// Each sketched point is assigned its normalized arc length position t along
// sketch. The reference path is sampled at the same t, and the sketched point
// is moved along its line of sight from origin to the depth of that sample.
// The result has one point per sketched point, in the same order. A sketch
// whose total length is zero uses t = 0 for every point.
//
// Retarget is equivalent to RetargetWith(reference, sketch,
// EyeReprojector{origin}).
func Retarget(reference, sketch Polyline, origin Point3) (Polyline, error) {
	if !origin.IsFinite() {
		return nil, fmt.Errorf("view origin %s: %w", origin, ErrNonFinite)
	}
	return RetargetWith(reference, sketch, EyeReprojector{Origin: origin})
}

// RetargetWith is like [Retarget] but reprojects with rp.
//
// It returns [ErrEmptyPath] if either path is empty and [ErrNonFinite] if
// either path contains a NaN or infinite coordinate. On error the result is
// nil; no partial result is ever returned.
func RetargetWith(reference, sketch Polyline, rp Reprojector) (Polyline, error) {
	if len(reference) == 0 {
		return nil, fmt.Errorf("reference path: %w", ErrEmptyPath)
	}
	if len(sketch) == 0 {
		return nil, fmt.Errorf("sketch path: %w", ErrEmptyPath)
	}
	if !reference.IsFinite() {
		return nil, fmt.Errorf("reference path: %w", ErrNonFinite)
	}
	if !sketch.IsFinite() {
		return nil, fmt.Errorf("sketch path: %w", ErrNonFinite)
	}

	refIdx := BuildArclenIndex(reference)
	sketchIdx := BuildArclenIndex(sketch)

	out := make(Polyline, len(sketch))
	for i, pt := range sketch {
		t := sketchIdx.Param(i)
		target := SampleAt(reference, refIdx, t)
		np := rp.Reproject(pt, target)
		if !np.IsFinite() {
			// Only reachable through overflow of huge coordinates.
			return nil, fmt.Errorf("sketch point %d: %w", i, ErrNonFinite)
		}
		out[i] = np
	}
	return out, nil
}

// Apply overwrites dst with src, index for index. It returns
// [ErrLengthMismatch] without modifying dst if the lengths differ.
func Apply(dst []Point3, src Polyline) error {
	if len(dst) != len(src) {
		return fmt.Errorf("apply %d points to buffer of %d: %w", len(src), len(dst), ErrLengthMismatch)
	}
	copy(dst, src)
	return nil
}
