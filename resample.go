package sketchpath

import (
	"fmt"
	"iter"
)

// Resample returns n points spaced evenly by arc length along points, the
// first and last of which coincide with the path's endpoints.
//
// It returns [ErrEmptyPath] if points is empty. For n == 1 the result is the
// first point; n must not be negative.
func Resample(points Polyline, n int) (Polyline, error) {
	if n < 0 {
		return nil, fmt.Errorf("sketchpath: negative sample count %d", n)
	}
	s, err := NewSampler(points)
	if err != nil {
		return nil, err
	}
	out := make(Polyline, 0, n)
	for t := range evenParams(n) {
		out = append(out, s.At(t))
	}
	return out, nil
}

// evenParams yields n parameters evenly spaced in [0, 1], including both
// ends. The last parameter is exactly 1.
func evenParams(n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		switch n {
		case 0:
			return
		case 1:
			yield(0)
			return
		}
		step := 1.0 / float64(n-1)
		for i := range n - 1 {
			if !yield(float64(i) * step) {
				return
			}
		}
		yield(1)
	}
}
