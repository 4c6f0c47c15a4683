package motion

import (
	"slices"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/sketchpath"
)

// Key is a keyframe of a bone's local transform.
type Key struct {
	Frame    int
	Location sketchpath.Vec3
	// Rotation is a unit quaternion. The zero value means no rotation.
	Rotation r3.Rotation
}

// Track is a sequence of keyframes. Between keys, locations are interpolated
// linearly and rotations spherically; outside the keyed frames the nearest
// key holds.
type Track struct {
	Keys []Key
}

// Sort orders the keys by frame. Eval requires sorted keys.
func (tr *Track) Sort() {
	slices.SortStableFunc(tr.Keys, func(a, b Key) int {
		return a.Frame - b.Frame
	})
}

// Eval returns the interpolated location and rotation at frame. An empty
// track evaluates to the rest pose.
func (tr Track) Eval(frame float64) (sketchpath.Vec3, r3.Rotation) {
	keys := tr.Keys
	switch {
	case len(keys) == 0:
		return sketchpath.Vec3{}, identity
	case frame <= float64(keys[0].Frame):
		return keys[0].Location, rotation(keys[0].Rotation)
	case frame >= float64(keys[len(keys)-1].Frame):
		k := keys[len(keys)-1]
		return k.Location, rotation(k.Rotation)
	}

	i, _ := slices.BinarySearchFunc(keys, frame, func(k Key, f float64) int {
		switch {
		case float64(k.Frame) < f:
			return -1
		case float64(k.Frame) > f:
			return 1
		default:
			return 0
		}
	})
	// keys[i-1].Frame < frame <= keys[i].Frame
	k0, k1 := keys[i-1], keys[i]
	t := (frame - float64(k0.Frame)) / float64(k1.Frame-k0.Frame)
	return k0.Location.Lerp(k1.Location, t), slerp(rotation(k0.Rotation), rotation(k1.Rotation), t)
}

var identity = r3.Rotation{Real: 1}

func rotation(r r3.Rotation) r3.Rotation {
	if r == (r3.Rotation{}) {
		return identity
	}
	return r
}

// slerp spherically interpolates between r0 and r1 along the shorter arc.
func slerp(r0, r1 r3.Rotation, t float64) r3.Rotation {
	q0 := quat.Number(r0)
	q1 := quat.Number(r1)
	if q0.Real*q1.Real+q0.Imag*q1.Imag+q0.Jmag*q1.Jmag+q0.Kmag*q1.Kmag < 0 {
		q1 = quat.Scale(-1, q1)
	}
	//  p(t) = (q1 ∗ q0^−1) ^ t ∗ q0
	d := quat.Mul(q1, quat.Inv(q0))
	d = quat.PowReal(d, t)
	return r3.Rotation(quat.Mul(d, q0))
}
