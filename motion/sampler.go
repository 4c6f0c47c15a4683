package motion

import (
	"fmt"
	"log/slog"

	"honnef.co/go/sketchpath"
)

// A ReferenceSource produces the reference path for a range of frames, one
// point per frame.
type ReferenceSource interface {
	SampleReference(r FrameRange) (sketchpath.Polyline, error)
}

var (
	_ ReferenceSource = (*Sampler)(nil)
	_ ReferenceSource = MotionPath{}
)

// Sampler evaluates the world-space position of one bone of an armature.
type Sampler struct {
	Armature *Armature
	Bone     string
	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// SampleReference evaluates the bone's world position at every frame of r.
func (s *Sampler) SampleReference(r FrameRange) (sketchpath.Polyline, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.Armature.Bone(s.Bone); !ok {
		return nil, fmt.Errorf("bone %q: %w", s.Bone, ErrUnknownBone)
	}
	out := make(sketchpath.Polyline, 0, r.Len())
	for frame := r.Start; frame <= r.End; frame++ {
		m, err := s.Armature.PoseMatrix(s.Bone, float64(frame))
		if err != nil {
			return nil, err
		}
		out = append(out, sketchpath.Point3(m.Translation()))
	}
	s.logger().Debug("sampled reference path", "bone", s.Bone, "frames", r.String(), "length", out.Length())
	return out, nil
}

func (s *Sampler) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// MotionPath is a cached reference path: Points[i] is the position at frame
// Start+i.
type MotionPath struct {
	Start  int
	Points sketchpath.Polyline
}

// Cache samples src over r.
func Cache(src ReferenceSource, r FrameRange) (MotionPath, error) {
	pts, err := src.SampleReference(r)
	if err != nil {
		return MotionPath{}, err
	}
	return MotionPath{Start: r.Start, Points: pts}, nil
}

// Range returns the frames covered by the path.
func (mp MotionPath) Range() FrameRange {
	return FrameRange{Start: mp.Start, End: mp.Start + len(mp.Points) - 1}
}

// Frame returns the frame of point i.
func (mp MotionPath) Frame(i int) int {
	return mp.Start + i
}

// Window returns the cached points for the frames of r that the path covers.
// The result shares memory with the path.
func (mp MotionPath) Window(r FrameRange) sketchpath.Polyline {
	return mp.Points.Window(r.Start-mp.Start, r.End+1-mp.Start)
}

// SampleReference returns a copy of the cached points for r. It fails if the
// path does not cover all of r.
func (mp MotionPath) SampleReference(r FrameRange) (sketchpath.Polyline, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	have := mp.Range()
	if !have.Contains(r.Start) || !have.Contains(r.End) {
		return nil, fmt.Errorf("frames %s outside cached %s: %w", r, have, ErrInvalidRange)
	}
	return mp.Window(r).Clone(), nil
}
