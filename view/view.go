// Package view maps between a 3D viewport's screen and world coordinates.
//
// A [View] orbits a pivot point: the camera sits Distance units behind the
// pivot along its viewing axis and is oriented by Rotation. Region
// coordinates are in pixels with the origin in the bottom-left corner of the
// viewport and y pointing up.
package view

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/sketchpath"
)

// ErrInvalidView is returned by [View.Validate].
var ErrInvalidView = errors.New("view: invalid view")

type View struct {
	// Rotation orients the camera. Unrotated, it looks along −Z with +Y up.
	// The zero value means no rotation.
	Rotation r3.Rotation
	// Location is the pivot the view orbits.
	Location sketchpath.Point3
	// Distance from the pivot to the eye.
	Distance float64
	// Perspective selects a perspective projection; otherwise the view is
	// orthographic.
	Perspective bool
	// FOV is the vertical field of view in radians, for perspective views.
	FOV float64
	// OrthoScale is the visible height in world units, for orthographic
	// views.
	OrthoScale float64
	// Width and Height are the viewport's size in pixels.
	Width  int
	Height int
}

// Validate reports whether the view can map between screen and world.
func (v View) Validate() error {
	switch {
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("viewport %dx%d: %w", v.Width, v.Height, ErrInvalidView)
	case v.Perspective && (v.FOV <= 0 || v.FOV >= math.Pi):
		return fmt.Errorf("field of view %g: %w", v.FOV, ErrInvalidView)
	case v.Perspective && !(v.Distance > 0):
		// The eye would sit on the pivot plane and every point would land on it.
		return fmt.Errorf("perspective distance %g: %w", v.Distance, ErrInvalidView)
	case !v.Perspective && v.OrthoScale <= 0:
		return fmt.Errorf("orthographic scale %g: %w", v.OrthoScale, ErrInvalidView)
	case v.Distance < 0 || math.IsNaN(v.Distance) || math.IsInf(v.Distance, 0):
		return fmt.Errorf("distance %g: %w", v.Distance, ErrInvalidView)
	case !v.Location.IsFinite():
		return fmt.Errorf("location %s: %w", v.Location, ErrInvalidView)
	}
	return nil
}

// CameraMatrix returns the transform from camera space to world space.
func (v View) CameraMatrix() sketchpath.Affine3 {
	return sketchpath.Rotate3(v.rotation()).
		PreTranslate(sketchpath.Vec(0, 0, v.Distance)).
		ThenTranslate(sketchpath.Vec3(v.Location))
}

// ViewMatrix returns the transform from world space to camera space.
func (v View) ViewMatrix() sketchpath.Affine3 {
	return v.CameraMatrix().Invert()
}

// Origin returns the position of the eye.
func (v View) Origin() sketchpath.Point3 {
	return sketchpath.Point3(v.ViewMatrix().Invert().Translation())
}

// Direction returns the unit vector the camera looks along.
func (v View) Direction() sketchpath.Vec3 {
	return sketchpath.Vec(0, 0, -1).Rotate(v.rotation())
}

// Reprojector returns the reprojection matching the view's lines of sight.
func (v View) Reprojector() sketchpath.Reprojector {
	if v.Perspective {
		return sketchpath.EyeReprojector{Origin: v.Origin()}
	}
	return sketchpath.ParallelReprojector{Dir: v.Direction()}
}

func (v View) rotation() r3.Rotation {
	if v.Rotation == (r3.Rotation{}) {
		return r3.Rotation{Real: 1}
	}
	return v.Rotation
}

func (v View) aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// ndc maps region coordinates to [-1, 1].
func (v View) ndc(x, y float64) (float64, float64) {
	return 2*x/float64(v.Width) - 1, 2*y/float64(v.Height) - 1
}

// RegionToLocation returns the world position under the region coordinates
// (x, y), on the plane through depth that faces the camera.
func (v View) RegionToLocation(x, y float64, depth sketchpath.Point3) sketchpath.Point3 {
	nx, ny := v.ndc(x, y)
	cam := v.CameraMatrix()
	dir := v.Direction()
	if v.Perspective {
		h := math.Tan(v.FOV / 2)
		ray := cam.TransformVec(sketchpath.Vec(nx*h*v.aspect(), ny*h, -1))
		eye := sketchpath.Point3(cam.Translation())
		// ray has unit depth along dir.
		s := depth.Sub(eye).Dot(dir) / ray.Dot(dir)
		return eye.Translate(ray.Mul(s))
	}
	h := v.OrthoScale / 2
	base := sketchpath.Pt3(nx*h*v.aspect(), ny*h, 0).Transform(cam)
	return sketchpath.ProjectToDepth(base, dir, depth)
}

// Project returns the region coordinates of a world position. It reports
// false for positions at or behind the eye of a perspective view.
func (v View) Project(p sketchpath.Point3) (x, y float64, ok bool) {
	q := p.Transform(v.ViewMatrix())
	var nx, ny float64
	if v.Perspective {
		if q.Z >= 0 {
			return 0, 0, false
		}
		h := math.Tan(v.FOV/2) * -q.Z
		nx, ny = q.X/(h*v.aspect()), q.Y/h
	} else {
		h := v.OrthoScale / 2
		nx, ny = q.X/(h*v.aspect()), q.Y/h
	}
	return (nx + 1) / 2 * float64(v.Width), (ny + 1) / 2 * float64(v.Height), true
}
