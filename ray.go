package sketchpath

// Ray3 is a half-line starting at Origin and extending along Dir. Dir is of
// unit length for rays built by [RayThrough].
type Ray3 struct {
	Origin Point3
	Dir    Vec3
}

// RayThrough returns the ray from origin through pt. It reports false if the
// two points coincide, in which case the direction is undefined.
func RayThrough(origin, pt Point3) (Ray3, bool) {
	d := pt.Sub(origin)
	n := d.Hypot()
	if n == 0 || !pt.IsFinite() || !origin.IsFinite() {
		return Ray3{}, false
	}
	return Ray3{Origin: origin, Dir: d.Div(n)}, true
}

// At returns the point at signed distance s along the ray.
func (r Ray3) At(s float64) Point3 {
	return r.Origin.Translate(r.Dir.Mul(s))
}

// Depth returns the signed distance along the ray at which the orthogonal
// projection of pt falls.
func (r Ray3) Depth(pt Point3) float64 {
	return pt.Sub(r.Origin).Dot(r.Dir)
}

// ClosestPoint returns the orthogonal projection of pt onto the ray's line.
// The result may lie behind the origin.
func (r Ray3) ClosestPoint(pt Point3) Point3 {
	return r.At(r.Depth(pt))
}

// Reproject moves original along the ray from origin through original, to the
// depth at which target projects onto that ray.
//
// The result lies on the line of sight through original, so it appears at the
// same place on screen, while its distance from the viewer follows target. If
// original coincides with origin the ray is undefined and target is returned
// unchanged.
func Reproject(original, origin, target Point3) Point3 {
	r, ok := RayThrough(origin, original)
	if !ok {
		return target
	}
	return r.ClosestPoint(target)
}

// ProjectToDepth moves pt along dir so that its depth, measured along dir,
// matches that of target. dir must be of unit length.
//
// This is the reprojection for views whose lines of sight are all parallel,
// such as orthographic views.
func ProjectToDepth(pt Point3, dir Vec3, target Point3) Point3 {
	delta := Vec3(target).Dot(dir) - Vec3(pt).Dot(dir)
	return pt.Translate(dir.Mul(delta))
}

// A Reprojector moves an original point along its line of sight to the depth
// of a target point.
type Reprojector interface {
	Reproject(original, target Point3) Point3
}

// EyeReprojector reprojects along rays through a single eye position, as seen
// by perspective views.
type EyeReprojector struct {
	Origin Point3
}

// Reproject implements [Reprojector].
func (e EyeReprojector) Reproject(original, target Point3) Point3 {
	return Reproject(original, e.Origin, target)
}

// ParallelReprojector reprojects along a fixed view direction, as seen by
// orthographic views.
type ParallelReprojector struct {
	Dir Vec3
}

// Reproject implements [Reprojector]. A zero or non-finite direction leaves
// target unchanged.
func (p ParallelReprojector) Reproject(original, target Point3) Point3 {
	n := p.Dir.Hypot()
	if n == 0 || p.Dir.IsNaN() || p.Dir.IsInf() {
		return target
	}
	return ProjectToDepth(original, p.Dir.Div(n), target)
}
