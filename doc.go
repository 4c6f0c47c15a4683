// Package sketchpath reshapes free-hand 3D strokes so that they follow the
// spatial cadence of a reference path, such as the trajectory of a bone over
// an animation's frame range, while keeping every sketched point on the line
// of sight it was drawn along.
//
// # Arc length
//
// Both the stroke and the reference path are polylines ([Polyline]). Their
// points are related by normalized arc length: a point that lies at 30% of the
// stroke's length corresponds to the point at 30% of the reference path's
// length, regardless of how many points either path has.
//
// [BuildArclenIndex] computes the cumulative length at each point of a path,
// and [SampleAt] uses such an index to find the point at a fraction t of a
// path's length, interpolating linearly within segments. [Sampler] bundles a
// path with its index, and [Resample] produces evenly spaced samples.
//
// # Reprojection
//
// A stroke is drawn on a screen, so each of its points only fixes a line of
// sight ([Ray3]); its depth along that line is arbitrary. [Reproject] keeps a
// point's line of sight but moves it to the depth at which a target point
// projects onto that line. For perspective views all lines of sight start at
// the eye ([EyeReprojector]); for orthographic views they are parallel
// ([ParallelReprojector], [ProjectToDepth]).
//
// # Retargeting
//
// [Retarget] combines the two: every sketched point is reprojected to the
// depth of the reference point at the same normalized arc length. The result
// has as many points as the stroke. [Apply] writes a result back into an
// existing buffer.
//
// # Degenerate input
//
// All functions are pure and never produce NaN or infinite coordinates from
// finite input:
//
//   - Zero-length segments are kept in the arc length index. Sampling never
//     interpolates across them.
//   - A path whose total length is zero maps every point to t = 0.
//   - A sketched point that coincides with the eye has no line of sight;
//     it is replaced by its target.
//   - Empty paths and non-finite coordinates are rejected with
//     [ErrEmptyPath] and [ErrNonFinite].
//
// # Transforms
//
// [Affine3] represents the affine transforms used for object, bone and view
// matrices. Vector arithmetic is provided by [gonum.org/v1/gonum/spatial/r3],
// with which [Vec3] shares its layout.
package sketchpath
