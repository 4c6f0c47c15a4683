package sketchpath

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Affine3 describes an affine transform of 3D space as a linear part M and a
// translation T. It represents this augmented matrix:
//
//	| m00 m01 m02 tx |
//	| m10 m11 m12 ty |
//	| m20 m21 m22 tz |
//	|  0   0   0   1 |
//
// Points are column vectors, so that (A * B) * p == A * (B * p). This is the
// convention used for object, bone and view matrices.
type Affine3 struct {
	M [3][3]float64
	T Vec3
}

// Identity3 is the identity transform.
var Identity3 = Affine3{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

// Scale3 creates an affine transform representing non-uniform scaling.
func Scale3(x, y, z float64) Affine3 {
	return Affine3{M: [3][3]float64{{x, 0, 0}, {0, y, 0}, {0, 0, z}}}
}

// Translate3 creates an affine transform representing translation.
func Translate3(v Vec3) Affine3 {
	aff := Identity3
	aff.T = v
	return aff
}

// Rotate3 creates an affine transform representing the rotation rot.
func Rotate3(rot r3.Rotation) Affine3 {
	if rot == (r3.Rotation{}) {
		// The zero quaternion is not a rotation; treat it as no rotation.
		return Identity3
	}
	m := rot.Mat()
	var aff Affine3
	for i := range 3 {
		for j := range 3 {
			aff.M[i][j] = m.At(i, j)
		}
	}
	return aff
}

// Mul returns aff * o, the transform that applies o first and aff second.
func (aff Affine3) Mul(o Affine3) Affine3 {
	var out Affine3
	for i := range 3 {
		for j := range 3 {
			out.M[i][j] = aff.M[i][0]*o.M[0][j] + aff.M[i][1]*o.M[1][j] + aff.M[i][2]*o.M[2][j]
		}
	}
	out.T = Vec3(Point3(o.T).Transform(aff))
	return out
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate3(v) * aff"
func (aff Affine3) ThenTranslate(v Vec3) Affine3 {
	aff.T = aff.T.Add(v)
	return aff
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate3(v)"
func (aff Affine3) PreTranslate(v Vec3) Affine3 {
	return aff.Mul(Translate3(v))
}

// ThenRotate creates aff followed by the rotation rot.
//
// Equivalent to "Rotate3(rot) * aff"
func (aff Affine3) ThenRotate(rot r3.Rotation) Affine3 {
	return Rotate3(rot).Mul(aff)
}

// Determinant computes the determinant of the linear part.
func (aff Affine3) Determinant() float64 {
	m := &aff.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Invert computes the inverse transform.
//
// Produces NaN or infinite values when the determinant is zero.
func (aff Affine3) Invert() Affine3 {
	m := &aff.M
	invDet := 1 / aff.Determinant()
	var out Affine3
	out.M[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	out.M[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	out.M[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	out.M[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	out.M[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	out.M[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	out.M[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	out.M[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	out.M[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	// The inverse translation is -M⁻¹ t.
	out.T = Vec3(Point3(aff.T.Negate()).Transform(Affine3{M: out.M}))
	return out
}

// TransformVec applies only the linear part of the transform to v.
func (aff Affine3) TransformVec(v Vec3) Vec3 {
	return Vec3(Point3(v).Transform(Affine3{M: aff.M}))
}

// Translation returns the translation component of this affine transformation.
func (aff Affine3) Translation() Vec3 {
	return aff.T
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine3) WithTranslation(v Vec3) Affine3 {
	aff.T = v
	return aff
}

func (aff Affine3) IsInf() bool {
	for _, row := range aff.M {
		for _, n := range row {
			if math.IsInf(n, 0) {
				return true
			}
		}
	}
	return aff.T.IsInf()
}

func (aff Affine3) IsNaN() bool {
	for _, row := range aff.M {
		for _, n := range row {
			if math.IsNaN(n) {
				return true
			}
		}
	}
	return aff.T.IsNaN()
}

func Transform[T interface{ Transform(Affine3) T }](seq iter.Seq[T], aff Affine3) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
