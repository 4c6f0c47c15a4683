package sketchpath

// Line3 represents a line segment in 3D space.
type Line3 struct {
	// The line's start point.
	P0 Point3
	// The line's end point.
	P1 Point3
}

// Length returns the length of the line.
func (l Line3) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, where t = 0 is P0 and t = 1 is P1.
func (l Line3) Eval(t float64) Point3 {
	return l.P0.Lerp(l.P1, t)
}

// SolveForArclen returns the parameter at which the line has the given arc
// length. Degenerate lines return 0.
func (l Line3) SolveForArclen(arclen float64) float64 {
	n := l.Length()
	if n == 0 {
		return 0
	}
	return arclen / n
}

// Nearest returns the squared distance from pt to the closest point of the
// line, and that point's parameter.
func (l Line3) Nearest(pt Point3) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line3) Transform(aff Affine3) Line3 {
	return Line3{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line3) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line3) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
