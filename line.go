package linestring

// Line represents a directed straight line segment from P0 to P1.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Ln returns the line segment from p0 to p1.
func Ln(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Length returns the euclidean length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval evaluates the line at parameter t, linearly interpolating between the
// start and end points. t is not clamped to [0, 1].
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Interp returns the point that lies the given fraction of the line's length
// along the line, measured from P0.
//
// Fractions at or below zero, including negative infinity, return P0, and
// fractions at or above one, including positive infinity, return P1. Both
// cases skip the interpolation arithmetic entirely, so the endpoints are
// reproduced exactly even when the opposite endpoint is not finite.
//
// Interp reports failure if the fraction is NaN, or if the interpolated point
// would have a non-finite coordinate because the line itself does.
func (l Line) Interp(fraction float64) (Point, bool) {
	switch Cmp(fraction, 0) {
	case Undefined:
		return Point{}, false
	case Less, Equal:
		return l.P0, true
	}
	if o := Cmp(fraction, 1); o == Greater || o == Equal {
		return l.P1, true
	}
	pt := l.P0.Translate(l.P1.Sub(l.P0).Mul(fraction))
	if !pt.IsFinite() {
		return Point{}, false
	}
	return pt, true
}

// Nearest returns the squared distance from pt to the closest position on the
// line, as well as that position's parameter, clamped to [0, 1].
func (l Line) Nearest(pt Point) (distSq, t float64) {
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

// Midpoint returns the point halfway between the line's endpoints.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Reversed returns the line from P1 to P0.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }
