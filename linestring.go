package linestring

import (
	"iter"
	"math"
)

// LineString is an ordered sequence of points, interpreted as a connected
// series of straight line segments between consecutive points. A nil or empty
// linestring has no segments and zero length, as does a linestring with a
// single point.
//
// LineString values are never mutated by this package's functions; they may be
// shared freely between goroutines.
type LineString []Point

// Lines returns an iterator over the linestring's segments, in order. A
// linestring with fewer than two points yields no segments.
func (ls LineString) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 0; i+1 < len(ls); i++ {
			if !yield(Line{ls[i], ls[i+1]}) {
				return
			}
		}
	}
}

// Length returns the total euclidean length of the linestring, the sum of its
// segment lengths. It is zero for linestrings with fewer than two points, NaN
// if the linestring contains a NaN coordinate, and infinite if it contains an
// infinite one.
func (ls LineString) Length() float64 {
	var length float64
	for l := range ls.Lines() {
		length += l.Length()
	}
	return length
}

// First returns the linestring's first point, if any.
func (ls LineString) First() (Point, bool) {
	if len(ls) == 0 {
		return Point{}, false
	}
	return ls[0], true
}

// Last returns the linestring's last point, if any.
func (ls LineString) Last() (Point, bool) {
	if len(ls) == 0 {
		return Point{}, false
	}
	return ls[len(ls)-1], true
}

// Reversed returns a new linestring with the points in reverse order.
func (ls LineString) Reversed() LineString {
	out := make(LineString, len(ls))
	for i, pt := range ls {
		out[len(ls)-1-i] = pt
	}
	return out
}

// IsInf reports whether at least one coordinate is infinite.
func (ls LineString) IsInf() bool {
	for _, pt := range ls {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one coordinate is NaN.
func (ls LineString) IsNaN() bool {
	for _, pt := range ls {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing all of the
// linestring's points. It reports failure for an empty linestring.
func (ls LineString) BoundingBox() (Rect, bool) {
	if len(ls) == 0 {
		return Rect{}, false
	}
	bbox := NewRectFromPoints(ls[0], ls[0])
	for _, pt := range ls[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox, true
}

// Interp returns the point that lies the given fraction of the linestring's
// total length along the linestring, measured from its first point.
//
// The fraction is not restricted to [0, 1]: fractions below zero resolve to
// the first point and fractions above one to the last point, via the same
// clamping as [Line.Interp].
//
// Interp reports failure if the fraction is NaN, if the linestring is empty,
// or if a coordinate needed for the result cannot be computed finitely
// because the linestring contains NaN or infinite coordinates. All of these
// surface through comparisons involving NaN, which evaluate to [Undefined];
// there is no separate validation pass.
//
// A linestring consisting of a single point has no segments and therefore
// performs no comparisons; Interp returns that point for every fraction.
func (ls LineString) Interp(fraction float64) (Point, bool) {
	total := ls.Length()
	target := total * fraction
	// Walk the segments in order, tracking the length traced before the
	// current segment. The first segment whose far end reaches or passes the
	// target contains the result; the remaining distance re-scales to a local
	// fraction of that segment.
	var cum float64
	for l := range ls.Lines() {
		length := l.Length()
		switch Cmp(cum+length, target) {
		case Undefined:
			return Point{}, false
		case Less:
			cum += length
		default:
			// A zero-length segment makes the local fraction 0/0, which
			// Line.Interp rejects as NaN.
			return l.Interp((target - cum) / length)
		}
	}
	// The target lies past the end of the linestring, or there are no
	// segments at all. Fall back to the last point, if there is one.
	return ls.Last()
}

// Locate returns the fraction of the linestring's total length at which the
// point on the linestring closest to pt lies. The result is in [0, 1], and
// feeding it back into [LineString.Interp] reproduces that closest point, up
// to floating point rounding.
//
// Locate reports failure if the linestring is empty, if pt has a non-finite
// coordinate, or if the linestring's total length is not finite. A linestring
// whose total length is zero locates every point at fraction zero.
func (ls LineString) Locate(pt Point) (float64, bool) {
	if len(ls) == 0 || !pt.IsFinite() {
		return 0, false
	}
	total := ls.Length()
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, false
	}
	if total == 0 {
		return 0, true
	}
	best := math.Inf(1)
	var fraction float64
	var cum float64
	for l := range ls.Lines() {
		distSq, t := l.Nearest(pt)
		length := l.Length()
		if distSq < best {
			best = distSq
			fraction = (cum + t*length) / total
		}
		cum += length
	}
	return fraction, true
}

// Nearest returns the point on the linestring closest to pt. It reports
// failure if the linestring is empty, or if the linestring or pt contains a
// non-finite coordinate.
func (ls LineString) Nearest(pt Point) (Point, bool) {
	if len(ls) == 0 || !pt.IsFinite() || ls.IsNaN() || ls.IsInf() {
		return Point{}, false
	}
	if len(ls) == 1 {
		return ls[0], true
	}
	best := math.Inf(1)
	var bestLine Line
	var bestT float64
	for l := range ls.Lines() {
		distSq, t := l.Nearest(pt)
		if distSq < best {
			best = distSq
			bestLine = l
			bestT = t
		}
	}
	// Line.Interp rather than Line.Eval, so that a nearest position at a
	// segment boundary reproduces the vertex exactly.
	return bestLine.Interp(bestT)
}
