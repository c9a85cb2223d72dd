package linestring

import "math"

// Ordering is the result of a three-way comparison between two scalars.
//
// Unlike a boolean predicate, an Ordering can express that a comparison has no
// answer: comparing against NaN yields [Undefined]. Interpolation along a
// linestring relies on this fourth case to propagate NaN, from whatever
// source, as an explicit failure rather than letting it silently resolve to a
// default ordering.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
	Undefined
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Undefined:
		return "undefined"
	default:
		return "invalid"
	}
}

// Cmp compares a and b. The result is [Undefined] if either operand is NaN.
func Cmp(a, b float64) Ordering {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return Undefined
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
