package linestring

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := l.Length() - want; d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineInterp(t *testing.T) {
	l := Line{Pt(-1.0, 0.0), Pt(1.0, 0.0)}

	tests := []struct {
		fraction float64
		want     Point
	}{
		{-1.0, Pt(-1.0, 0.0)},
		{0.0, Pt(-1.0, 0.0)},
		{0.5, Pt(0.0, 0.0)},
		{0.75, Pt(0.5, 0.0)},
		{1.0, Pt(1.0, 0.0)},
		{2.0, Pt(1.0, 0.0)},
		{math.Inf(-1), Pt(-1.0, 0.0)},
		{math.Inf(1), Pt(1.0, 0.0)},
	}
	for _, tt := range tests {
		got, ok := l.Interp(tt.fraction)
		if !ok {
			t.Errorf("Interp(%v) failed, want %v", tt.fraction, tt.want)
			continue
		}
		diff(t, tt.want, got)
	}

	if pt, ok := l.Interp(math.NaN()); ok {
		t.Errorf("Interp(NaN) = %v, want failure", pt)
	}

	diag := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	got, ok := diag.Interp(0.5)
	if !ok {
		t.Fatal("Interp(0.5) failed")
	}
	diff(t, Pt(0.5, 0.5), got)
}

func TestLineInterpNonFinite(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	lines := []Line{
		{Pt(nan, 0.0), Pt(1.0, 1.0)},
		{Pt(inf, 0.0), Pt(1.0, 1.0)},
		{Pt(0.0, 0.0), Pt(1.0, inf)},
		{Pt(-inf, 0.0), Pt(1.0, 1.0)},
		{Pt(0.0, 0.0), Pt(1.0, -inf)},
	}
	for _, l := range lines {
		if pt, ok := l.Interp(0.5); ok {
			t.Errorf("%v.Interp(0.5) = %v, want failure", l, pt)
		}
	}
}

func TestLineInterpExactEndpoints(t *testing.T) {
	// Clamped fractions return the endpoints without arithmetic, so a
	// non-finite opposite endpoint must not leak into the result.
	l := Line{Pt(-1.0, 0.0), Pt(math.Inf(1), math.NaN())}
	got, ok := l.Interp(0.0)
	if !ok {
		t.Fatal("Interp(0) failed")
	}
	diff(t, Pt(-1.0, 0.0), got)

	got, ok = l.Reversed().Interp(1.0)
	if !ok {
		t.Fatal("Interp(1) failed")
	}
	diff(t, Pt(-1.0, 0.0), got)
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(10.0, 0.0)}

	distSq, tt := l.Nearest(Pt(5.0, 3.0))
	if distSq != 9.0 {
		t.Errorf("got squared distance %v, want 9", distSq)
	}
	if tt != 0.5 {
		t.Errorf("got parameter %v, want 0.5", tt)
	}

	// beyond the start
	distSq, tt = l.Nearest(Pt(-4.0, 3.0))
	if distSq != 25.0 {
		t.Errorf("got squared distance %v, want 25", distSq)
	}
	if tt != 0.0 {
		t.Errorf("got parameter %v, want 0", tt)
	}

	// beyond the end
	distSq, tt = l.Nearest(Pt(14.0, 3.0))
	if distSq != 25.0 {
		t.Errorf("got squared distance %v, want 25", distSq)
	}
	if tt != 1.0 {
		t.Errorf("got parameter %v, want 1", tt)
	}

	// degenerate zero-length line
	l = Line{Pt(2.0, 2.0), Pt(2.0, 2.0)}
	distSq, tt = l.Nearest(Pt(2.0, 5.0))
	if distSq != 9.0 {
		t.Errorf("got squared distance %v, want 9", distSq)
	}
	if tt != 0.0 {
		t.Errorf("got parameter %v, want 0", tt)
	}
}
