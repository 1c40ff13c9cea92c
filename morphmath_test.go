package morph

import (
	"errors"
	"math"
	"testing"
)

func TestPointDist(t *testing.T) {
	if d := PointDist(Pt(0, 0, 0), Pt(3, 4, 0)); d != 5 {
		t.Errorf("got %v, want 5", d)
	}
	if d := PointDist(Pt(1, 1, 1), Pt(1, 1, 1)); d != 0 {
		t.Errorf("got %v, want 0", d)
	}
}

func TestAngle3Points(t *testing.T) {
	tests := []struct {
		apex, p1, p2 Point
		want         float64
	}{
		{Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0), math.Pi / 2},
		{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), 0},
		{Pt(0, 0, 0), Pt(1, 0, 0), Pt(-3, 0, 0), math.Pi},
		{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0), math.Pi / 4},
		{Pt(1, 1, 1), Pt(1, 1, 2), Pt(1, 2, 1), math.Pi / 2},
		// Degenerate rays.
		{Pt(0, 0, 0), Pt(0, 0, 0), Pt(0, 1, 0), 0},
		{Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 0, 0), 0},
		{Pt(2, 2, 2), Pt(2, 2, 2), Pt(2, 2, 2), 0},
	}
	for _, tt := range tests {
		got := Angle3Points(tt.apex, tt.p1, tt.p2)
		if math.IsNaN(got) || !approxEqual(got, tt.want) {
			t.Errorf("Angle3Points(%v, %v, %v) = %v, want %v", tt.apex, tt.p1, tt.p2, got, tt.want)
		}
	}
}

func TestIntervalLengths(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(3, 0, 0), Pt(3, 4, 0)}
	diff(t, []float64{1, 2, 4}, IntervalLengths(pts, false))
	diff(t, []float64{0, 1, 2, 4}, IntervalLengths(pts, true))

	diff(t, []float64{}, IntervalLengths(pts[:1], false))
	diff(t, []float64{0}, IntervalLengths(pts[:1], true))
	diff(t, []float64{}, IntervalLengths(nil, false))
}

func TestIntervalAreasVolumes(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(0, 0, 2), Pt(0, 0, 5)}
	radii := []float64{1, 1, 2}

	// Cylinder of radius 1 and height 2, then a cone frustum of height 3.
	diff(t, []float64{4 * math.Pi, 9 * math.Pi}, IntervalAreas(pts, radii), approx)
	diff(t, []float64{2 * math.Pi, 7 * math.Pi}, IntervalVolumes(pts, radii), approx)

	diff(t, []float64{}, IntervalAreas(pts[:1], radii[:1]))
	diff(t, []float64{}, IntervalVolumes(pts[:1], radii[:1]))
}

func TestPolylineLength(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0), Pt(1, 1, 1)}
	if l := PolylineLength(pts); l != 3 {
		t.Errorf("got length %v, want 3", l)
	}
	if l := PolylineLength(pts[:1]); l != 0 {
		t.Errorf("got length %v, want 0", l)
	}
}

func TestPathFractionIDOffset(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(3, 0, 0), Pt(3, 4, 0)}

	tests := []struct {
		fraction float64
		id       int
		offset   float64
	}{
		{0, 0, 0},
		{0.05, 0, 0.35},
		{0.25, 1, 0.75},
		{0.5, 2, 0.5},
		{1, 2, 4},
	}
	for _, tt := range tests {
		id, offset, err := PathFractionIDOffset(pts, tt.fraction)
		if err != nil {
			t.Fatalf("fraction %v: unexpected error %v", tt.fraction, err)
		}
		if id != tt.id || !approxEqual(offset, tt.offset) {
			t.Errorf("fraction %v: got (%d, %v), want (%d, %v)", tt.fraction, id, offset, tt.id, tt.offset)
		}
	}

	for _, f := range []float64{-0.1, 1.1, math.NaN()} {
		if _, _, err := PathFractionIDOffset(pts, f); !errors.Is(err, ErrInvalidFraction) {
			t.Errorf("fraction %v: got error %v, want %v", f, err, ErrInvalidFraction)
		}
	}
}

func TestPathFractionIDOffsetEndpoints(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(0.1, 0.2, 0.3), Pt(1.7, -0.2, 0.9), Pt(2.2, 1.4, 3.1), Pt(2.3, 1.4, 3.0)}
	lengths := IntervalLengths(pts, false)

	id, offset, err := PathFractionIDOffset(pts, 0)
	if err != nil || id != 0 || offset != 0 {
		t.Errorf("got (%d, %v, %v), want (0, 0, nil)", id, offset, err)
	}
	id, offset, err = PathFractionIDOffset(pts, 1)
	if err != nil || id != len(lengths)-1 || !approxEqual(offset, lengths[len(lengths)-1]) {
		t.Errorf("got (%d, %v, %v), want (%d, %v, nil)", id, offset, err, len(lengths)-1, lengths[len(lengths)-1])
	}
}

func TestPathFractionPoint(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(3, 0, 0), Pt(3, 4, 0)}
	for _, tt := range []struct {
		fraction float64
		want     Point
	}{
		{0, Pt(0, 0, 0)},
		{0.25, Pt(1.75, 0, 0)},
		{0.5, Pt(3, 0.5, 0)},
		{1, Pt(3, 4, 0)},
	} {
		got, err := PathFractionPoint(pts, tt.fraction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		diff(t, tt.want, got, approx)
	}
	if _, err := PathFractionPoint(pts, 2); !errors.Is(err, ErrInvalidFraction) {
		t.Errorf("got error %v, want %v", err, ErrInvalidFraction)
	}
}
