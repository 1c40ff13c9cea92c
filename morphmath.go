package morph

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidFraction is returned when a path fraction lies outside of [0, 1].
var ErrInvalidFraction = errors.New("morph: path fraction outside of [0, 1]")

// PointDist returns the euclidean distance between a and b.
func PointDist(a, b Point) float64 {
	return a.Distance(b)
}

// Angle3Points returns the angle, in radians, at apex between the rays to p1
// and p2. The angle is in [0, π]. If either ray has zero length the angle is
// zero.
func Angle3Points(apex, p1, p2 Point) float64 {
	v1 := p1.Sub(apex)
	v2 := p2.Sub(apex)
	n := v1.Norm() * v2.Norm()
	if n == 0 {
		return 0
	}
	// Clamp so that rounding on (anti)parallel rays doesn't produce NaN.
	c := min(max(v1.Dot(v2)/n, -1), 1)
	return math.Acos(c)
}

// IntervalLengths returns the distances between consecutive points. The
// result has len(points)-1 elements, or len(points) elements with a leading
// zero if prependZero is set, which makes cumulative sums line up with the
// points.
func IntervalLengths(points []Point, prependZero bool) []float64 {
	n := max(len(points)-1, 0)
	off := 0
	if prependZero {
		off = 1
	}
	out := make([]float64, n+off)
	for i, seg := range Segments(points) {
		out[i+off] = seg.Length()
	}
	return out
}

// IntervalAreas returns the lateral surface area of the frustum spanned by
// every pair of consecutive points, using the radii at both ends and the
// distance between the points.
func IntervalAreas(points []Point, radii []float64) []float64 {
	n := max(len(points)-1, 0)
	out := make([]float64, n)
	for i, seg := range Segments(points) {
		out[i] = math.Pi * (radii[i] + radii[i+1]) * seg.Length()
	}
	return out
}

// IntervalVolumes returns the volume of the frustum spanned by every pair of
// consecutive points.
func IntervalVolumes(points []Point, radii []float64) []float64 {
	n := max(len(points)-1, 0)
	out := make([]float64, n)
	for i, seg := range Segments(points) {
		h := seg.Length()
		r0, r1 := radii[i], radii[i+1]
		out[i] = math.Pi / 3 * h * (r0*r0 + r0*r1 + r1*r1)
	}
	return out
}

// PolylineLength returns the sum of the distances between consecutive points.
func PolylineLength(points []Point) float64 {
	return floats.Sum(IntervalLengths(points, false))
}

// PathFractionIDOffset locates the point that lies at the given fraction of
// the total path length of points. It returns the index of the segment
// containing that point and the distance from the segment's start to it.
//
// A fraction of 0 yields (0, 0) and a fraction of 1 yields the last segment
// and its full length. Fractions outside of [0, 1] return
// [ErrInvalidFraction]. points must have at least two elements.
func PathFractionIDOffset(points []Point, fraction float64) (id int, offset float64, err error) {
	if !(fraction >= 0 && fraction <= 1) {
		return 0, 0, ErrInvalidFraction
	}
	lengths := IntervalLengths(points, false)
	cum := make([]float64, len(lengths))
	floats.CumSum(cum, lengths)
	offset = cum[len(cum)-1] * fraction
	// First segment whose cumulative length reaches the offset.
	for id < len(cum)-1 && cum[id] < offset {
		id++
	}
	if id > 0 {
		offset -= cum[id-1]
	}
	return id, offset, nil
}

// PathFractionPoint returns the point at the given fraction of the total path
// length of points.
func PathFractionPoint(points []Point, fraction float64) (Point, error) {
	id, offset, err := PathFractionIDOffset(points, fraction)
	if err != nil {
		return Point{}, err
	}
	seg := Segment{points[id], points[id+1]}
	l := seg.Length()
	if l == 0 {
		return seg.P0, nil
	}
	return seg.Eval(offset / l), nil
}
