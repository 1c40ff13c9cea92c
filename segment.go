package morph

import "iter"

// Segment is the straight piece between two consecutive points of a section.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Segments returns an iterator over the segments of the polyline through
// points.
func Segments(points []Point) iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i := 0; i+1 < len(points); i++ {
			if !yield(i, Segment{points[i], points[i+1]}) {
				return
			}
		}
	}
}

// Length returns the length of the segment.
func (l Segment) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Eval returns the point at parameter t, where t = 0 is the start point and t
// = 1 is the end point.
func (l Segment) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Segment) Midpoint() Point { return l.P0.Midpoint(l.P1) }

func (l Segment) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Segment) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Segment) BoundingBox() Box {
	return NewBoxFromPoints(l.P0, l.P1)
}

func (l Segment) Transform(aff Affine) Segment {
	return Segment{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Segment) Subsegment(start, end float64) Segment {
	return Segment{l.Eval(start), l.Eval(end)}
}

func (l Segment) Subdivide() (Segment, Segment) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}
