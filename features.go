package morph

import (
	"iter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// This file implements per-section and per-segment features. All functions
// only read the sections they are given and are safe to call concurrently.

// SectionPoints returns the points of s.
func SectionPoints(s *Section) []Point { return s.points }

// SectionDiameters returns the diameter at each point of s.
func SectionDiameters(s *Section) []float64 { return s.diameters }

// SectionRadii returns the radius at each point of s.
func SectionRadii(s *Section) []float64 {
	out := make([]float64, len(s.diameters))
	for i, d := range s.diameters {
		out[i] = 0.5 * d
	}
	return out
}

// SegmentLengths returns the length of each segment of s. See
// [IntervalLengths] for the meaning of prependZero.
func SegmentLengths(s *Section, prependZero bool) []float64 {
	return IntervalLengths(s.points, prependZero)
}

// SectionLength returns the path length of s.
func SectionLength(s *Section) float64 {
	return floats.Sum(SegmentLengths(s, false))
}

// SegmentAreas returns the lateral surface area of each segment of s.
func SegmentAreas(s *Section) []float64 {
	return IntervalAreas(s.points, SectionRadii(s))
}

// SectionArea returns the lateral surface area of s.
func SectionArea(s *Section) float64 {
	return floats.Sum(SegmentAreas(s))
}

// SegmentVolumes returns the volume of each segment of s.
func SegmentVolumes(s *Section) []float64 {
	return IntervalVolumes(s.points, SectionRadii(s))
}

// SectionVolume returns the volume of s.
func SectionVolume(s *Section) float64 {
	return floats.Sum(SegmentVolumes(s))
}

// SectionTortuosity returns the ratio of the path length of s to the
// distance between its end points. It is 1 for sections with fewer than two
// points.
func SectionTortuosity(s *Section) float64 {
	pts := s.points
	if len(pts) < 2 {
		return 1
	}
	return PolylineLength(pts) / pts[len(pts)-1].Distance(pts[0])
}

// SectionEndDistance returns the distance between the end points of s. It is
// 0 for sections with fewer than two points.
func SectionEndDistance(s *Section) float64 {
	pts := s.points
	if len(pts) < 2 {
		return 0
	}
	return pts[len(pts)-1].Distance(pts[0])
}

// BranchOrder returns the number of ancestors of s. The root of a tree has
// branch order 0.
func BranchOrder(s *Section) int {
	n := 0
	for range Upstream(s, nil) {
		n++
	}
	return n - 1
}

// TaperRate returns the slope of the least squares line fitted to the
// diameters of s as a function of the path distance from its first point.
func TaperRate(s *Section) float64 {
	lengths := SegmentLengths(s, true)
	dists := floats.CumSum(make([]float64, len(lengths)), lengths)
	_, beta := stat.LinearRegression(dists, s.diameters, nil, false)
	return beta
}

// NumberOfSegments returns the number of segments in s.
func NumberOfSegments(s *Section) int {
	return len(s.points) - 1
}

// SegmentMeanRadii returns the mean of the two end radii of each segment.
func SegmentMeanRadii(s *Section) []float64 {
	n := max(len(s.diameters)-1, 0)
	out := make([]float64, n)
	for i := range n {
		out[i] = 0.5 * (0.5*s.diameters[i] + 0.5*s.diameters[i+1])
	}
	return out
}

// SegmentMidpoints returns the midpoint of each segment.
func SegmentMidpoints(s *Section) []Point {
	out := make([]Point, max(len(s.points)-1, 0))
	for i, seg := range Segments(s.points) {
		out[i] = seg.Midpoint()
	}
	return out
}

// SegmentMidpointRadialDistances returns the distance of each segment's
// midpoint from origin. The zero Point is the coordinate system's origin.
func SegmentMidpointRadialDistances(s *Section, origin Point) []float64 {
	mids := SegmentMidpoints(s)
	out := make([]float64, len(mids))
	for i, m := range mids {
		out[i] = m.Distance(origin)
	}
	return out
}

// SegmentTaperRates returns, for each segment, the change in diameter per
// unit of length, that is 2·Δr / l.
func SegmentTaperRates(s *Section) []float64 {
	out := make([]float64, max(len(s.points)-1, 0))
	for i, seg := range Segments(s.points) {
		dr := 0.5*s.diameters[i+1] - 0.5*s.diameters[i]
		out[i] = 2 * dr / seg.Length()
	}
	return out
}

// SectionRadialDistance returns the distance between the last point of s and
// origin.
func SectionRadialDistance(s *Section, origin Point) float64 {
	return s.points[len(s.points)-1].Distance(origin)
}

// SectionMeanderAngles returns the opening angles between consecutive
// segments of s. The i-th angle is measured at the point shared by segments i
// and i+1.
func SectionMeanderAngles(s *Section) []float64 {
	p := s.points
	if len(p) < 3 {
		return []float64{}
	}
	out := make([]float64, 0, len(p)-2)
	for i := 2; i < len(p); i++ {
		out = append(out, Angle3Points(p[i-1], p[i-2], p[i]))
	}
	return out
}

// StrahlerOrder returns the Strahler number of s. Leaves have order 1. A
// section whose children's maximum order m is attained by at least two
// children has order m+1, otherwise it has order m.
//
// The subtree is processed iteratively, so the depth of the tree isn't
// limited by the call stack.
func StrahlerOrder(s *Section) int {
	return SectionStrahlerOrders(s)[s]
}

// SectionStrahlerOrders computes the Strahler number of every section in the
// subtree rooted at s in a single pass.
func SectionStrahlerOrders(s *Section) map[*Section]int {
	orders := make(map[*Section]int)
	for sec := range Postorder(s) {
		if sec.IsLeaf() {
			orders[sec] = 1
			continue
		}
		m, n := 0, 0
		for _, c := range sec.children {
			switch o := orders[c]; {
			case o > m:
				m, n = o, 1
			case o == m:
				n++
			}
		}
		if n >= 2 {
			m++
		}
		orders[sec] = m
	}
	return orders
}

// LocateSegmentPosition returns the index of the segment of s that contains
// the point at the given fraction of the section's length, and that point's
// distance from the segment's start. See [PathFractionIDOffset].
func LocateSegmentPosition(s *Section, fraction float64) (id int, offset float64, err error) {
	return PathFractionIDOffset(s.points, fraction)
}

// SectionMeanRadius returns the mean radius of s, weighted by segment length.
func SectionMeanRadius(s *Section) float64 {
	lengths := SegmentLengths(s, false)
	return floats.Dot(SegmentMeanRadii(s), lengths) / floats.Sum(lengths)
}

// DownstreamPathLength returns the total length of the sections produced by
// order(s). A nil order means [Preorder], which covers the subtree rooted at
// s, including s itself.
func DownstreamPathLength(s *Section, order func(*Section) iter.Seq[*Section]) float64 {
	if order == nil {
		order = Preorder
	}
	var sum float64
	for sec := range order(s) {
		sum += SectionLength(sec)
	}
	return sum
}

// SectionPathLength returns the total length of the sections from s up to the
// root of the tree, or up to and including stop if it is not nil. See
// [Upstream].
func SectionPathLength(s, stop *Section) float64 {
	var sum float64
	for sec := range Upstream(s, stop) {
		sum += SectionLength(sec)
	}
	return sum
}

// SectionBoundingBox returns the smallest box containing the points of s.
func SectionBoundingBox(s *Section) Box {
	return NewBoxFromPoints(s.points...)
}

// SectionBifurcationAngle returns the angle between the first segments of
// the two children of a bifurcation. It returns 0 for sections that don't
// have exactly two children, or whose children have fewer than two points.
func SectionBifurcationAngle(s *Section) float64 {
	if !s.IsBifurcation() {
		return 0
	}
	c0, c1 := s.children[0].points, s.children[1].points
	if len(c0) < 2 || len(c1) < 2 {
		return 0
	}
	v0 := PointFromVector(c0[1].Sub(c0[0]))
	v1 := PointFromVector(c1[1].Sub(c1[0]))
	return Angle3Points(Point{}, v0, v1)
}
