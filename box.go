package morph

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Box is an axis-aligned box spanning Min to Max.
type Box struct {
	Min, Max Point
}

// EmptyBox is the box that contains nothing. It is the identity of
// [Box.Union] and [Box.UnionPoint].
var EmptyBox = Box{
	Min: Pt(math.Inf(1), math.Inf(1), math.Inf(1)),
	Max: Pt(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
}

// NewBoxFromPoints returns the smallest box containing all points. It returns
// [EmptyBox] if no points are given.
func NewBoxFromPoints(points ...Point) Box {
	b := EmptyBox
	for _, pt := range points {
		b = b.UnionPoint(pt)
	}
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("[%s, %s]", b.Min, b.Max)
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the box's extents along each axis.
func (b Box) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Pt(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)),
		Max: Pt(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting
// from [EmptyBox], yields their enclosing box.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		Min: Pt(min(b.Min.X, pt.X), min(b.Min.Y, pt.Y), min(b.Min.Z, pt.Z)),
		Max: Pt(max(b.Max.X, pt.X), max(b.Max.Y, pt.Y), max(b.Max.Z, pt.Z)),
	}
}

// Inflate expands the box by d in every direction.
func (b Box) Inflate(d float64) Box {
	v := r3.Vector{X: d, Y: d, Z: d}
	return Box{
		Min: b.Min.Translate(v.Mul(-1)),
		Max: b.Max.Translate(v),
	}
}
