package morph

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Point is a position in 3D space, typically in micrometers.
//
// Displacements between points are expressed as [r3.Vector] values.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// PointFromVector converts a position vector to a point.
func PointFromVector(v r3.Vector) Point {
	return Point(v)
}

func (pt Point) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Vector returns the position vector of the point.
func (pt Point) Vector() r3.Vector {
	return r3.Vector(pt)
}

func (pt Point) Translate(v r3.Vector) Point {
	return Point(r3.Vector(pt).Add(v))
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) r3.Vector {
	return r3.Vector(pt).Sub(r3.Vector(o))
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	// pt + t * (o-pt)
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return r3.Vector(pt).Distance(r3.Vector(o))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Norm2()
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
