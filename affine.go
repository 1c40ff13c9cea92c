package morph

import (
	"math"

	"github.com/golang/geo/r3"
)

// Affine describes a 3D affine transform via coefficients.
//
// If the coefficients are (n0, …, n11), then the resulting transformation
// represents this augmented matrix:
//
//	| n0 n3 n6 n9  |
//	| n1 n4 n7 n10 |
//	| n2 n5 n8 n11 |
//	| 0  0  0  1   |
//
// As with matrices, (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// Scale creates an affine transform representing non-uniform scaling.
func Scale(x, y, z float64) Affine {
	return Affine{x, 0, 0, 0, y, 0, 0, 0, z, 0, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v r3.Vector) Affine {
	return Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, v.X, v.Y, v.Z}
}

// Rotate creates an affine transform representing a right-handed rotation of
// th radians about axis, which passes through the origin. axis needn't be
// normalized but mustn't be the zero vector.
func Rotate(axis r3.Vector, th float64) Affine {
	k := axis.Normalize()
	s, c := math.Sincos(th)
	t := 1 - c
	x, y, z := k.X, k.Y, k.Z
	return Affine{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c,
		0, 0, 0,
	}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about the line through center with direction axis.
//
// See [Rotate] for more info.
func RotateAbout(axis r3.Vector, th float64, center Point) Affine {
	c := center.Vector()
	return Translate(c.Mul(-1)).ThenRotate(axis, th).ThenTranslate(c)
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8, aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of
// coefficients. Alternatively, you can initialize the fields of [Affine]
// manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

// apply maps v through the linear part of the transform.
func (aff Affine) apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: aff.N0*v.X + aff.N3*v.Y + aff.N6*v.Z,
		Y: aff.N1*v.X + aff.N4*v.Y + aff.N7*v.Z,
		Z: aff.N2*v.X + aff.N5*v.Y + aff.N8*v.Z,
	}
}

func (aff Affine) Mul(o Affine) Affine {
	c0 := aff.apply(r3.Vector{X: o.N0, Y: o.N1, Z: o.N2})
	c1 := aff.apply(r3.Vector{X: o.N3, Y: o.N4, Z: o.N5})
	c2 := aff.apply(r3.Vector{X: o.N6, Y: o.N7, Z: o.N8})
	tr := aff.apply(o.Translation()).Add(aff.Translation())
	return Affine{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
		tr.X, tr.Y, tr.Z,
	}
}

// ThenRotate creates aff followed by a rotation of th about axis.
//
// Equivalent to "Rotate(axis, th) * aff"
func (aff Affine) ThenRotate(axis r3.Vector, th float64) Affine {
	return Rotate(axis, th).Mul(aff)
}

// PreRotate creates a rotation of th about axis followed by aff.
//
// Equivalent to "aff * Rotate(axis, th)"
func (aff Affine) PreRotate(axis r3.Vector, th float64) Affine {
	return aff.Mul(Rotate(axis, th))
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v r3.Vector) Affine {
	aff.N9 += v.X
	aff.N10 += v.Y
	aff.N11 += v.Z
	return aff
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v r3.Vector) Affine {
	return aff.Mul(Translate(v))
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	c0 := r3.Vector{X: aff.N0, Y: aff.N1, Z: aff.N2}
	c1 := r3.Vector{X: aff.N3, Y: aff.N4, Z: aff.N5}
	c2 := r3.Vector{X: aff.N6, Y: aff.N7, Z: aff.N8}
	return c0.Dot(c1.Cross(c2))
}

// Invert computes the inverse transform.
//
// Produces NaN or infinite values when the determinant is zero.
func (aff Affine) Invert() Affine {
	c0 := r3.Vector{X: aff.N0, Y: aff.N1, Z: aff.N2}
	c1 := r3.Vector{X: aff.N3, Y: aff.N4, Z: aff.N5}
	c2 := r3.Vector{X: aff.N6, Y: aff.N7, Z: aff.N8}
	invDet := 1 / c0.Dot(c1.Cross(c2))
	// The rows of the inverse are the cross products of the columns.
	r0 := c1.Cross(c2).Mul(invDet)
	r1 := c2.Cross(c0).Mul(invDet)
	r2 := c0.Cross(c1).Mul(invDet)
	inv := Affine{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
		0, 0, 0,
	}
	tr := inv.apply(aff.Translation()).Mul(-1)
	return inv.WithTranslation(tr)
}

func (aff Affine) IsInf() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() r3.Vector {
	return r3.Vector{X: aff.N9, Y: aff.N10, Z: aff.N11}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v r3.Vector) Affine {
	aff.N9 = v.X
	aff.N10 = v.Y
	aff.N11 = v.Z
	return aff
}

// Transform maps pt through aff.
func (pt Point) Transform(aff Affine) Point {
	return Point(aff.apply(pt.Vector()).Add(aff.Translation()))
}

// TransformBoxBoundingBox computes the bounding box of a transformed box.
func (aff Affine) TransformBoxBoundingBox(b Box) Box {
	if b.IsEmpty() {
		return EmptyBox
	}
	out := EmptyBox
	for _, x := range [2]float64{b.Min.X, b.Max.X} {
		for _, y := range [2]float64{b.Min.Y, b.Max.Y} {
			for _, z := range [2]float64{b.Min.Z, b.Max.Z} {
				out = out.UnionPoint(Pt(x, y, z).Transform(aff))
			}
		}
	}
	return out
}

// TransformTree returns a copy of the tree rooted at root with every point
// mapped through aff. Diameters are copied unchanged. The returned root has
// no parent, and root itself is left untouched.
func TransformTree(root *Section, aff Affine) *Section {
	return cloneTree(root, func(pt Point) Point { return pt.Transform(aff) })
}
