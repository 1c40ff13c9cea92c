package morph

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Distance(p0); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

var (
	xAxis = r3.Vector{X: 1}
	zAxis = r3.Vector{Z: 1}
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4, 5)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2, -1)), Pt(6, 8, -5), epsilon)
	assertNear(t, p.Transform(Rotate(zAxis, 0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(zAxis, math.Pi/2)), Pt(-4, 3, 5), epsilon)
	assertNear(t, p.Transform(Rotate(r3.Vector{Z: 7}, math.Pi/2)), Pt(-4, 3, 5), epsilon)
	assertNear(t, p.Transform(Rotate(xAxis, math.Pi/2)), Pt(3, -5, 4), epsilon)
	assertNear(t, p.Transform(Translate(r3.Vector{X: 5, Y: 6, Z: 7})), Pt(8, 10, 12), epsilon)
	assertNear(t, p.Transform(RotateAbout(zAxis, math.Pi, Pt(3, 3, 0))), Pt(3, 2, 5), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6, 6.7, 7.8, 8.9, 9.1, 10.2, 11.3}

	for _, p := range []Point{Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 1), Pt(1, 1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 1), Pt(1, 1, 1)} {
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
	}

	if d := a.Determinant(); !approxEqual(d, -3) {
		t.Errorf("got determinant %v, want -3", d)
	}
	if !Scale(1, 0, 1).Invert().IsInf() && !Scale(1, 0, 1).Invert().IsNaN() {
		t.Error("inverting a singular transform should produce non-finite values")
	}
}

func TestAffineBuilders(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(1, 2, 3)
	v := r3.Vector{X: 1, Y: -1, Z: 2}

	assertNear(t, p.Transform(Identity.ThenTranslate(v)), p.Transform(Translate(v)), epsilon)
	assertNear(t, p.Transform(Scale(2, 3, 4).PreTranslate(v)), p.Translate(v).Transform(Scale(2, 3, 4)), epsilon)
	assertNear(t, p.Transform(Translate(v).ThenScale(2, 3, 4)), p.Translate(v).Transform(Scale(2, 3, 4)), epsilon)
	assertNear(t, p.Transform(Translate(v).ThenRotate(zAxis, 1)), p.Translate(v).Transform(Rotate(zAxis, 1)), epsilon)
	assertNear(t, p.Transform(Translate(v).PreRotate(zAxis, 1)), p.Transform(Rotate(zAxis, 1)).Translate(v), epsilon)

	diff(t, Affine{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, NewAffine([12]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}))
}

func TestTransformBoxBoundingBox(t *testing.T) {
	b := Box{Min: Pt(0, 0, 0), Max: Pt(2, 1, 1)}
	got := Rotate(zAxis, math.Pi/2).TransformBoxBoundingBox(b)
	diff(t, Box{Min: Pt(-1, 0, 0), Max: Pt(0, 2, 1)}, got, approx)
	if !Identity.TransformBoxBoundingBox(EmptyBox).IsEmpty() {
		t.Error("transformed empty box should be empty")
	}
}

func TestTransformTree(t *testing.T) {
	root, _, _, _, _ := testTree()
	moved := TransformTree(root, Translate(r3.Vector{Z: 10}))

	if NumberOfSections(moved) != NumberOfSections(root) {
		t.Fatalf("got %d sections, want %d", NumberOfSections(moved), NumberOfSections(root))
	}
	if !approxEqual(TotalLength(moved), TotalLength(root)) {
		t.Errorf("translation changed total length: %v != %v", TotalLength(moved), TotalLength(root))
	}
	diff(t, []Point{Pt(0, 0, 10), Pt(1, 0, 10)}, moved.Points())
	diff(t, []Point{Pt(0, 0, 0), Pt(1, 0, 0)}, root.Points())
	diff(t, root.Diameters(), moved.Diameters())

	scaled := TransformTree(root, Scale(2, 2, 2))
	if !approxEqual(TotalLength(scaled), 2*TotalLength(root)) {
		t.Errorf("got total length %v, want %v", TotalLength(scaled), 2*TotalLength(root))
	}
}
