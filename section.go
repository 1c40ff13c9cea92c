package morph

import (
	"fmt"
	"iter"
	"slices"
)

// Section is an unbranched run of points with a diameter at each point. It
// is the structural unit of a neurite tree and is bounded by the tree's root,
// its branch points and its tips.
//
// A section with n points has n-1 segments. Sections are linked to their
// parent and children and are not modified once the tree has been built.
type Section struct {
	points    []Point
	diameters []float64
	parent    *Section
	children  []*Section
}

// NewSection returns a root section. It panics if points and diameters have
// different lengths.
func NewSection(points []Point, diameters []float64) *Section {
	if len(points) != len(diameters) {
		panic(fmt.Sprintf("morph: %d points but %d diameters", len(points), len(diameters)))
	}
	return &Section{
		points:    points,
		diameters: diameters,
	}
}

// AddChild appends a new section to s's children and returns it. See
// [NewSection].
func (s *Section) AddChild(points []Point, diameters []float64) *Section {
	c := NewSection(points, diameters)
	c.parent = s
	s.children = append(s.children, c)
	return c
}

// Points returns the section's points. The slice must not be modified.
func (s *Section) Points() []Point { return s.points }

// Diameters returns the diameter at each of the section's points. The slice
// must not be modified.
func (s *Section) Diameters() []float64 { return s.diameters }

// Parent returns the section's parent, or nil for the root of a tree.
func (s *Section) Parent() *Section { return s.parent }

// Children returns the section's children in the order they were added.
func (s *Section) Children() []*Section { return s.children }

func (s *Section) IsRoot() bool        { return s.parent == nil }
func (s *Section) IsLeaf() bool        { return len(s.children) == 0 }
func (s *Section) IsBifurcation() bool { return len(s.children) == 2 }

// Upstream returns an iterator over s and its ancestors, ending with the root
// of the tree. If stop is not nil and is encountered first, it is the last
// section produced.
func Upstream(s, stop *Section) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for cur := s; cur != nil; cur = cur.parent {
			if !yield(cur) || cur == stop {
				return
			}
		}
	}
}

// Preorder returns an iterator over the subtree rooted at s in depth-first
// pre-order: a section is produced before its children, and children are
// visited in order.
func Preorder(s *Section) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		stack := []*Section{s}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			for i := len(cur.children) - 1; i >= 0; i-- {
				stack = append(stack, cur.children[i])
			}
		}
	}
}

// Postorder returns an iterator over the subtree rooted at s in depth-first
// post-order: all of a section's children, in order, are produced before the
// section itself.
func Postorder(s *Section) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		type frame struct {
			sec  *Section
			next int
		}
		stack := []frame{{sec: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.sec.children) {
				child := top.sec.children[top.next]
				top.next++
				stack = append(stack, frame{sec: child})
				continue
			}
			sec := top.sec
			stack = stack[:len(stack)-1]
			if !yield(sec) {
				return
			}
		}
	}
}

// Leaves returns an iterator over the tips of the subtree rooted at s, in
// pre-order.
func Leaves(s *Section) iter.Seq[*Section] {
	return filter(Preorder(s), (*Section).IsLeaf)
}

// Bifurcations returns an iterator over the sections of the subtree rooted at
// s that have exactly two children, in pre-order.
func Bifurcations(s *Section) iter.Seq[*Section] {
	return filter(Preorder(s), (*Section).IsBifurcation)
}

func filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// cloneTree returns a deep copy of the subtree rooted at s, with every point
// passed through fn. The copy's root has no parent.
func cloneTree(s *Section, fn func(Point) Point) *Section {
	mapPoints := func(pts []Point) []Point {
		out := make([]Point, len(pts))
		for i, pt := range pts {
			out[i] = fn(pt)
		}
		return out
	}
	root := NewSection(mapPoints(s.points), slices.Clone(s.diameters))
	type pair struct{ src, dst *Section }
	stack := []pair{{s, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range p.src.children {
			dst := p.dst.AddChild(mapPoints(c.points), slices.Clone(c.diameters))
			stack = append(stack, pair{c, dst})
		}
	}
	return root
}
