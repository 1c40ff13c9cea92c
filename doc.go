// Package morph computes morphometric features of neuronal trees. A neurite
// (an axon or a dendrite) is modeled as a tree of [Section] values, each an
// unbranched run of 3D points with a diameter at every point.
//
// # Sections and segments
//
// A section with n points has n-1 segments, the straight pieces between
// consecutive points. Segments are treated as conical frustums: their lateral
// area and volume follow from the radii at their two ends and the distance
// between them. Sections are bounded by the root of the tree, by branch points
// and by tips. A section with exactly two children is a bifurcation.
//
// Trees are built top-down with [NewSection] and [Section.AddChild] and are
// not modified afterwards. Functions that need a transformed tree, such as
// [TransformTree], return a copy.
//
// # Features
//
// Section features are plain functions of a *Section, for example
// [SectionLength], [SectionTortuosity], [BranchOrder] and [StrahlerOrder].
// Segment features return one value per segment, for example
// [SegmentLengths] and [SegmentTaperRates]. Features only read the tree and
// may be called concurrently.
//
// Per-tree aggregates fold a feature over every section of a tree. See
// [MapSections], [ParallelMapSections], [SumSections] and [ConcatSections],
// and the predefined aggregates such as [TotalLength].
//
// The primitives that features are built from operate on slices of points and
// are exported as well. See [IntervalLengths], [Angle3Points] and
// [PathFractionIDOffset].
//
// # Iterators
//
// Tree traversals are exposed as iterators: [Preorder], [Postorder],
// [Upstream], [Leaves] and [Bifurcations]. They don't recurse, so the depth of
// a tree is only limited by memory. Each call to an iterator function yields a
// fresh traversal, and stopping early is cheap. Use [slices.Collect] to turn a
// traversal into a slice.
//
// # Geometry
//
// [Point] is a position in space, while displacements between points are
// [r3.Vector] values. [Box] is an axis-aligned bounding box and [Affine] is a
// 3D affine transformation.
//
// Lengths and coordinates are unitless. Angles are in radians.
//
// [r3.Vector]: https://pkg.go.dev/github.com/golang/geo/r3#Vector
package morph
