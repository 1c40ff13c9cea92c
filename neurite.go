package morph

import (
	"iter"
	"runtime"
	"slices"
	"sync"
)

// The functions in this file fold section features over every section of a
// tree, that is, over Preorder(root).

// MapSections applies fn to every section of the tree rooted at root and
// returns the results in pre-order.
func MapSections[T any](root *Section, fn func(*Section) T) []T {
	var out []T
	for s := range Preorder(root) {
		out = append(out, fn(s))
	}
	return out
}

// ParallelMapSections is like [MapSections] but calls fn from up to workers
// goroutines at once. If workers <= 0, runtime.GOMAXPROCS(0) is used. The
// results are in pre-order regardless of the number of workers. fn must be
// safe for concurrent use, which all section features in this package are.
func ParallelMapSections[T any](root *Section, fn func(*Section) T, workers int) []T {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	secs := slices.Collect(Preorder(root))
	out := make([]T, len(secs))
	workers = min(workers, len(secs))

	var wg sync.WaitGroup
	idx := make(chan int)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = fn(secs[i])
			}
		}()
	}
	for i := range secs {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return out
}

// SumSections returns the sum of fn over every section of the tree.
func SumSections(root *Section, fn func(*Section) float64) float64 {
	var sum float64
	for s := range Preorder(root) {
		sum += fn(s)
	}
	return sum
}

// ConcatSections concatenates the per-segment values returned by fn for every
// section of the tree.
func ConcatSections(root *Section, fn func(*Section) []float64) []float64 {
	var out []float64
	for s := range Preorder(root) {
		out = append(out, fn(s)...)
	}
	return out
}

// TotalLength returns the summed path length of all sections of the tree.
func TotalLength(root *Section) float64 { return SumSections(root, SectionLength) }

// TotalArea returns the summed lateral surface area of all sections of the tree.
func TotalArea(root *Section) float64 { return SumSections(root, SectionArea) }

// TotalVolume returns the summed volume of all sections of the tree.
func TotalVolume(root *Section) float64 { return SumSections(root, SectionVolume) }

func NumberOfSections(root *Section) int     { return count(Preorder(root)) }
func NumberOfLeaves(root *Section) int       { return count(Leaves(root)) }
func NumberOfBifurcations(root *Section) int { return count(Bifurcations(root)) }

// MaxBranchOrder returns the largest branch order of any section of the tree.
func MaxBranchOrder(root *Section) int {
	// Tips have the largest branch orders.
	m := 0
	for s := range Leaves(root) {
		m = max(m, BranchOrder(s))
	}
	return m
}

// MaxRadialDistance returns the largest distance between origin and the end
// point of any section of the tree.
func MaxRadialDistance(root *Section, origin Point) float64 {
	var m float64
	for s := range Preorder(root) {
		m = max(m, SectionRadialDistance(s, origin))
	}
	return m
}

// NeuriteBoundingBox returns the smallest box containing every point of the
// tree.
func NeuriteBoundingBox(root *Section) Box {
	b := EmptyBox
	for s := range Preorder(root) {
		b = b.Union(SectionBoundingBox(s))
	}
	return b
}

func count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
