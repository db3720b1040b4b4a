// SPDX-License-Identifier: MIT
// Package: mstlab/edgesort
//
// sorters.go: the three Sorter strategies.

package edgesort

import (
	"math/rand"

	"github.com/katalvlaran/mstlab/core"
)

// InsertionSorter is classic adjacent-swap insertion sort.
// Stable, in place. Complexity: O(m²) worst case, O(m) on sorted input.
type InsertionSorter struct{}

// Strategy returns Insertion.
func (InsertionSorter) Strategy() Strategy { return Insertion }

// Sort orders edges in place.
func (InsertionSorter) Sort(edges []*core.Edge) []*core.Edge {
	if edges == nil {
		return []*core.Edge{}
	}
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && edges[j].Less(edges[j-1]); j-- {
			edges[j], edges[j-1] = edges[j-1], edges[j]
		}
	}

	return edges
}

// CountSorter is an LSD radix sort built from stable counting passes:
// first by right name, then by left name, then by weight. The result is
// fully ordered by core.Edge.Less whatever the input order.
// Complexity: O(m + V + W) time and space, V = max name, W = max weight.
type CountSorter struct{}

// Strategy returns Count.
func (CountSorter) Strategy() Strategy { return Count }

// Sort returns a new slice; the input is left untouched.
func (CountSorter) Sort(edges []*core.Edge) []*core.Edge {
	out := make([]*core.Edge, len(edges))
	if len(edges) == 0 {
		return out
	}
	copy(out, edges)
	aux := make([]*core.Edge, len(edges))

	// least significant key first; each pass is stable
	countPass(out, aux, func(e *core.Edge) int64 { return int64(e.Right) })
	countPass(aux, out, func(e *core.Edge) int64 { return int64(e.Left) })
	countPass(out, aux, func(e *core.Edge) int64 { return e.Weight })

	return aux
}

// countPass is one stable counting sort of src into dst by a non-negative key.
func countPass(src, dst []*core.Edge, key func(*core.Edge) int64) {
	// 1. R = max key + 1
	var maxKey int64
	for _, e := range src {
		if k := key(e); k > maxKey {
			maxKey = k
		}
	}
	r := maxKey + 1

	// 2. count[k+1] is written for k up to maxKey, hence R+1 cells
	count := make([]int, r+1)
	for _, e := range src {
		count[key(e)+1]++
	}

	// 3. prefix sums: count[k] becomes the first output slot of key k
	for i := int64(0); i < r; i++ {
		count[i+1] += count[i]
	}

	// 4. scatter, preserving input order within a key
	for _, e := range src {
		k := key(e)
		dst[count[k]] = e
		count[k]++
	}
}

// QuickSorter is quicksort over a Fisher–Yates shuffled input, partitioned
// Hoare-style around the first element with strict Less comparisons.
// Not stable. Complexity: O(m log m) expected.
type QuickSorter struct {
	rng *rand.Rand
}

// Strategy returns Quick.
func (*QuickSorter) Strategy() Strategy { return Quick }

// Sort shuffles and then orders edges in place.
func (q *QuickSorter) Sort(edges []*core.Edge) []*core.Edge {
	if edges == nil {
		return []*core.Edge{}
	}
	q.shuffle(edges)
	quickSort(edges, 0, len(edges)-1)

	return edges
}

// shuffle is a textbook Fisher–Yates: slot i swaps with a uniform j in [0, i].
func (q *QuickSorter) shuffle(a []*core.Edge) {
	for i := len(a) - 1; i > 0; i-- {
		j := q.rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

func quickSort(a []*core.Edge, lo, hi int) {
	if hi <= lo {
		return
	}
	j := partition(a, lo, hi)
	quickSort(a, lo, j-1)
	quickSort(a, j+1, hi)
}

// partition places a[lo] at its final index j with a[lo..j-1] <= a[j] <= a[j+1..hi].
func partition(a []*core.Edge, lo, hi int) int {
	i, j := lo, hi+1
	pivot := a[lo]
	for {
		for i++; a[i].Less(pivot); i++ {
			if i == hi {
				break
			}
		}
		for j--; pivot.Less(a[j]); j-- {
			if j == lo {
				break
			}
		}
		if i >= j {
			break
		}
		a[i], a[j] = a[j], a[i]
	}
	a[lo], a[j] = a[j], a[lo]

	return j
}

// IsSorted reports whether edges are non-decreasing under core.Edge.Less.
func IsSorted(edges []*core.Edge) bool {
	for i := 1; i < len(edges); i++ {
		if edges[i].Less(edges[i-1]) {
			return false
		}
	}

	return true
}

// IsSortedByWeight reports whether edge weights are non-decreasing.
func IsSortedByWeight(edges []*core.Edge) bool {
	for i := 1; i < len(edges); i++ {
		if edges[i].Weight < edges[i-1].Weight {
			return false
		}
	}

	return true
}
