// SPDX-License-Identifier: MIT

// Package unionfind provides a fixed-size disjoint-set forest over the dense
// indices [0, n), with path compression and union by rank.
//
// Invariants:
//   - parent[r] == r for every root r.
//   - rank only grows, and only on the root that absorbs an equal-rank tree.
//   - after Union(u, v), Find(u) == Find(v).
//
// Indices are not range checked beyond Go's own bounds checks; callers pass
// vertex names of the graph the set was sized for.
package unionfind

// DisjointSet tracks a partition of [0, n) into disjoint sets.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int // number of disjoint sets remaining
}

// New returns a DisjointSet of n singletons.
// Complexity: O(n).
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i // p(v) = v
	}

	return d
}

// Find returns the root of the set containing v, repointing every node on
// the path directly at that root.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(v int) int {
	if d.parent[v] != v {
		d.parent[v] = d.Find(d.parent[v])
	}

	return d.parent[v]
}

// Union merges the sets containing u and v and reports whether they were
// disjoint. The lower-rank root is attached under the higher-rank one; on a
// tie the root of u is attached under the root of v, whose rank grows by one.
func (d *DisjointSet) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] > d.rank[rv] {
		d.parent[rv] = ru
	} else {
		d.parent[ru] = rv
		if d.rank[ru] == d.rank[rv] {
			d.rank[rv]++
		}
	}
	d.count--

	return true
}

// Connected reports whether u and v are in the same set.
func (d *DisjointSet) Connected(u, v int) bool { return d.Find(u) == d.Find(v) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Rank returns the rank of v's root. Exposed for tests and diagnostics.
func (d *DisjointSet) Rank(v int) int { return d.rank[d.Find(v)] }
