// SPDX-License-Identifier: MIT

// Types and options for the depth-first reachability walk.

package dfs

import (
	"errors"

	"github.com/soniakeys/bits"
)

// NoPredecessor marks the root of the walk and every vertex it never reached.
const NoPredecessor = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Reach or IsConnected.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the root name is outside [0, n).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrVisitedSize indicates a caller-owned visited set whose length differs from n.
	ErrVisitedSize = errors.New("dfs: visited set size does not match graph order")
)

// Option configures optional behavior of Reach.
type Option func(*Options)

// Options holds the configurable parameters of a walk.
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is first discovered (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(name int) error

	// Visited is the set of discovered vertices. When nil, Reach allocates one.
	// Either way the set is cleared again before Reach returns, so a caller
	// may hand the same set to many walks.
	Visited *bits.Bits
}

// DefaultOptions returns Options with no hook and an internally allocated visited set.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(name int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithVisited returns an Option that makes the walk use a caller-owned visited set.
// The set must have exactly Order() bits.
func WithVisited(set *bits.Bits) Option {
	return func(o *Options) {
		o.Visited = set
	}
}

// Result captures the outcome of a reachability walk.
type Result struct {
	// Predecessors[v] is the vertex from which v was first discovered;
	// NoPredecessor for the root and for unreached vertices.
	Predecessors []int

	// Order lists vertices in discovery (pre-order) sequence.
	Order []int

	// Count is the number of vertices reached, root included.
	Count int
}
