// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgesort"
)

// ErrInvalidGraph indicates a nil graph or a graph without vertices.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a graph with at least one vertex")

// ErrDisconnected indicates that no spanning tree covers every vertex.
// A generated graph is always connected, so this is an internal error.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates a Method other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrRootOutOfRange indicates a Prim root outside [0, n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root out of range")

// Verify failures.
var (
	ErrNotSpanning    = errors.New("prim_kruskal: tree does not span the graph")
	ErrCycle          = errors.New("prim_kruskal: tree contains a cycle")
	ErrForeignEdge    = errors.New("prim_kruskal: tree edge not in graph")
	ErrWeightMismatch = errors.New("prim_kruskal: weight mismatch")
)

// MethodPrim selects Prim's algorithm (grow from a root using an indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// DefaultRoot is the vertex Prim grows from unless WithRoot says otherwise.
const DefaultRoot = 0

// Result is one computed spanning tree.
type Result struct {
	// Edges are in acceptance order: sorted order for Kruskal, extraction
	// order for Prim.
	Edges []*core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight int64

	// Elapsed covers the whole computation, Kruskal's extraction and sort included.
	Elapsed time.Duration
}

// ElapsedMillis returns Elapsed in whole milliseconds.
func (r *Result) ElapsedMillis() int64 { return r.Elapsed.Milliseconds() }

// MSTOptions configures which MST algorithm to run and over what.
// Use DefaultOptions() to get a default setup (Kruskal, list, quicksort).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Representation the edges (Kruskal) or neighbors (Prim) are read from.
	Representation core.Representation

	// Strategy sorts Kruskal's edge list. Unused by Prim.
	Strategy edgesort.Strategy

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// ShuffleSeed seeds quicksort's shuffle; 0 keeps the time-seeded default.
	ShuffleSeed int64

	// Logger receives one debug line per computation.
	Logger zerolog.Logger
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRepresentation returns an Option that selects the graph view.
func WithRepresentation(rep core.Representation) Option {
	return func(opts *MSTOptions) {
		opts.Representation = rep
	}
}

// WithStrategy returns an Option that selects Kruskal's sort.
func WithStrategy(s edgesort.Strategy) Option {
	return func(opts *MSTOptions) {
		opts.Strategy = s
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithShuffleSeed makes quicksort's shuffle reproducible.
func WithShuffleSeed(seed int64) Option {
	return func(opts *MSTOptions) {
		opts.ShuffleSeed = seed
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method         = MethodKruskal
//	– Representation = core.AdjacencyList
//	– Strategy       = edgesort.Quick
//	– Root           = DefaultRoot (ignored by Kruskal)
//	– Logger         = zerolog.Nop()
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:         MethodKruskal,
		Representation: core.AdjacencyList,
		Strategy:       edgesort.Quick,
		Root:           DefaultRoot,
		Logger:         zerolog.Nop(),
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodKruskal: Kruskal(g, Representation, Strategy).
//	– MethodPrim:    Prim(g, Representation) from Root.
//	– Otherwise:     ErrUnknownMethod.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	o := resolve(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, o.Representation, o.Strategy, opts...)
	case MethodPrim:
		return Prim(g, o.Representation, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}
