// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mstlab/core"
)

// ErrNilGraph is returned when a nil *core.Graph is converted.
var ErrNilGraph = errors.New("converters: graph is nil")

// ErrEmptyGraph is returned for a graph with no vertices; gonum matrices
// cannot have zero dimensions.
var ErrEmptyGraph = errors.New("converters: graph has no vertices")

// ToDense copies the adjacency-matrix view into an n×n *mat.Dense.
// Complexity: O(n²).
func ToDense(g *core.Graph) (*mat.Dense, error) {
	data, n, err := flatten(g)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(n, n, data), nil
}

// ToSymDense is ToDense for callers that want the symmetry in the type.
func ToSymDense(g *core.Graph) (*mat.SymDense, error) {
	data, n, err := flatten(g)
	if err != nil {
		return nil, err
	}

	return mat.NewSymDense(n, data), nil
}

func flatten(g *core.Graph) ([]float64, int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.Order()
	if n == 0 {
		return nil, 0, ErrEmptyGraph
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		row, err := g.Row(i)
		if err != nil {
			return nil, 0, err
		}
		for j, w := range row {
			data[i*n+j] = float64(w)
		}
	}

	return data, n, nil
}

// ToGonum builds a weighted undirected gonum graph with one node per vertex
// (node ID = vertex name) and one weighted edge per core edge.
// Missing edges report weight +Inf through gonum's Weight.
// Complexity: O(n + m).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.Order(); i++ {
		out.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		out.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(e.Left)),
			T: simple.Node(int64(e.Right)),
			W: float64(e.Weight),
		})
	}

	return out, nil
}
