// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mstlab/converters"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgesort"
	"github.com/katalvlaran/mstlab/prim_kruskal"
)

// DefaultMaxPrintVertices is the largest graph whose edges and views are printed.
const DefaultMaxPrintVertices = 10

// matrixCellWidth is the field width of one adjacency-matrix cell.
const matrixCellWidth = 4

// Divider separates sections.
const Divider = "==================================="

// Section actions.
const (
	actionSorted  = "SORTED EDGES"
	actionKruskal = "KRUSKAL"
	actionPrim    = "PRIM"
)

// Option configures a Printer.
type Option func(*Printer)

// WithMaxPrintVertices sets the detail threshold; k < 0 disables detail output.
func WithMaxPrintVertices(k int) Option {
	return func(p *Printer) {
		p.maxVertices = k
	}
}

// Printer writes report sections to w.
type Printer struct {
	w           io.Writer
	maxVertices int
	err         error
}

// New returns a Printer on w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, maxVertices: DefaultMaxPrintVertices}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Err returns the first write error.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) detailed(n int) bool { return n <= p.maxVertices }

// Header prints the run parameters.
func (p *Printer) Header(n int, seed int64, prob float64) {
	p.printf("TEST: n=%d, seed=%d, p=%s\n", n, seed, formatProbability(prob))
}

// GenerationTime prints how long the generator took.
func (p *Printer) GenerationTime(d time.Duration) {
	p.printf("Time to generate the graph: %d milliseconds\n", d.Milliseconds())
}

// Divider prints the section divider.
func (p *Printer) Divider() {
	p.printf("%s\n", Divider)
}

// AdjacencyMatrix prints the weight matrix of a small graph, one row per
// line after a blank line, every cell right-aligned in a 4-column field.
func (p *Printer) AdjacencyMatrix(g *core.Graph) {
	if !p.detailed(g.Order()) {
		return
	}
	d, err := converters.ToDense(g)
	if err != nil {
		p.err = err
		return
	}
	p.printf("\nThe graph as an adjacency matrix:\n")
	rows, _ := d.Dims()
	for i := 0; i < rows; i++ {
		var sb strings.Builder
		sb.WriteString("\n ")
		for _, w := range mat.Row(nil, i, d) {
			fmt.Fprintf(&sb, "%*d", matrixCellWidth, int64(w))
		}
		p.printf("%s\n", sb.String())
	}
}

// AdjacencyList prints "u-> v(w) v(w)" per vertex of a small graph, edges
// in attachment order.
func (p *Printer) AdjacencyList(g *core.Graph) {
	if !p.detailed(g.Order()) {
		return
	}
	p.printf("\nThe graph as an adjacency list:\n")
	for _, v := range g.Vertices() {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(v.Name))
		sb.WriteString("->")
		for _, e := range v.Edges() {
			other, err := e.Other(v.Name)
			if err != nil {
				p.err = err
				return
			}
			fmt.Fprintf(&sb, " %d(%d)", other, e.Weight)
		}
		p.printf("%s\n", sb.String())
	}
}

// DFSInfo prints the vertex names and the predecessor array of the
// connectivity walk.
func (p *Printer) DFSInfo(predecessors []int) {
	if !p.detailed(len(predecessors)) {
		return
	}
	var names, preds strings.Builder
	for i, pred := range predecessors {
		if i > 0 {
			preds.WriteByte(' ')
		}
		fmt.Fprintf(&names, " %d", i)
		preds.WriteString(strconv.Itoa(pred))
	}
	p.printf("\nDepth-First Search:\nVertices:\n%s\nPredecessors:\n%s\n", names.String(), preds.String())
}

// SortedEdges prints one sorted edge listing.
func (p *Printer) SortedEdges(n int, edges []*core.Edge, rep core.Representation, s edgesort.Strategy, elapsed time.Duration) {
	p.printf("%s WITH %s USING %s\n", actionSorted, rep, s)
	p.edges(n, edges)
	p.printf("\nTotal weight = %d\n", core.TotalWeight(edges))
	p.runtime(elapsed)
}

// Kruskal prints one Kruskal tree.
func (p *Printer) Kruskal(n int, res *prim_kruskal.Result, rep core.Representation, s edgesort.Strategy) {
	p.printf("%s WITH %s USING %s\n", actionKruskal, rep, s)
	p.edges(n, res.Edges)
	p.printf("\nTotal weight of MST using Kruskal: %d\n", res.TotalWeight)
	p.runtime(res.Elapsed)
}

// Prim prints one Prim tree.
func (p *Printer) Prim(n int, res *prim_kruskal.Result, rep core.Representation) {
	p.printf("%s WITH %s\n", actionPrim, rep)
	p.edges(n, res.Edges)
	p.printf("\nTotal weight of MST using Prim: %d\n", res.TotalWeight)
	p.runtime(res.Elapsed)
}

// Verified prints the outcome of a spanning-tree check.
func (p *Printer) Verified(label string, err error) {
	if err != nil {
		p.printf("VERIFY %s: FAILED: %v\n", label, err)
		return
	}
	p.printf("VERIFY %s: OK\n", label)
}

func (p *Printer) edges(n int, edges []*core.Edge) {
	if !p.detailed(n) {
		return
	}
	for _, e := range edges {
		p.printf("%s\n", e)
	}
}

func (p *Printer) runtime(d time.Duration) {
	p.printf("Runtime: %d milliseconds\n\n", d.Milliseconds())
}

// formatProbability prints p with at least one fractional digit: 1 → "1.0".
func formatProbability(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}
