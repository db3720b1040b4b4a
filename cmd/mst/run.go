// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/config"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgesort"
	"github.com/katalvlaran/mstlab/prim_kruskal"
	"github.com/katalvlaran/mstlab/report"
)

// tree is one computed spanning tree kept for the verify pass.
type tree struct {
	label string
	res   *prim_kruskal.Result
}

// Run reads the parameters, generates the graph and prints every section
// the settings enable. Sections run in a fixed order: graph, sorted edges,
// Kruskal, Prim, verification.
func (o *MSTOptions) Run(ctx context.Context) error {
	s := o.Settings
	log := s.CreateLogger(o.ErrOut)

	params, err := config.Load(o.InputPath)
	if err != nil {
		return err
	}
	log.Info().Int("n", params.N).Int64("seed", params.Seed).Float64("p", params.P).Msg("parameters loaded")

	if s.MaxAttempts() < 0 {
		return fmt.Errorf("max attempts %d: must not be negative", s.MaxAttempts())
	}
	gen, err := builder.Generate(params.N, params.Seed, params.P,
		builder.WithMaxAttempts(s.MaxAttempts()),
		builder.WithContext(ctx),
		builder.WithLogger(log),
	)
	if err != nil {
		return err
	}
	g := gen.Graph
	log.Info().Int("edges", g.Size()).Int("attempts", gen.Attempts).Dur("elapsed", gen.Elapsed).Msg("graph generated")

	pr := report.New(o.Out, report.WithMaxPrintVertices(s.MaxPrintVertices()))
	pr.Header(params.N, params.Seed, params.P)
	pr.GenerationTime(gen.Elapsed)
	pr.AdjacencyMatrix(g)
	pr.AdjacencyList(g)
	pr.DFSInfo(gen.Predecessors)

	if s.RunSorts() {
		if err = o.sortEdges(pr, g); err != nil {
			return err
		}
	}

	var trees []tree
	mstOpts := []prim_kruskal.Option{
		prim_kruskal.WithShuffleSeed(s.ShuffleSeed()),
		prim_kruskal.WithLogger(log),
	}
	if s.RunKruskal() {
		for _, rep := range core.Representations {
			for _, strategy := range edgesort.Strategies {
				res, kerr := prim_kruskal.Kruskal(g, rep, strategy, mstOpts...)
				if kerr != nil {
					return kerr
				}
				pr.Divider()
				pr.Kruskal(g.Order(), res, rep, strategy)
				trees = append(trees, tree{label: fmt.Sprintf("KRUSKAL %s %s", rep, strategy), res: res})
			}
		}
	}
	if s.RunPrim() {
		for _, rep := range core.Representations {
			res, perr := prim_kruskal.Prim(g, rep, mstOpts...)
			if perr != nil {
				return perr
			}
			pr.Divider()
			pr.Prim(g.Order(), res, rep)
			trees = append(trees, tree{label: fmt.Sprintf("PRIM %s", rep), res: res})
		}
	}

	if s.RunVerify() {
		if err = verify(pr, log, g, trees); err != nil {
			return err
		}
	}

	return pr.Err()
}

// sortEdges prints the three sorts over the matrix, then over the list.
// One Timer per strategy records both representations.
func (o *MSTOptions) sortEdges(pr *report.Printer, g *core.Graph) error {
	timers := make(map[edgesort.Strategy]*edgesort.Timer, len(edgesort.Strategies))
	for _, strategy := range edgesort.Strategies {
		sorter, err := edgesort.New(strategy, edgesort.WithShuffleSeed(o.Settings.ShuffleSeed()))
		if err != nil {
			return err
		}
		timers[strategy] = edgesort.NewTimer(sorter)
	}

	for _, rep := range core.Representations {
		for _, strategy := range edgesort.Strategies {
			sorted, elapsed, err := timers[strategy].SortGraph(g, rep)
			if err != nil {
				return err
			}
			pr.Divider()
			pr.SortedEdges(g.Order(), sorted, rep, strategy, elapsed)
		}
	}

	return nil
}

// verify checks every tree and reports whether all Kruskal and Prim totals agree.
func verify(pr *report.Printer, log zerolog.Logger, g *core.Graph, trees []tree) error {
	if len(trees) == 0 {
		return nil
	}
	pr.Divider()

	var failed error
	want := trees[0].res.TotalWeight
	for _, t := range trees {
		err := prim_kruskal.Verify(g, t.res)
		if err == nil && t.res.TotalWeight != want {
			err = fmt.Errorf("total %d differs from %s total %d: %w", t.res.TotalWeight, trees[0].label, want, prim_kruskal.ErrWeightMismatch)
		}
		pr.Verified(t.label, err)
		if err != nil {
			log.Error().Err(err).Str("tree", t.label).Msg("verification failed")
			if failed == nil {
				failed = err
			}
		}
	}

	return failed
}
