// SPDX-License-Identifier: MIT

// Package edgesort defines the Sorter capability, its three strategies and
// the options used to build them.
package edgesort

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/mstlab/core"
)

// ErrUnknownStrategy indicates an unsupported Strategy value or name.
var ErrUnknownStrategy = errors.New("edgesort: unknown sort strategy")

// Strategy names one of the edge-sorting algorithms.
type Strategy int

const (
	// Insertion is adjacent-swap insertion sort: stable, in place, O(m²).
	Insertion Strategy = iota
	// Count buckets edges by integer weight: stable, O(m + W).
	Count
	// Quick is shuffled quicksort with Hoare partitioning: in place, O(m log m) expected.
	Quick
)

// Strategies lists every strategy in report order.
var Strategies = []Strategy{Insertion, Count, Quick}

// String returns the upper-case report label of s.
func (s Strategy) String() string {
	switch s {
	case Insertion:
		return "INSERTION SORT"
	case Count:
		return "COUNT SORT"
	case Quick:
		return "QUICKSORT"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "insertion", "count" or "quick" (any case, optional "sort" suffix).
func ParseStrategy(s string) (Strategy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "sort"), " ")
	switch name {
	case "insertion":
		return Insertion, nil
	case "count":
		return Count, nil
	case "quick":
		return Quick, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
}

// Sorter orders edges ascending by core.Edge.Less.
//
// Sort may reorder its argument in place and returns the sorted slice,
// which is not necessarily the same backing array. An empty input yields
// an empty, non-nil slice.
type Sorter interface {
	Sort(edges []*core.Edge) []*core.Edge
	Strategy() Strategy
}

// Option configures strategy construction in New.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the shuffle source used by the quicksort strategy.
// A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithShuffleSeed seeds the quicksort shuffle; 0 keeps the time-seeded default.
func WithShuffleSeed(seed int64) Option {
	return func(o *options) {
		if seed != 0 {
			o.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// New returns the Sorter for strategy s.
func New(s Strategy, opts ...Option) (Sorter, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	switch s {
	case Insertion:
		return InsertionSorter{}, nil
	case Count:
		return CountSorter{}, nil
	case Quick:
		if o.rng == nil {
			o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return &QuickSorter{rng: o.rng}, nil
	default:
		return nil, fmt.Errorf("New(%d): %w", int(s), ErrUnknownStrategy)
	}
}
