// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// options.go: functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     Generate itself never panics.

package builder

import (
	"context"

	"github.com/rs/zerolog"
)

// Option customizes Generate by mutating builderConfig before sampling.
type Option func(*builderConfig)

// WithMaxAttempts bounds the regenerate-until-connected loop.
// k == 0 restores the unbounded default. Panics on k < 0.
func WithMaxAttempts(k int) Option {
	if k < 0 {
		panic("builder: WithMaxAttempts(k<0)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = k
	}
}

// WithContext makes the retry loop stop with ctx.Err() once ctx is done.
// The context is polled between attempts, never inside one. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *builderConfig) {
		c.ctx = ctx
	}
}

// WithLogger routes attempt diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *builderConfig) {
		c.logger = l
	}
}
