// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • maxAttempts = 0 (unbounded retry, the documented behavior)
//   • ctx         = context.Background()
//   • logger      = zerolog.Nop()

package builder

import (
	"context"

	"github.com/rs/zerolog"
)

// builderConfig aggregates all knobs used by Generate.
type builderConfig struct {
	// maxAttempts caps sampling rounds; 0 means no cap.
	maxAttempts int
	// ctx is checked between attempts.
	ctx context.Context
	// logger receives attempt diagnostics.
	logger zerolog.Logger
}

// newBuilderConfig constructs a config with defaults and applies options in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		maxAttempts: 0,
		ctx:         context.Background(),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
