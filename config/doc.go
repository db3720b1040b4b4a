// SPDX-License-Identifier: MIT

// Package config holds the two inputs of a run.
//
// Params are the experiment itself: (n, seed, p) read from a three-line
// input file by ReadParams and checked by Validate. Their errors carry the
// exact messages the command prints before exiting with status 1.
//
// Settings are the knobs around the experiment (log level, printing
// threshold, attempt cap, quicksort seed, which sections run). They are
// backed by viper: defaults, an optional config file, MST_* environment
// variables and bound command-line flags, in increasing precedence.
package config
