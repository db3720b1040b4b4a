// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyLogLevel         = "log.level"
	KeyMaxPrintVertices = "report.max_print_vertices"
	KeyMaxAttempts      = "graph.max_attempts"
	KeyShuffleSeed      = "sort.shuffle_seed"
	KeyRunSorts         = "run.sorts"
	KeyRunKruskal       = "run.kruskal"
	KeyRunPrim          = "run.prim"
	KeyRunVerify        = "run.verify"

	envPrefix = "MST"
)

// DefaultMaxPrintVertices is the default of KeyMaxPrintVertices.
const DefaultMaxPrintVertices = 10

// Settings manages run configuration using viper.
type Settings struct {
	v *viper.Viper
}

// NewSettings creates settings with defaults and MST_* environment lookup
// (MST_LOG_LEVEL, MST_GRAPH_MAX_ATTEMPTS, ...).
func NewSettings() *Settings {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyMaxPrintVertices, DefaultMaxPrintVertices)
	v.SetDefault(KeyMaxAttempts, 0)
	v.SetDefault(KeyShuffleSeed, 0)
	v.SetDefault(KeyRunSorts, true)
	v.SetDefault(KeyRunKruskal, true)
	v.SetDefault(KeyRunPrim, true)
	v.SetDefault(KeyRunVerify, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Settings{v: v}
}

// LoadFromFile merges a config file (any format viper reads) over the defaults.
func (s *Settings) LoadFromFile(path string) error {
	s.v.SetConfigFile(path)
	return s.v.ReadInConfig()
}

// BindFlag makes a changed flag override the key.
func (s *Settings) BindFlag(key string, flag *pflag.Flag) error {
	return s.v.BindPFlag(key, flag)
}

// Set overrides a key.
func (s *Settings) Set(key string, value interface{}) {
	s.v.Set(key, value)
}

// LogLevel returns the zerolog level name.
func (s *Settings) LogLevel() string { return s.v.GetString(KeyLogLevel) }

// MaxPrintVertices returns the largest order whose graph views and edges are printed.
func (s *Settings) MaxPrintVertices() int { return s.v.GetInt(KeyMaxPrintVertices) }

// MaxAttempts returns the generation attempt cap; 0 means unbounded.
func (s *Settings) MaxAttempts() int { return s.v.GetInt(KeyMaxAttempts) }

// ShuffleSeed returns the quicksort shuffle seed; 0 means time-based.
func (s *Settings) ShuffleSeed() int64 { return s.v.GetInt64(KeyShuffleSeed) }

// RunSorts reports whether the sorted-edge sections run.
func (s *Settings) RunSorts() bool { return s.v.GetBool(KeyRunSorts) }

// RunKruskal reports whether the Kruskal sections run.
func (s *Settings) RunKruskal() bool { return s.v.GetBool(KeyRunKruskal) }

// RunPrim reports whether the Prim sections run.
func (s *Settings) RunPrim() bool { return s.v.GetBool(KeyRunPrim) }

// RunVerify reports whether every tree is checked with prim_kruskal.Verify.
func (s *Settings) RunVerify() bool { return s.v.GetBool(KeyRunVerify) }

// CreateLogger builds a console logger on w at the configured level.
// An unparsable level falls back to warn.
func (s *Settings) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(s.LogLevel())
	if err != nil {
		level = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "mst").Logger()
}
