// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstlab/config"
)

func TestSettings_Defaults(t *testing.T) {
	s := config.NewSettings()
	assert.Equal(t, "warn", s.LogLevel())
	assert.Equal(t, 10, s.MaxPrintVertices())
	assert.Zero(t, s.MaxAttempts())
	assert.Zero(t, s.ShuffleSeed())
	assert.True(t, s.RunSorts())
	assert.True(t, s.RunKruskal())
	assert.True(t, s.RunPrim())
	assert.False(t, s.RunVerify())
}

func TestSettings_Env(t *testing.T) {
	t.Setenv("MST_GRAPH_MAX_ATTEMPTS", "5")
	t.Setenv("MST_RUN_PRIM", "false")

	s := config.NewSettings()
	assert.Equal(t, 5, s.MaxAttempts())
	assert.False(t, s.RunPrim())
}

func TestSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mst.yaml")
	content := "log:\n  level: debug\nreport:\n  max_print_vertices: 4\nsort:\n  shuffle_seed: 99\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s := config.NewSettings()
	require.NoError(t, s.LoadFromFile(path))
	assert.Equal(t, "debug", s.LogLevel())
	assert.Equal(t, 4, s.MaxPrintVertices())
	assert.Equal(t, int64(99), s.ShuffleSeed())

	assert.Error(t, config.NewSettings().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestSettings_FlagOverrides(t *testing.T) {
	fs := pflag.NewFlagSet("mst", pflag.ContinueOnError)
	fs.Int("max-attempts", 0, "")
	fs.Bool("verify", false, "")
	require.NoError(t, fs.Parse([]string{"--max-attempts=3", "--verify"}))

	s := config.NewSettings()
	require.NoError(t, s.BindFlag(config.KeyMaxAttempts, fs.Lookup("max-attempts")))
	require.NoError(t, s.BindFlag(config.KeyRunVerify, fs.Lookup("verify")))
	assert.Equal(t, 3, s.MaxAttempts())
	assert.True(t, s.RunVerify())
}

func TestSettings_CreateLogger(t *testing.T) {
	var buf bytes.Buffer
	s := config.NewSettings()
	s.Set(config.KeyLogLevel, "info")
	log := s.CreateLogger(&buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	s.Set(config.KeyLogLevel, "loud")
	buf.Reset()
	log = s.CreateLogger(&buf)
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
