// SPDX-License-Identifier: MIT

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstlab/config"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadParams(t *testing.T) {
	p, err := config.Load(writeInput(t, "5\n42\n1.0\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Params{N: 5, Seed: 42, P: 1.0}, p)

	// trailing lines ignored, whitespace trimmed, CRLF tolerated
	p, err = config.Load(writeInput(t, " 1000 \r\n-7\r\n0.25\r\nextra\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Params{N: 1000, Seed: -7, P: 0.25}, p)

	// a missing p line leaves p = 0, which is in range
	p, err = config.Load(writeInput(t, "5\n1\n"))
	require.NoError(t, err)
	assert.Zero(t, p.P)
}

func TestReadParams_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
		message string
	}{
		{"n not integer", "five\n1\n0.5\n", config.ErrNotInteger, "n and seed must be integers"},
		{"n is real", "5.0\n1\n0.5\n", config.ErrNotInteger, "n and seed must be integers"},
		{"seed not integer", "5\n1.5\n0.5\n", config.ErrNotInteger, "n and seed must be integers"},
		{"p not real", "5\n1\nhalf\n", config.ErrNotReal, "p must be a real number"},
		{"empty file", "", config.ErrTooFewVertices, "n must be greater than 1"},
		{"n too small", "1\n1\n0.5\n", config.ErrTooFewVertices, "n must be greater than 1"},
		{"p negative", "5\n1\n-0.5\n", config.ErrProbabilityRange, "p must be between 0 and 1"},
		{"p above one", "5\n1\n1.5\n", config.ErrProbabilityRange, "p must be between 0 and 1"},
		{"p NaN", "5\n1\nNaN\n", config.ErrProbabilityRange, "p must be between 0 and 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeInput(t, tc.content))
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.message, config.UserMessage(err))
		})
	}
}

// TestInputErrors_GoStyle keeps the sentinels lower case and unpunctuated.
func TestInputErrors_GoStyle(t *testing.T) {
	for _, err := range []error{config.ErrInputNotFound, config.ErrNotInteger, config.ErrNotReal, config.ErrTooFewVertices, config.ErrProbabilityRange} {
		text := err.Error()
		assert.True(t, strings.HasPrefix(text, "config: "), text)
		assert.Equal(t, strings.ToLower(text), text)
		assert.False(t, strings.HasSuffix(text, "."), text)
	}
}

func TestReadParams_NotFound(t *testing.T) {
	_, err := config.ReadParams(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, config.ErrInputNotFound)
	assert.Equal(t, "Input file not found", config.UserMessage(err))
}

func TestUserMessage_Other(t *testing.T) {
	assert.Equal(t, "Error: boom", config.UserMessage(errors.New("boom")))
}
