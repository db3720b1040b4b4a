// SPDX-License-Identifier: MIT

package config

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Input errors.
var (
	ErrInputNotFound    = errors.New("config: input file not found")
	ErrNotInteger       = errors.New("config: n and seed must be integers")
	ErrNotReal          = errors.New("config: p must be a real number")
	ErrTooFewVertices   = errors.New("config: n must be greater than 1")
	ErrProbabilityRange = errors.New("config: p must be between 0 and 1")
)

// inputMessages maps each input error to the line the command prints.
var inputMessages = []struct {
	err error
	msg string
}{
	{ErrInputNotFound, "Input file not found"},
	{ErrNotInteger, "n and seed must be integers"},
	{ErrNotReal, "p must be a real number"},
	{ErrTooFewVertices, "n must be greater than 1"},
	{ErrProbabilityRange, "p must be between 0 and 1"},
}

const minVertices = 2

// Input file line indices.
const (
	lineN = iota
	lineSeed
	lineP
)

// Params are the generator inputs.
type Params struct {
	N    int
	Seed int64
	P    float64
}

// ReadParams parses path: line 1 is n, line 2 the seed, line 3 p.
// Lines after the third are ignored and missing lines leave the zero
// value, which Validate then rejects. Surrounding whitespace is trimmed.
func ReadParams(path string) (Params, error) {
	var p Params

	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("%s: %w", path, ErrInputNotFound)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for line := 0; line <= lineP && sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		switch line {
		case lineN:
			if p.N, err = strconv.Atoi(text); err != nil {
				return p, fmt.Errorf("line %d %q: %w", line+1, text, ErrNotInteger)
			}
		case lineSeed:
			if p.Seed, err = strconv.ParseInt(text, 10, 64); err != nil {
				return p, fmt.Errorf("line %d %q: %w", line+1, text, ErrNotInteger)
			}
		case lineP:
			if p.P, err = strconv.ParseFloat(text, 64); err != nil {
				return p, fmt.Errorf("line %d %q: %w", line+1, text, ErrNotReal)
			}
		}
	}
	if err = sc.Err(); err != nil {
		return p, fmt.Errorf("reading %s: %w", path, err)
	}

	return p, nil
}

// Validate enforces n >= 2 and 0 <= p <= 1.
func (p Params) Validate() error {
	if p.N < minVertices {
		return fmt.Errorf("n=%d: %w", p.N, ErrTooFewVertices)
	}
	if math.IsNaN(p.P) || p.P < 0 || p.P > 1 {
		return fmt.Errorf("p=%v: %w", p.P, ErrProbabilityRange)
	}

	return nil
}

// Load is ReadParams followed by Validate.
func Load(path string) (Params, error) {
	p, err := ReadParams(path)
	if err != nil {
		return p, err
	}

	return p, p.Validate()
}

// UserMessage returns the message to print for err: the fixed line of an
// input error, or "Error: <err>" for anything else.
func UserMessage(err error) string {
	for _, m := range inputMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return "Error: " + err.Error()
}
