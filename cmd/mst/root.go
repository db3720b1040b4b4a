// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mstlab/config"
)

const longDescription = `Generate a random connected graph and compute its minimum spanning tree.

The input file holds three lines: the number of vertices n (> 1), an integer
seed, and the probability p (0 <= p <= 1) that two vertices are connected.

Every pair of vertices is connected with probability p and gets a weight in
[1, n]; the graph is regenerated until it is connected. The edges are then
sorted with insertion sort, count sort and quicksort over the adjacency matrix
and the adjacency list, and the minimum spanning tree is built with Kruskal's
algorithm for each combination and with Prim's algorithm for each
representation. Details are printed for graphs of at most 10 vertices.

Settings may also come from a config file (--config) or MST_* environment
variables, e.g. MST_GRAPH_MAX_ATTEMPTS=100.`

var errInvalidArgs = errors.New("mst: invalid number of parameters")

// invalidArgsMessage is the line printed for errInvalidArgs.
const invalidArgsMessage = "Error: Invalid number of parameters provided."

// MSTOptions carries one invocation of the command.
type MSTOptions struct {
	InputPath  string
	ConfigPath string

	Settings *config.Settings

	Out    io.Writer
	ErrOut io.Writer
}

// NewCommandMST returns the root command writing its report to out and
// its diagnostics to errOut.
func NewCommandMST(name string, out, errOut io.Writer) *cobra.Command {
	options := &MSTOptions{
		Settings: config.NewSettings(),
		Out:      out,
		ErrOut:   errOut,
	}

	cmd := &cobra.Command{
		Use:           name + " [flags] <input-file>",
		Short:         "Compare MST algorithms on a random connected graph",
		Long:          longDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := options.Validate(args); err != nil {
				fmt.Fprintln(options.ErrOut, invalidArgsMessage)
				return err
			}
			if err := options.Complete(args); err != nil {
				fmt.Fprintf(options.ErrOut, "Error: %v\n", err)
				return err
			}
			if err := options.Run(cmd.Context()); err != nil {
				fmt.Fprintln(options.Out, config.UserMessage(err))
				return err
			}

			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&options.ConfigPath, "config", "", "Config file (yaml, json or toml) with mst settings")
	flags.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	flags.Int("max-attempts", 0, "Give up after this many disconnected samples (0 retries forever)")
	flags.Int64("shuffle-seed", 0, "Seed for the quicksort shuffle (0 uses the clock)")
	flags.Int("max-print-vertices", config.DefaultMaxPrintVertices, "Print edges and graph views only up to this many vertices")
	flags.Bool("sorts", true, "Print the six sorted edge listings")
	flags.Bool("kruskal", true, "Run Kruskal for every sort and representation")
	flags.Bool("prim", true, "Run Prim for every representation")
	flags.Bool("verify", false, "Check every spanning tree after it is built")

	bindFlags(options.Settings, flags)

	return cmd
}

// bindFlags maps every settings flag to its key. Unknown names are a
// programming error.
func bindFlags(s *config.Settings, flags *pflag.FlagSet) {
	for flag, key := range map[string]string{
		"log-level":          config.KeyLogLevel,
		"max-attempts":       config.KeyMaxAttempts,
		"shuffle-seed":       config.KeyShuffleSeed,
		"max-print-vertices": config.KeyMaxPrintVertices,
		"sorts":              config.KeyRunSorts,
		"kruskal":            config.KeyRunKruskal,
		"prim":               config.KeyRunPrim,
		"verify":             config.KeyRunVerify,
	} {
		if err := s.BindFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("mst: bind --%s: %v", flag, err))
		}
	}
}

// Validate checks the positional arguments.
func (o *MSTOptions) Validate(args []string) error {
	if len(args) != 1 {
		return errInvalidArgs
	}

	return nil
}

// Complete records the input path and merges the config file, if any.
func (o *MSTOptions) Complete(args []string) error {
	o.InputPath = args[0]
	if o.ConfigPath == "" {
		return nil
	}
	if err := o.Settings.LoadFromFile(o.ConfigPath); err != nil {
		return fmt.Errorf("config %s: %w", o.ConfigPath, err)
	}

	return nil
}
