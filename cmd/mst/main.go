// SPDX-License-Identifier: MIT

// mst generates a random connected graph from an input file holding n, seed
// and p, then prints its edge sorts and its minimum spanning trees.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command := NewCommandMST("mst", os.Stdout, os.Stderr)
	if err := command.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
