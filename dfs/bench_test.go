// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mstlab/dfs"
)

// BenchmarkReach_Chain10000 measures a walk down a 10,000-vertex path,
// the deepest recursion a connected graph of that order can produce.
func BenchmarkReach_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	set := bits.New(g.Order()) // reuse one visited set across iterations
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Reach(g, 0, dfs.WithVisited(&set))
	}
}
