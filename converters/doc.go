// SPDX-License-Identifier: MIT

// Package converters exports a core.Graph to gonum types so the generated
// graphs can be inspected and cross-checked with gonum's own algorithms:
//   - ToDense / ToSymDense: the weight matrix as gonum mat values.
//   - ToGonum: a simple.WeightedUndirectedGraph with node IDs equal to
//     vertex names and float64 weights.
//
// Absent pairs are 0 in the matrices and have no edge in the gonum graph.
package converters
