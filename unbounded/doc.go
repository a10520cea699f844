// SPDX-License-Identifier: MIT

// Package unbounded solves the unbounded knapsack problem with a bottom-up
// dynamic program and reports one optimal multiset of item types for every
// capacity from 0 up to the requested one.
//
// 🚀 What is the unbounded knapsack?
//
//	Given a capacity W and a catalog of item types (weight, value), pick
//	items, each type any number of times, so that the total weight stays
//	≤ W and the total value is maximal. Typical uses:
//	  • Cutting stock / rod cutting
//	  • Coin-change style "best mix" questions
//	  • Packing identical crates of several kinds into a container
//
// ✨ Key features:
//   - full Value Table: best value for every capacity 0..W
//   - full Selection Table: one optimal selection per capacity
//   - deterministic tie-break policy (TieLast by default, TieFirst on demand)
//   - pure Solve returning an immutable *Result, plus a stateful Solver
//     that keeps one live result per instance
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapsack/unbounded"
//
//	res, err := unbounded.Solve(weights, values, len(weights), 29, nil)
//	if err != nil {
//	  // errors.Is(err, unbounded.ErrInvalidInput)
//	}
//	best, _ := res.MaximumValue(29)
//	list, _ := res.SelectedElementsString(29) // "[34, 1, 1, 1, 1]"
//
// Item types are reported by their catalog index + 1.
//
// Performance:
//
//   - Time:   O(W·N), N = number of item types considered
//   - Memory: O(W·L), L = length of the longest selection
package unbounded
