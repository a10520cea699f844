// SPDX-License-Identifier: MIT

// Package knapsack is a small playground for knapsack-style optimization,
// starting with the unbounded variant.
//
// 🚀 What is inside?
//
//	unbounded/ — unbounded knapsack (item types reusable any number of
//	             times) by bottom-up dynamic programming, with the full
//	             Value Table and one optimal selection per capacity
//	examples/  — runnable demonstration program
//
// ✨ Why this library?
//
//   - Pure Go, no cgo, deterministic results
//   - Sentinel errors matched with errors.Is, no panics on user input
//   - Immutable results: queries return copies, never internal slices
//
// Quick example:
//
//	res, _ := unbounded.Solve([]int{1, 2, 3}, []int{10, 15, 40}, 3, 6, nil)
//	best, _ := res.MaximumValue(6)          // 80
//	sel, _ := res.SelectedElementsString(6) // "[3, 3]"
//
//	go get github.com/katalvlaran/knapsack/unbounded
package knapsack
