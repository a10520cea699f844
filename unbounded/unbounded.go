// SPDX-License-Identifier: MIT

package unbounded

// Solve — unbounded knapsack by bottom-up dynamic programming.
//
// Algorithm Outline:
//  1. Allocate V[0..W] = 0 and S[0..W] = [] (W = capacity).
//  2. For c = 0..W (ascending):
//     For n = 0..itemCount-1 (catalog order), if w[n] ≤ c:
//     cand = V[c-w[n]] + v[n]
//     if cand ≥ V[c] (TieLast) or cand > V[c] (TieFirst):
//     V[c] = cand
//     S[c] = [n+1] ++ S[c-w[n]]   (fresh slice)
//  3. V[c] is the best value with total weight ≤ c, S[c] one selection
//     reaching it, most recently added item first.
//
// V[c-w[n]] is already final for the current pass, so an item type can
// contribute to both c-w[n] and c: repetition is unlimited.
//
// Complexity:
//
//	Time   = O(W·itemCount)
//	Memory = O(W·L), L = longest selection
//
// Errors:
//   - ErrInvalidInput — see validateInput.
//
// Example:
//
//	res, err := Solve([]int{1, 2, 3}, []int{10, 15, 40}, 3, 6, nil)
//	best, _ := res.MaximumValue(6) // 80
func Solve(weights, values []int, itemCount, capacity int, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateInput(weights, values, itemCount, capacity, o); err != nil {
		return nil, err
	}

	var (
		best = make([]int, capacity+1)
		sel  = make([][]int, capacity+1)
	)

	var c, n, cand int
	for c = 0; c <= capacity; c++ {
		for n = 0; n < itemCount; n++ {
			if weights[n] > c {
				continue
			}
			cand = best[c-weights[n]] + values[n]
			if !improves(cand, best[c], o.TieBreak) {
				continue
			}
			best[c] = cand

			prev := sel[c-weights[n]]
			row := make([]int, 0, len(prev)+1)
			row = append(row, n+1)
			row = append(row, prev...)
			sel[c] = row
		}
	}

	return &Result{
		values:     best,
		selections: sel,
		weights:    append([]int(nil), weights[:itemCount]...),
		bound:      capacity + 1,
		tie:        o.TieBreak,
	}, nil
}

// SolveItems is Solve over a catalog of Item structs; every item is considered.
func SolveItems(items []Item, capacity int, opts *Options) (*Result, error) {
	var (
		weights = make([]int, len(items))
		values  = make([]int, len(items))
	)
	for i, it := range items {
		weights[i] = it.Weight
		values[i] = it.Value
	}

	return Solve(weights, values, len(items), capacity, opts)
}

// improves reports whether cand replaces cur under the given policy.
func improves(cand, cur int, tie TieBreak) bool {
	if tie == TieFirst {
		return cand > cur
	}

	return cand >= cur
}
