// SPDX-License-Identifier: MIT

package unbounded

import "fmt"

// validateInput checks everything Solve relies on before it allocates.
// Only the first itemCount entries of weights and values are inspected.
//
// Complexity: O(itemCount).
func validateInput(weights, values []int, itemCount, capacity int, opts Options) error {
	if capacity < 0 {
		return fmt.Errorf("capacity %d is negative: %w", capacity, ErrInvalidInput)
	}
	if itemCount < 0 {
		return fmt.Errorf("item count %d is negative: %w", itemCount, ErrInvalidInput)
	}
	if itemCount > len(weights) || itemCount > len(values) {
		return fmt.Errorf("item count %d exceeds catalog (weights=%d, values=%d): %w",
			itemCount, len(weights), len(values), ErrInvalidInput)
	}

	var n int
	for n = 0; n < itemCount; n++ {
		// A zero-weight item could be taken infinitely often for free.
		if weights[n] <= 0 {
			return fmt.Errorf("weight[%d]=%d must be positive: %w", n, weights[n], ErrInvalidInput)
		}
		if values[n] < 0 {
			return fmt.Errorf("value[%d]=%d is negative: %w", n, values[n], ErrInvalidInput)
		}
	}

	switch opts.TieBreak {
	case TieLast, TieFirst:
	default:
		return fmt.Errorf("tie-break %d: %w", int(opts.TieBreak), ErrInvalidInput)
	}

	return nil
}
