// SPDX-License-Identifier: MIT

package unbounded

import "errors"

// Every message is prefixed with "unbounded: ". Validation failures wrap
// ErrInvalidInput with the offending parameter via %w, so callers match
// them with errors.Is and still see the context in err.Error().
var (
	// ErrOutOfBounds is returned by the query methods when the capacity
	// index is negative or beyond the last solved capacity. A Solver that
	// was never solved reports it for every index.
	ErrOutOfBounds = errors.New("unbounded: capacity out of bounds")

	// ErrInvalidInput signals a precondition violation in Solve: negative
	// capacity, item count outside the catalog, non-positive weights,
	// negative values or an unknown tie-break policy.
	ErrInvalidInput = errors.New("unbounded: invalid input")
)
