// SPDX-License-Identifier: MIT

package unbounded

// Item is one item type of the catalog.
type Item struct {
	Weight int
	Value  int
}

// TieBreak decides which item type wins when two candidates reach the same
// value at the same capacity.
//
//   - TieLast  — a candidate equal to the current best overwrites it, so the
//     last item type in catalog order that reaches the optimum is recorded.
//     This is the historical behavior and the default.
//
//   - TieFirst — only a strictly better candidate overwrites, so the first
//     item type reaching the optimum is kept.
//
// Both policies produce the same Value Table; only the Selection Table differs.
type TieBreak int

const (
	// TieLast records the last item type that matches or improves the optimum.
	TieLast TieBreak = iota

	// TieFirst records the first item type that reaches the optimum.
	TieFirst
)

// String returns the policy name.
func (t TieBreak) String() string {
	switch t {
	case TieLast:
		return "TieLast"
	case TieFirst:
		return "TieFirst"
	default:
		return "TieBreak(unknown)"
	}
}

// Options configures Solve.
//
// Example:
//
//	opts := unbounded.DefaultOptions()
//	opts.TieBreak = unbounded.TieFirst
//	res, err := unbounded.Solve(w, v, len(w), 50, &opts)
type Options struct {
	TieBreak TieBreak
}

// DefaultOptions returns the options used when Solve receives nil.
func DefaultOptions() Options {
	return Options{TieBreak: TieLast}
}
