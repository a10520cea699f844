// SPDX-License-Identifier: MIT

package unbounded

// noCapacity is the bound reported by a Solver that holds no result.
const noCapacity = -1

// Solver keeps one live Result and answers queries against it. Each
// successful Solve replaces the previous result entirely.
//
// A Solver is not safe for concurrent use: Solve must not overlap with
// itself or with queries on the same instance. Use one Solver per
// goroutine, or share the immutable *Result returned by Result().
type Solver struct {
	opts Options
	res  *Result
}

// NewSolver returns an empty Solver. A nil opts means DefaultOptions().
func NewSolver(opts *Options) *Solver {
	s := &Solver{opts: DefaultOptions()}
	if opts != nil {
		s.opts = *opts
	}

	return s
}

// Solve recomputes both tables for capacities 0..capacity over the first
// itemCount item types. On error the previous result is kept.
func (s *Solver) Solve(weights, values []int, itemCount, capacity int) error {
	res, err := Solve(weights, values, itemCount, capacity, &s.opts)
	if err != nil {
		return err
	}
	s.res = res

	return nil
}

// Result returns the live result, or nil before the first successful Solve.
func (s *Solver) Result() *Result { return s.res }

// MaximumCapacity returns capacity+1 of the live result, or -1 if unsolved.
func (s *Solver) MaximumCapacity() int {
	if s.res == nil {
		return noCapacity
	}

	return s.res.bound
}

// MaximumValue delegates to (*Result).MaximumValue.
func (s *Solver) MaximumValue(capacity int) (int, error) {
	return s.res.MaximumValue(capacity)
}

// SelectedElements delegates to (*Result).SelectedElements.
func (s *Solver) SelectedElements(capacity int) ([]int, error) {
	return s.res.SelectedElements(capacity)
}

// SelectedElementsString delegates to (*Result).SelectedElementsString.
func (s *Solver) SelectedElementsString(capacity int) (string, error) {
	return s.res.SelectedElementsString(capacity)
}
