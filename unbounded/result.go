// SPDX-License-Identifier: MIT

package unbounded

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Result is the immutable outcome of one Solve: the Value Table and the
// Selection Table for every capacity 0..Capacity(). Query methods never
// expose internal slices; they return copies.
type Result struct {
	values     []int   // values[c]: best value with total weight ≤ c
	selections [][]int // selections[c]: 1-based item indices reaching values[c]
	weights    []int   // catalog weights that were considered
	bound      int     // capacity+1; valid query range is [0, bound)
	tie        TieBreak
}

// Capacity returns the largest capacity the result was solved for.
func (r *Result) Capacity() int { return r.bound - 1 }

// TieBreak returns the policy the result was computed with.
func (r *Result) TieBreak() TieBreak { return r.tie }

// checkBounds returns ErrOutOfBounds unless 0 ≤ capacity < bound.
func (r *Result) checkBounds(capacity int) error {
	if r == nil || capacity < 0 || capacity >= r.bound {
		return fmt.Errorf("capacity %d: %w", capacity, ErrOutOfBounds)
	}

	return nil
}

// MaximumValue returns the best total value reachable with total weight ≤ capacity.
func (r *Result) MaximumValue(capacity int) (int, error) {
	if err := r.checkBounds(capacity); err != nil {
		return 0, err
	}

	return r.values[capacity], nil
}

// MaximumValues returns a copy of the whole Value Table, indexed by capacity.
func (r *Result) MaximumValues() []int {
	if r == nil {
		return nil
	}

	return append([]int(nil), r.values...)
}

// SelectedElements returns one optimal selection for capacity as 1-based
// item indices. Repeated indices mean the item type is used several times.
// The order is reproducible but carries no meaning. The slice is a copy.
func (r *Result) SelectedElements(capacity int) ([]int, error) {
	if err := r.checkBounds(capacity); err != nil {
		return nil, err
	}

	return append([]int{}, r.selections[capacity]...), nil
}

// SelectedElementsString renders the selection for capacity as
// "[i1, i2, ..., ik]", or "[]" when nothing fits.
func (r *Result) SelectedElementsString(capacity int) (string, error) {
	if err := r.checkBounds(capacity); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, elem := range r.selections[capacity] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(elem))
	}
	sb.WriteByte(']')

	return sb.String(), nil
}

// SelectionWeight returns the total weight of the selection for capacity.
// It is always ≤ capacity.
func (r *Result) SelectionWeight(capacity int) (int, error) {
	if err := r.checkBounds(capacity); err != nil {
		return 0, err
	}

	var total int
	for _, elem := range r.selections[capacity] {
		total += r.weights[elem-1]
	}

	return total, nil
}

// Counts returns the selection for capacity as a multiset: item index → multiplicity.
func (r *Result) Counts(capacity int) (map[int]int, error) {
	if err := r.checkBounds(capacity); err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(r.selections[capacity]))
	for _, elem := range r.selections[capacity] {
		counts[elem]++
	}

	return counts, nil
}

// Kinds returns the distinct item indices used at capacity, ascending.
func (r *Result) Kinds(capacity int) ([]int, error) {
	counts, err := r.Counts(capacity)
	if err != nil {
		return nil, err
	}
	kinds := maps.Keys(counts)
	sort.Ints(kinds)

	return kinds, nil
}
