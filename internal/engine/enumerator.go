package engine

import (
	"context"
	"math"

	"github.com/liyu-tw/coursepick/pkg/model"
)

// productSize returns the exact number of combinations the groups admit,
// clamped to MaxUint64 on overflow. A zero-group or empty-group input admits
// no combination.
func productSize(groups []model.OfferingGroup) uint64 {
	if len(groups) == 0 {
		return 0
	}
	total := uint64(1)
	for _, group := range groups {
		n := uint64(len(group.Offerings))
		if n == 0 {
			return 0
		}
		if total > math.MaxUint64/n {
			return math.MaxUint64
		}
		total *= n
	}
	return total
}

// enumerate walks the Cartesian product of the groups, exactly one offering
// per group, in deterministic order: the first group varies slowest, the last
// group fastest. It stops once limit tuples have been collected; the limit is a
// single global counter, so the total emitted count never exceeds it regardless
// of how the tuples are scored afterwards. Cancelling the context abandons the
// walk and returns the context's error.
func enumerate(ctx context.Context, groups []model.OfferingGroup, limit int) ([][]model.Offering, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	capacity := limit
	if total := productSize(groups); total < uint64(capacity) {
		capacity = int(total)
	}
	tuples := make([][]model.Offering, 0, capacity)
	current := make([]model.Offering, len(groups))

	var walk func(depth int) bool
	walk = func(depth int) bool {
		if ctx.Err() != nil {
			return false
		}
		if depth == len(groups) {
			tuple := make([]model.Offering, len(current))
			copy(tuple, current)
			tuples = append(tuples, tuple)
			return len(tuples) < limit
		}
		for _, offering := range groups[depth].Offerings {
			current[depth] = offering
			if !walk(depth + 1) {
				return false
			}
		}
		return true
	}
	walk(0)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return tuples, nil
}
