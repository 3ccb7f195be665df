package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/liyu-tw/coursepick/pkg/model"
)

// Policy selects one of the two total orders over candidates.
type Policy string

const (
	// PolicyConflictFirst ranks by ascending conflict count, then descending
	// total priority.
	PolicyConflictFirst Policy = "conflict"
	// PolicyPriorityFirst ranks by descending total priority, then ascending
	// conflict count.
	PolicyPriorityFirst Policy = "priority"
)

// ParsePolicy accepts "conflict" or "priority", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PolicyConflictFirst):
		return PolicyConflictFirst, nil
	case string(PolicyPriorityFirst):
		return PolicyPriorityFirst, nil
	}
	return "", fmt.Errorf("unknown ranking policy %q", s)
}

// Valid reports whether the policy is one of the two known orders.
func (p Policy) Valid() bool {
	return p == PolicyConflictFirst || p == PolicyPriorityFirst
}

// rank orders candidates under the policy and splits them into the clean set
// (no collisions) and the conflicting set. Both keys are followed by descending
// total credits; remaining ties keep enumeration order (stable sort), so the
// full ordering is deterministic for a given input.
func rank(candidates []model.ScheduleCandidate, policy Policy) (clean, conflicting []model.ScheduleCandidate) {
	slices.SortStableFunc(candidates, comparator(policy))
	return lo.FilterReject(candidates, func(candidate model.ScheduleCandidate, _ int) bool {
		return candidate.Clean()
	})
}

func comparator(policy Policy) func(a, b model.ScheduleCandidate) int {
	return func(a, b model.ScheduleCandidate) int {
		byConflicts := a.ConflictCount - b.ConflictCount
		byPriority := b.TotalPriority - a.TotalPriority

		first, second := byConflicts, byPriority
		if policy == PolicyPriorityFirst {
			first, second = byPriority, byConflicts
		}
		if first != 0 {
			return first
		}
		if second != 0 {
			return second
		}
		return b.TotalCredits - a.TotalCredits
	}
}
