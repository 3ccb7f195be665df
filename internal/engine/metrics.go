package engine

import (
	"github.com/samber/lo"

	"github.com/liyu-tw/coursepick/pkg/model"
)

// scoreCandidate computes the derived attributes of one tuple: credit sums,
// aggregate preference weight and slot collisions. conflictCount is the number
// of distinct colliding (day, period) cells, not the number of overlapping
// offering pairs.
func scoreCandidate(tuple []model.Offering) model.ScheduleCandidate {
	conflicts := detectConflicts(tuple)
	return model.ScheduleCandidate{
		Offerings: tuple,
		TotalCredits: lo.SumBy(tuple, func(offering model.Offering) int {
			return offering.Credits
		}),
		RequiredCredits: lo.SumBy(tuple, func(offering model.Offering) int {
			if offering.Category != model.Required {
				return 0
			}
			return offering.Credits
		}),
		ElectiveCredits: lo.SumBy(tuple, func(offering model.Offering) int {
			if offering.Category != model.Elective {
				return 0
			}
			return offering.Credits
		}),
		TotalPriority: lo.SumBy(tuple, func(offering model.Offering) int {
			return offering.Priority
		}),
		Conflicts:     conflicts,
		ConflictCount: len(conflicts),
	}
}
