package engine

import (
	"slices"

	"github.com/liyu-tw/coursepick/pkg/model"
)

// detectConflicts maps every (day, period) cell to the offerings of the tuple
// occupying it and reports each cell claimed by two or more offerings. The
// result is ordered by day then period, and the offerings inside one conflict
// keep their tuple order. Duplicate slots within a single offering count once.
//
// Pure function of the tuple: no side effects, no dependence on other
// candidates.
func detectConflicts(tuple []model.Offering) []model.Conflict {
	occupancy := make(map[model.SlotKey][]model.Offering)
	for _, offering := range tuple {
		for _, slot := range model.NormalizeTimeSlots(offering.TimeSlots) {
			key := slot.Key()
			occupancy[key] = append(occupancy[key], offering)
		}
	}

	collided := make([]model.SlotKey, 0, len(occupancy))
	for key, occupants := range occupancy {
		if len(occupants) > 1 {
			collided = append(collided, key)
		}
	}
	slices.SortFunc(collided, func(a, b model.SlotKey) int {
		if dayComparison := a.Day.Order() - b.Day.Order(); dayComparison != 0 {
			return dayComparison
		}
		return a.Period - b.Period
	})

	conflicts := make([]model.Conflict, 0, len(collided))
	for _, key := range collided {
		conflicts = append(conflicts, model.Conflict{
			Day:       key.Day,
			Period:    key.Period,
			Offerings: occupancy[key],
		})
	}
	return conflicts
}
