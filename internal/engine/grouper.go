package engine

import (
	"slices"

	"github.com/samber/lo"

	"github.com/liyu-tw/coursepick/pkg/model"
)

// buildGroups filters out excluded offerings, partitions the remainder into one
// group per distinct course name (in first-appearance order) and verifies that
// every mandatory course name is still represented. A mandatory name whose every
// offering is excluded makes the whole run infeasible.
//
// Within a group, offerings are ordered mandatory-first then by descending
// priority. Group ordering only affects enumeration order: every group always
// contributes exactly one offering to every candidate.
func buildGroups(offerings []model.Offering) ([]model.OfferingGroup, error) {
	available := lo.Filter(offerings, func(offering model.Offering, _ int) bool {
		return !offering.Excluded
	})

	mandatoryNames := lo.Uniq(lo.FilterMap(offerings, func(offering model.Offering, _ int) (string, bool) {
		return offering.Name, offering.Mandatory
	}))
	for _, name := range mandatoryNames {
		satisfiable := lo.SomeBy(available, func(offering model.Offering) bool {
			return offering.Name == name
		})
		if !satisfiable {
			return nil, &MandatoryUnsatisfiableError{Course: name}
		}
	}

	names := lo.Uniq(lo.Map(available, func(offering model.Offering, _ int) string {
		return offering.Name
	}))

	groups := make([]model.OfferingGroup, 0, len(names))
	for _, name := range names {
		members := lo.Filter(available, func(offering model.Offering, _ int) bool {
			return offering.Name == name
		})
		slices.SortStableFunc(members, compareWithinGroup)
		groups = append(groups, model.OfferingGroup{Name: name, Offerings: members})
	}
	return groups, nil
}

func compareWithinGroup(a, b model.Offering) int {
	if a.Mandatory != b.Mandatory {
		if a.Mandatory {
			return -1
		}
		return 1
	}
	return b.Priority - a.Priority
}
