package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liyu-tw/coursepick/pkg/model"
)

func candidateWith(conflicts, priority, credits int) model.ScheduleCandidate {
	return model.ScheduleCandidate{
		ConflictCount: conflicts,
		TotalPriority: priority,
		TotalCredits:  credits,
	}
}

func TestParsePolicy(t *testing.T) {
	policy, err := ParsePolicy("conflict")
	assert.Nil(t, err)
	assert.Equal(t, PolicyConflictFirst, policy)

	policy, err = ParsePolicy(" PRIORITY ")
	assert.Nil(t, err)
	assert.Equal(t, PolicyPriorityFirst, policy)

	_, err = ParsePolicy("credits")
	assert.NotNil(t, err)
}

func TestRank(t *testing.T) {
	t.Run("Conflict-first policy", func(t *testing.T) {
		// Arrange
		candidates := []model.ScheduleCandidate{
			candidateWith(1, 9, 10),
			candidateWith(0, 4, 10),
			candidateWith(0, 8, 10),
			candidateWith(2, 9, 10),
		}

		// Act
		clean, conflicting := rank(candidates, PolicyConflictFirst)

		// Assert
		assert.Len(t, clean, 2)
		assert.Equal(t, 8, clean[0].TotalPriority)
		assert.Equal(t, 4, clean[1].TotalPriority)
		assert.Len(t, conflicting, 2)
		assert.Equal(t, 1, conflicting[0].ConflictCount)
		assert.Equal(t, 2, conflicting[1].ConflictCount)
	})

	t.Run("Priority-first policy", func(t *testing.T) {
		// Arrange
		candidates := []model.ScheduleCandidate{
			candidateWith(1, 9, 10),
			candidateWith(0, 8, 10),
			candidateWith(0, 9, 10),
		}

		// Act
		clean, conflicting := rank(candidates, PolicyPriorityFirst)

		// Assert: within the combined order, priority 9 + 0 conflicts leads
		assert.Len(t, clean, 2)
		assert.Equal(t, 9, clean[0].TotalPriority)
		assert.Equal(t, 8, clean[1].TotalPriority)
		assert.Len(t, conflicting, 1)
	})

	t.Run("Ties beyond the two keys break by credits then keep input order", func(t *testing.T) {
		// Arrange
		candidates := []model.ScheduleCandidate{
			candidateWith(0, 5, 10),
			candidateWith(0, 5, 12),
			candidateWith(0, 5, 10),
		}

		// Act
		clean, _ := rank(candidates, PolicyConflictFirst)

		// Assert
		assert.Equal(t, 12, clean[0].TotalCredits)
		assert.Equal(t, 10, clean[1].TotalCredits)
		assert.Equal(t, 10, clean[2].TotalCredits)
	})
}
