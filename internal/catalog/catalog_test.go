package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liyu-tw/coursepick/pkg/model"
)

func validOffering() model.Offering {
	return model.Offering{
		Name:      "Calculus",
		Category:  model.Required,
		SectionID: "A",
		Credits:   4,
		Priority:  5,
		TimeSlots: []model.TimeSlot{
			{Day: model.Monday, Period: 1},
			{Day: model.Wednesday, Period: 1},
		},
	}
}

func TestAddOffering(t *testing.T) {
	t.Run("Stores a valid offering", func(t *testing.T) {
		// Arrange
		c := New(nil, nil)

		// Act
		added, err := c.AddOffering(validOffering())

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, "Calculus", added.Name)
		assert.Len(t, c.ListOfferings(), 1)
	})

	t.Run("Defaults a missing priority", func(t *testing.T) {
		// Arrange
		c := New(nil, nil)
		offering := validOffering()
		offering.Priority = 0

		// Act
		added, err := c.AddOffering(offering)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, model.DefaultPriority, added.Priority)
	})

	t.Run("Deduplicates time slots on the way in", func(t *testing.T) {
		// Arrange
		c := New(nil, nil)
		offering := validOffering()
		offering.TimeSlots = append(offering.TimeSlots, model.TimeSlot{Day: model.Monday, Period: 1})

		// Act
		added, err := c.AddOffering(offering)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, added.TimeSlots, 2)
	})

	t.Run("Rejects out-of-range fields instead of coercing them", func(t *testing.T) {
		c := New(nil, nil)

		outOfRange := validOffering()
		outOfRange.Priority = 6
		_, err := c.AddOffering(outOfRange)
		assert.NotNil(t, err)

		negative := validOffering()
		negative.Credits = -1
		_, err = c.AddOffering(negative)
		assert.NotNil(t, err)

		nameless := validOffering()
		nameless.Name = ""
		_, err = c.AddOffering(nameless)
		assert.NotNil(t, err)

		badCategory := validOffering()
		badCategory.Category = "Optional"
		_, err = c.AddOffering(badCategory)
		assert.NotNil(t, err)

		badSlot := validOffering()
		badSlot.TimeSlots = []model.TimeSlot{{Day: "Fun", Period: 1}}
		_, err = c.AddOffering(badSlot)
		assert.NotNil(t, err)
	})

	t.Run("Rejects a duplicate (name, section) pair", func(t *testing.T) {
		// Arrange
		c := New(nil, nil)
		_, err := c.AddOffering(validOffering())
		assert.Nil(t, err)

		// Act
		_, err = c.AddOffering(validOffering())

		// Assert
		assert.ErrorIs(t, err, ErrDuplicateOffering)
	})
}

func TestUpdateOffering(t *testing.T) {
	t.Run("Replaces an existing offering", func(t *testing.T) {
		// Arrange
		c := New(nil, nil)
		_, err := c.AddOffering(validOffering())
		assert.Nil(t, err)

		updated := validOffering()
		updated.Credits = 3
		updated.Teacher = "Dr. Chen"

		// Act
		result, err := c.UpdateOffering("Calculus", "A", updated)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, 3, result.Credits)
		stored, ok := c.Get("Calculus", "A")
		assert.True(t, ok)
		assert.Equal(t, "Dr. Chen", stored.Teacher)
	})

	t.Run("Unknown offering", func(t *testing.T) {
		c := New(nil, nil)
		_, err := c.UpdateOffering("Calculus", "A", validOffering())
		assert.ErrorIs(t, err, ErrOfferingNotFound)
	})

	t.Run("Cannot collide with another stored offering", func(t *testing.T) {
		// Arrange
		c := New(nil, nil)
		first := validOffering()
		second := validOffering()
		second.SectionID = "B"
		_, err := c.AddOffering(first)
		assert.Nil(t, err)
		_, err = c.AddOffering(second)
		assert.Nil(t, err)

		// Act: rename section B to section A
		_, err = c.UpdateOffering("Calculus", "B", first)

		// Assert
		assert.ErrorIs(t, err, ErrDuplicateOffering)
	})
}

func TestRemoveOffering(t *testing.T) {
	// Arrange
	c := New(nil, nil)
	_, err := c.AddOffering(validOffering())
	assert.Nil(t, err)

	// Act & Assert
	assert.Nil(t, c.RemoveOffering("Calculus", "A"))
	assert.Empty(t, c.ListOfferings())
	assert.ErrorIs(t, c.RemoveOffering("Calculus", "A"), ErrOfferingNotFound)
}

func TestListOfferingsSnapshot(t *testing.T) {
	// Arrange
	c := New(nil, nil)
	_, err := c.AddOffering(validOffering())
	assert.Nil(t, err)

	// Act: mutating the snapshot must not touch the stored offering
	snapshot := c.ListOfferings()
	snapshot[0].Name = "Altered"

	// Assert
	_, ok := c.Get("Calculus", "A")
	assert.True(t, ok)
}
