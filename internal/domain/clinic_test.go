package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClinicHours_Validate(t *testing.T) {
	t.Run("Default Hours Are Valid", func(t *testing.T) {
		assert.NoError(t, DefaultClinicHours().Validate())
	})

	t.Run("Open After Close", func(t *testing.T) {
		hours := ClinicHours{OpenHour: 18, CloseHour: 9, SlotDurationMinutes: 30}
		assert.Error(t, hours.Validate())
	})

	t.Run("Open Equals Close", func(t *testing.T) {
		hours := ClinicHours{OpenHour: 9, CloseHour: 9, SlotDurationMinutes: 30}
		assert.Error(t, hours.Validate())
	})

	t.Run("Hour Out Of Range", func(t *testing.T) {
		hours := ClinicHours{OpenHour: -1, CloseHour: 18, SlotDurationMinutes: 30}
		assert.Error(t, hours.Validate())

		hours = ClinicHours{OpenHour: 9, CloseHour: 25, SlotDurationMinutes: 30}
		assert.Error(t, hours.Validate())
	})

	t.Run("Slot Duration Out Of Range", func(t *testing.T) {
		hours := ClinicHours{OpenHour: 9, CloseHour: 18, SlotDurationMinutes: 1}
		assert.Error(t, hours.Validate())

		hours = ClinicHours{OpenHour: 9, CloseHour: 18, SlotDurationMinutes: 600}
		assert.Error(t, hours.Validate())
	})

	t.Run("Midnight Close Is Valid", func(t *testing.T) {
		hours := ClinicHours{OpenHour: 9, CloseHour: 24, SlotDurationMinutes: 30}
		assert.NoError(t, hours.Validate())
	})
}

func TestClinicHours_Strings(t *testing.T) {
	hours := DefaultClinicHours()

	assert.Equal(t, "9:00", hours.OpenString())
	assert.Equal(t, "18:00", hours.CloseString())
}

func TestSlot_Overlaps(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
	}
	slot := Slot{Start: at(10, 0), End: at(10, 30)}

	t.Run("Full Overlap", func(t *testing.T) {
		assert.True(t, slot.Overlaps(at(9, 0), at(12, 0)))
	})

	t.Run("Partial Overlap", func(t *testing.T) {
		assert.True(t, slot.Overlaps(at(10, 15), at(10, 45)))
		assert.True(t, slot.Overlaps(at(9, 45), at(10, 15)))
	})

	t.Run("Adjacent Intervals Do Not Overlap", func(t *testing.T) {
		assert.False(t, slot.Overlaps(at(9, 30), at(10, 0)))
		assert.False(t, slot.Overlaps(at(10, 30), at(11, 0)))
	})

	t.Run("Disjoint Intervals", func(t *testing.T) {
		assert.False(t, slot.Overlaps(at(8, 0), at(9, 0)))
		assert.False(t, slot.Overlaps(at(12, 0), at(13, 0)))
	})
}
