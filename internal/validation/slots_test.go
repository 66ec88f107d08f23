package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Slot
		want bool
	}{
		{
			"disjoint",
			Slot{"morning", "09:00", "10:00"},
			Slot{"morning", "11:00", "12:00"},
			false,
		},
		{
			"touching endpoints do not overlap",
			Slot{"morning", "09:00", "10:00"},
			Slot{"morning", "10:00", "11:00"},
			false,
		},
		{
			"partial overlap",
			Slot{"morning", "09:00", "10:30"},
			Slot{"morning", "10:00", "11:00"},
			true,
		},
		{
			"containment",
			Slot{"morning", "09:00", "12:00"},
			Slot{"morning", "10:00", "11:00"},
			true,
		},
		{
			"identical",
			Slot{"morning", "09:00", "10:00"},
			Slot{"morning", "09:00", "10:00"},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, Overlaps(tt.a, tt.b), Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestOverlaps_SelfOverlap(t *testing.T) {
	s := Slot{"evening", "18:00", "20:00"}
	assert.True(t, Overlaps(s, s), "non-empty slot overlaps itself")
}

func TestValidateSlots(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "At least one availability slot is required", ValidateSlots(nil))
	})

	t.Run("invalid range inside", func(t *testing.T) {
		msg := ValidateSlots([]Slot{{"morning", "11:00", "09:00"}})
		assert.NotEmpty(t, msg)
	})

	t.Run("overlap within section", func(t *testing.T) {
		msg := ValidateSlots([]Slot{
			{"morning", "09:00", "11:00"},
			{"morning", "10:00", "12:00"},
		})
		assert.Equal(t, "Availability slots in the same section must not overlap", msg)
	})

	t.Run("same times in different sections are fine", func(t *testing.T) {
		msg := ValidateSlots([]Slot{
			{"morning", "09:00", "11:00"},
			{"evening", "09:00", "11:00"},
		})
		assert.Empty(t, msg)
	})

	t.Run("valid set", func(t *testing.T) {
		msg := ValidateSlots([]Slot{
			{"morning", "09:00", "10:00"},
			{"morning", "10:00", "11:00"},
			{"evening", "18:00", "20:00"},
		})
		assert.Empty(t, msg)
	})
}
