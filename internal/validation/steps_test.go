package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingPersonalStep(t *testing.T) {
	v := NewValues()
	errs := BookingPersonalStep(v)
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "mobile_number")
	assert.Contains(t, errs, "home_address")

	v.Fields["username"] = "nikhh"
	v.Fields["email"] = "a@b.com"
	v.Fields["mobile_number"] = "9876543210"
	v.Fields["home_address"] = "12 MG Road, Mumbai"
	assert.Empty(t, BookingPersonalStep(v))
}

func TestBookingRequirementsStep(t *testing.T) {
	v := NewValues()
	errs := BookingRequirementsStep(v)
	assert.Contains(t, errs, "board")
	assert.Contains(t, errs, "subjects")

	v.Lists["board"] = []string{"CBSE"}
	v.Lists["classes"] = []string{"10"}
	v.Lists["subjects"] = []string{"maths", "physics"}
	v.Fields["teaching_language"] = "English"
	v.Fields["teaching_section"] = "evening"
	assert.Empty(t, BookingRequirementsStep(v))
}

func TestBookingScheduleStep(t *testing.T) {
	v := NewValues()
	v.Fields["teaching_starttime"] = "18:00"
	v.Fields["teaching_endtime"] = "16:00"
	v.Fields["minimum_price"] = "500"
	v.Fields["maximum_price"] = "1000"

	errs := BookingScheduleStep(v)
	assert.Contains(t, errs, "teaching_endtime")
	assert.NotContains(t, errs, "teaching_starttime")

	v.Fields["teaching_endtime"] = "20:00"
	assert.Empty(t, BookingScheduleStep(v))
}

func TestBookingScheduleStep_ErrorFieldAttribution(t *testing.T) {
	v := NewValues()
	v.Fields["teaching_starttime"] = "25:00"
	v.Fields["teaching_endtime"] = "16:00"
	v.Fields["minimum_price"] = "500"
	v.Fields["maximum_price"] = "bad"

	errs := BookingScheduleStep(v)
	assert.Contains(t, errs, "teaching_starttime")
	assert.NotContains(t, errs, "teaching_endtime")
	assert.Contains(t, errs, "maximum_price")
	assert.NotContains(t, errs, "minimum_price")

	// min > max, оба по отдельности валидны
	v.Fields["teaching_starttime"] = "10:00"
	v.Fields["teaching_endtime"] = "12:00"
	v.Fields["minimum_price"] = "2000"
	v.Fields["maximum_price"] = "1000"

	errs = BookingScheduleStep(v)
	assert.NotContains(t, errs, "minimum_price")
	assert.Equal(t, "Minimum price cannot exceed maximum price", errs["maximum_price"])
}

func TestRegisterProfileStep_UsesFixedNow(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	validate := RegisterProfileStep(now)

	v := NewValues()
	v.Fields["mobile_number"] = "9876543210"
	v.Fields["date_of_birth"] = "2021-09-01" // ровно 5 лет
	v.Fields["student_class"] = "1"
	assert.Empty(t, validate(v))

	v.Fields["date_of_birth"] = "2022-01-01"
	errs := validate(v)
	assert.Contains(t, errs, "date_of_birth")
}

func TestTutorAvailabilityStep(t *testing.T) {
	validate := TutorAvailabilityStep(func(v Values) []Slot {
		return []Slot{
			{Section: "morning", Start: "09:00", End: "11:00"},
			{Section: "morning", Start: "10:00", End: "12:00"},
		}
	})

	errs := validate(NewValues())
	assert.Contains(t, errs, "availability")
}
