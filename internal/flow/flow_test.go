package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

func TestIndex_OrderedProgression(t *testing.T) {
	prev := -1
	for _, status := range model.StatusFlow {
		idx := Index(status)
		assert.Greater(t, idx, prev, "status order must be strictly increasing: %s", status)
		prev = idx
	}
	assert.Equal(t, -1, Index(model.EnquiryStatus("bogus")))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(model.StatusTutorFinalized))
	assert.True(t, IsTerminal(model.StatusCancelled))
	assert.False(t, IsTerminal(model.StatusApplicationReceived))
	assert.False(t, IsTerminal(model.StatusDemoCompleted))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from model.EnquiryStatus
		to   model.EnquiryStatus
		want bool
	}{
		{"forward by one", model.StatusApplicationReceived, model.StatusTutorsSent, true},
		{"forward with skip", model.StatusTutorsSent, model.StatusTutorFinalized, true},
		{"backward", model.StatusDemoRequested, model.StatusTutorsSent, false},
		{"self", model.StatusTutorsSent, model.StatusTutorsSent, false},
		{"cancel from start", model.StatusApplicationReceived, model.StatusCancelled, true},
		{"cancel from demo", model.StatusDemoCompleted, model.StatusCancelled, true},
		{"cancel after finalized", model.StatusTutorFinalized, model.StatusCancelled, false},
		{"out of cancelled", model.StatusCancelled, model.StatusTutorsSent, false},
		{"out of finalized", model.StatusTutorFinalized, model.StatusDemoRequested, false},
		{"unknown from", model.EnquiryStatus("bogus"), model.StatusTutorsSent, false},
		{"unknown to", model.StatusTutorsSent, model.EnquiryStatus("bogus"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(model.StatusApplicationReceived))
	assert.True(t, CanCancel(model.StatusDemoCompleted))
	assert.False(t, CanCancel(model.StatusTutorFinalized))
	assert.False(t, CanCancel(model.StatusCancelled))
	assert.False(t, CanCancel(model.EnquiryStatus("bogus")))
}

func TestTimeline_DemoRequested(t *testing.T) {
	steps := Timeline(model.StatusDemoRequested)
	require.Len(t, steps, 5)

	assert.Equal(t, StepCompleted, steps[0].State)
	assert.Equal(t, StepCompleted, steps[1].State)
	assert.Equal(t, StepActive, steps[2].State)
	assert.Equal(t, StepUpcoming, steps[3].State)
	assert.Equal(t, StepUpcoming, steps[4].State)
}

func TestTimeline_SingleActiveStep(t *testing.T) {
	for _, status := range model.StatusFlow {
		steps := Timeline(status)
		active := 0
		for _, s := range steps {
			if s.State == StepActive {
				active++
			}
		}
		assert.Equal(t, 1, active, "exactly one active step for %s", status)
	}
}

func TestTimeline_Cancelled(t *testing.T) {
	steps := Timeline(model.StatusCancelled)
	require.Len(t, steps, 6)

	last := steps[len(steps)-1]
	assert.Equal(t, model.StatusCancelled, last.Status)
	assert.Equal(t, StepActive, last.State)
	for _, s := range steps[:len(steps)-1] {
		assert.Equal(t, StepUpcoming, s.State, "progress steps are not claimed completed on cancel")
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Tutors Sent", Label(model.StatusTutorsSent))
	assert.Equal(t, "something_else", Label(model.EnquiryStatus("something_else")), "unknown statuses pass through")
}
