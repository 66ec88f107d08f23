package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

func request(user, tutor model.Decision) *model.DemoRequest {
	return &model.DemoRequest{
		ID:            1,
		EnquiryID:     10,
		TutorID:       100,
		DemoDate:      "2026-09-01",
		DemoTime:      "10:00",
		UserDecision:  user,
		TutorDecision: tutor,
	}
}

func TestFinalized(t *testing.T) {
	assert.True(t, Finalized(request(model.DecisionAccepted, model.DecisionAccepted)))
	assert.False(t, Finalized(request(model.DecisionAccepted, model.DecisionPending)))
	assert.False(t, Finalized(request(model.DecisionPending, model.DecisionAccepted)))
	assert.False(t, Finalized(request(model.DecisionRejected, model.DecisionAccepted)))
}

func TestCompleted_Boundary(t *testing.T) {
	d := request(model.DecisionPending, model.DecisionPending)

	before := time.Date(2026, 9, 1, 9, 59, 0, 0, time.UTC)
	exact := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	after := time.Date(2026, 9, 1, 10, 1, 0, 0, time.UTC)

	assert.False(t, Completed(d, before))
	assert.True(t, Completed(d, exact), "scheduled instant counts as completed")
	assert.True(t, Completed(d, after))
}

func TestCompleted_UnparseableSchedule(t *testing.T) {
	d := request(model.DecisionPending, model.DecisionPending)
	d.DemoDate = "tomorrow"

	assert.False(t, Completed(d, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCanRequest(t *testing.T) {
	existing := []*model.DemoRequest{request(model.DecisionPending, model.DecisionPending)}

	assert.False(t, CanRequest(existing, 100), "one demo per enquiry-tutor pair")
	assert.True(t, CanRequest(existing, 200))
	assert.True(t, CanRequest(nil, 100))
}

func TestCanDecide(t *testing.T) {
	past := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("not yet completed", func(t *testing.T) {
		assert.False(t, CanDecide(request(model.DecisionPending, model.DecisionPending), future))
	})

	t.Run("finalized", func(t *testing.T) {
		assert.False(t, CanDecide(request(model.DecisionAccepted, model.DecisionAccepted), past))
	})

	t.Run("own decision already made", func(t *testing.T) {
		assert.False(t, CanDecide(request(model.DecisionAccepted, model.DecisionPending), past))
		assert.False(t, CanDecide(request(model.DecisionRejected, model.DecisionPending), past))
	})

	t.Run("awaiting decision", func(t *testing.T) {
		assert.True(t, CanDecide(request(model.DecisionPending, model.DecisionPending), past))
		assert.True(t, CanDecide(request(model.DecisionPending, model.DecisionAccepted), past))
	})
}
