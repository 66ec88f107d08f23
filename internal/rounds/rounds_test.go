package rounds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

func candidate(id int64, round int, created time.Time) *model.TutorCandidate {
	return &model.TutorCandidate{
		TutorID:   id,
		TutorName: "Tutor",
		Action:    model.TutorActionPending,
		Round:     round,
		Created:   created,
	}
}

func TestGroupIntoRounds_ByServerRound(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	candidates := []*model.TutorCandidate{
		candidate(3, 2, base.Add(48*time.Hour)),
		candidate(1, 1, base),
		candidate(2, 1, base.Add(time.Minute)),
	}

	grouped := GroupIntoRounds(candidates)
	require.Len(t, grouped, 2)

	assert.Equal(t, 1, grouped[0].Number)
	assert.Equal(t, 2, grouped[1].Number)
	require.Len(t, grouped[0].Tutors, 2)
	assert.Equal(t, int64(1), grouped[0].Tutors[0].TutorID)
	assert.Equal(t, int64(2), grouped[0].Tutors[1].TutorID)
	assert.Equal(t, base, grouped[0].Created, "round carries the earliest member timestamp")
}

func TestGroupIntoRounds_FallsBackToDate(t *testing.T) {
	day1 := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	candidates := []*model.TutorCandidate{
		candidate(5, 0, day2),
		candidate(4, 0, day1.Add(5*time.Hour)),
		candidate(6, 0, day1),
	}

	grouped := GroupIntoRounds(candidates)
	require.Len(t, grouped, 2)

	assert.Equal(t, 1, grouped[0].Number)
	require.Len(t, grouped[0].Tutors, 2, "same calendar date lands in one round")
	assert.Equal(t, int64(4), grouped[0].Tutors[0].TutorID)
	assert.Equal(t, int64(6), grouped[0].Tutors[1].TutorID)
	require.Len(t, grouped[1].Tutors, 1)
	assert.Equal(t, int64(5), grouped[1].Tutors[0].TutorID)
}

func TestGroupIntoRounds_Deterministic(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	build := func() []*model.TutorCandidate {
		return []*model.TutorCandidate{
			candidate(9, 0, base.Add(24*time.Hour)),
			candidate(7, 0, base),
			candidate(8, 2, base.Add(72*time.Hour)),
			candidate(6, 0, base.Add(time.Hour)),
		}
	}

	first := GroupIntoRounds(build())
	second := GroupIntoRounds(build())
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Number, second[i].Number)
		require.Equal(t, len(first[i].Tutors), len(second[i].Tutors))
		for j := range first[i].Tutors {
			assert.Equal(t, first[i].Tutors[j].TutorID, second[i].Tutors[j].TutorID)
		}
	}
}

func TestGroupIntoRounds_TiedTimestamps(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	build := func() []*model.TutorCandidate {
		return []*model.TutorCandidate{
			candidate(1, 1, base),
			candidate(2, 2, base),
			candidate(3, 3, base),
		}
	}

	first := GroupIntoRounds(build())
	require.Len(t, first, 3)
	for i, r := range first {
		assert.Equal(t, i+1, r.Number)
		assert.Equal(t, int64(i+1), r.Tutors[0].TutorID)
	}

	for i := 0; i < 200; i++ {
		again := GroupIntoRounds(build())
		require.Len(t, again, 3)
		for j := range first {
			assert.Equal(t, first[j].Number, again[j].Number, "iteration %d", i)
			assert.Equal(t, first[j].Tutors[0].TutorID, again[j].Tutors[0].TutorID, "iteration %d", i)
		}
	}
}

func TestGroupIntoRounds_Empty(t *testing.T) {
	assert.Nil(t, GroupIntoRounds(nil))
}

func TestToggleSelect(t *testing.T) {
	round := &model.Round{Tutors: []*model.TutorCandidate{
		{TutorID: 1, Action: model.TutorActionPending},
		{TutorID: 2, Action: model.TutorActionAccepted},
	}}

	ToggleSelect(round, 1)
	assert.True(t, round.Tutors[0].Selected)
	ToggleSelect(round, 1)
	assert.False(t, round.Tutors[0].Selected)

	ToggleSelect(round, 2)
	assert.False(t, round.Tutors[1].Selected, "accepted candidates are not selectable")
}

func TestToggleSelectAll_Complement(t *testing.T) {
	round := &model.Round{Tutors: []*model.TutorCandidate{
		{TutorID: 1, Action: model.TutorActionPending},
		{TutorID: 2, Action: model.TutorActionPending, Selected: true},
		{TutorID: 3, Action: model.TutorActionAccepted},
	}}

	// Не все выбраны - выбираем всех непринятых
	ToggleSelectAll(round)
	assert.True(t, round.Tutors[0].Selected)
	assert.True(t, round.Tutors[1].Selected)
	assert.False(t, round.Tutors[2].Selected)

	// Все непринятые выбраны - снимаем выбор
	ToggleSelectAll(round)
	assert.False(t, round.Tutors[0].Selected)
	assert.False(t, round.Tutors[1].Selected)
}

func TestUpdateAction_AcceptedIsFinal(t *testing.T) {
	round := &model.Round{Tutors: []*model.TutorCandidate{
		{TutorID: 1, Action: model.TutorActionPending, Selected: true},
	}}

	UpdateAction(round, 1, model.TutorActionAccepted)
	assert.Equal(t, model.TutorActionAccepted, round.Tutors[0].Action)
	assert.False(t, round.Tutors[0].Selected, "accepting clears the selection flag")

	UpdateAction(round, 1, model.TutorActionRejected)
	assert.Equal(t, model.TutorActionAccepted, round.Tutors[0].Action, "accepted action cannot change")
}

func TestUpdateAction_RejectedCanChange(t *testing.T) {
	round := &model.Round{Tutors: []*model.TutorCandidate{
		{TutorID: 1, Action: model.TutorActionRejected},
	}}

	UpdateAction(round, 1, model.TutorActionAccepted)
	assert.Equal(t, model.TutorActionAccepted, round.Tutors[0].Action)
}

func TestAdvancedAndSelected(t *testing.T) {
	round := &model.Round{Tutors: []*model.TutorCandidate{
		{TutorID: 1, Action: model.TutorActionPending, Selected: true},
		{TutorID: 2, Action: model.TutorActionPending},
	}}
	assert.False(t, Advanced(round))
	require.Len(t, Selected(round), 1)

	UpdateAction(round, 2, model.TutorActionAccepted)
	assert.True(t, Advanced(round))
}
