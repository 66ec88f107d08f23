package rounds

import (
	"sort"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

// GroupIntoRounds группирует кандидатов в раунды. Раунд берётся из
// номера, присланного сервером; если номера нет - по календарной дате
// создания. Номера раундов переназначаются последовательно с единицы
// в хронологическом порядке, поэтому результат детерминирован для
// одного и того же входа.
func GroupIntoRounds(candidates []*model.TutorCandidate) []*model.Round {
	if len(candidates) == 0 {
		return nil
	}

	type key struct {
		round int
		date  string
	}
	groups := make(map[key][]*model.TutorCandidate)
	for _, c := range candidates {
		k := key{round: c.Round}
		if c.Round == 0 {
			k.date = c.Created.Format("2006-01-02")
		}
		groups[k] = append(groups[k], c)
	}

	type entry struct {
		k     key
		round *model.Round
	}
	entries := make([]entry, 0, len(groups))
	for k, members := range groups {
		earliest := members[0].Created
		for _, c := range members[1:] {
			if c.Created.Before(earliest) {
				earliest = c.Created
			}
		}
		entries = append(entries, entry{k, &model.Round{Created: earliest, Tutors: members}})
	}

	// Хронологический порядок; при равном времени создания порядок
	// задаёт серверный номер и дата, чтобы перенумерация не зависела
	// от порядка обхода map. Внутри раунда - по id репетитора.
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.round.Created.Equal(b.round.Created) {
			return a.round.Created.Before(b.round.Created)
		}
		if a.k.round != b.k.round {
			return a.k.round < b.k.round
		}
		return a.k.date < b.k.date
	})

	result := make([]*model.Round, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.round)
	}
	for i, r := range result {
		r.Number = i + 1
		sort.Slice(r.Tutors, func(a, b int) bool {
			return r.Tutors[a].TutorID < r.Tutors[b].TutorID
		})
	}
	return result
}

// ToggleSelect переключает локальный флаг выбора кандидата.
// Принятые кандидаты финальны и не выбираются.
func ToggleSelect(round *model.Round, tutorID int64) {
	for _, c := range round.Tutors {
		if c.TutorID != tutorID {
			continue
		}
		if c.Action == model.TutorActionAccepted {
			return
		}
		c.Selected = !c.Selected
	}
}

// ToggleSelectAll один переключатель "выбрать всё / снять всё":
// если все непринятые уже выбраны - снимает выбор, иначе выбирает всех
func ToggleSelectAll(round *model.Round) {
	selectAll := !allSelected(round)
	for _, c := range round.Tutors {
		if c.Action == model.TutorActionAccepted {
			continue
		}
		c.Selected = selectAll
	}
}

func allSelected(round *model.Round) bool {
	any := false
	for _, c := range round.Tutors {
		if c.Action == model.TutorActionAccepted {
			continue
		}
		any = true
		if !c.Selected {
			return false
		}
	}
	return any
}

// UpdateAction выставляет действие кандидата. Принятый кандидат
// больше не меняется в рамках раунда; при принятии флаг выбора
// сбрасывается - принятые не участвуют в массовых действиях.
func UpdateAction(round *model.Round, tutorID int64, action model.TutorAction) {
	for _, c := range round.Tutors {
		if c.TutorID != tutorID {
			continue
		}
		if c.Action == model.TutorActionAccepted {
			return
		}
		c.Action = action
		if action == model.TutorActionAccepted {
			c.Selected = false
		}
	}
}

// Advanced подсказка для отображения: раунд считается запустившим
// следующий, если хотя бы один кандидат принят. Фактическое создание
// раундов решает сервер.
func Advanced(round *model.Round) bool {
	for _, c := range round.Tutors {
		if c.Action == model.TutorActionAccepted {
			return true
		}
	}
	return false
}

// Selected выбранные сейчас кандидаты раунда
func Selected(round *model.Round) []*model.TutorCandidate {
	var picked []*model.TutorCandidate
	for _, c := range round.Tutors {
		if c.Selected {
			picked = append(picked, c)
		}
	}
	return picked
}
