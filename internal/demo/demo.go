package demo

import (
	"time"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

// Finalized обе стороны приняли демо. Производное свойство,
// всегда вычисляется заново, в БД не хранится.
func Finalized(d *model.DemoRequest) bool {
	return d.UserDecision == model.DecisionAccepted &&
		d.TutorDecision == model.DecisionAccepted
}

// Completed демо считается прошедшим, когда now достигло
// запланированных даты и времени. Непарсящиеся дата или время
// означают "не прошло".
func Completed(d *model.DemoRequest, now time.Time) bool {
	at, err := time.ParseInLocation("2006-01-02 15:04", d.DemoDate+" "+d.DemoTime, now.Location())
	if err != nil {
		return false
	}
	return !now.Before(at)
}

// CanRequest демо можно запросить, пока для этой пары
// (заявка, репетитор) его ещё нет
func CanRequest(existing []*model.DemoRequest, tutorID int64) bool {
	for _, d := range existing {
		if d.TutorID == tutorID {
			return false
		}
	}
	return true
}

// CanDecide порядок проверок фиксирован: решение не предлагается
// до наступления времени демо, после финализации и когда своё
// решение уже принято
func CanDecide(d *model.DemoRequest, now time.Time) bool {
	if !Completed(d, now) {
		return false
	}
	if Finalized(d) {
		return false
	}
	return d.UserDecision == model.DecisionPending
}
