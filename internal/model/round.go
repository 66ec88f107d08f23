package model

import "time"

type TutorAction string

const (
	TutorActionPending  TutorAction = "pending"  // Репетитор ещё не решил
	TutorActionAccepted TutorAction = "accepted" // Принял заявку
	TutorActionRejected TutorAction = "rejected" // Отклонил заявку
)

// TutorCandidate один репетитор в раунде подбора
type TutorCandidate struct {
	TutorID   int64       `json:"tutor_id"`
	TutorName string      `json:"tutor_name"`
	Action    TutorAction `json:"action"`
	Round     int         `json:"round"` // 0 если сервер не прислал номер раунда
	Created   time.Time   `json:"created"`

	// Локальный флаг выбора для массовых действий (не из API)
	Selected bool `json:"-"`
}

// Round одна партия репетиторов, предложенных по заявке
type Round struct {
	Number  int               `json:"round"`
	Created time.Time         `json:"created"`
	Tutors  []*TutorCandidate `json:"tutors"`
}
