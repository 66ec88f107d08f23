package model

import "time"

type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

// DemoRequest демо-занятие между студентом и репетитором-кандидатом.
// Две независимые трёхзначные стороны решения; финализация - производное
// свойство, а не хранимое.
type DemoRequest struct {
	ID            int64     `json:"id"`
	EnquiryID     int64     `json:"enquiry_id"`
	TutorID       int64     `json:"tutor_id"`
	TutorName     string    `json:"tutor_name"`
	DemoDate      string    `json:"demo_date"` // YYYY-MM-DD
	DemoTime      string    `json:"demo_time"` // HH:MM
	Message       string    `json:"message"`
	UserDecision  Decision  `json:"user_application_accepted"`
	TutorDecision Decision  `json:"tutor_application_accepted"`
	Created       time.Time `json:"created"`
}

// DemoBooking прямая запись на демо к репетитору (без заявки)
type DemoBooking struct {
	ID            int64     `json:"id"`
	TutorID       int64     `json:"tutor_id"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	ContactMobile string    `json:"contact_mobile"`
	DemoDate      string    `json:"demo_date"`
	DemoTime      string    `json:"demo_time"`
	Message       string    `json:"message"`
	Address       string    `json:"address"`
	Status        Decision  `json:"status"`
	Created       time.Time `json:"created"`
}
