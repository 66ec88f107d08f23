package model

import "time"

type EnquiryStatus string

const (
	StatusApplicationReceived EnquiryStatus = "application_received" // Заявка получена
	StatusTutorsSent          EnquiryStatus = "tutors_sent"          // Репетиторы отправлены
	StatusDemoRequested       EnquiryStatus = "demo_requested"       // Запрошено демо-занятие
	StatusDemoCompleted       EnquiryStatus = "demo_completed"       // Демо-занятие прошло
	StatusTutorFinalized      EnquiryStatus = "tutor_finalized"      // Репетитор выбран
	StatusCancelled           EnquiryStatus = "cancelled"            // Отменена
)

// StatusFlow порядок статусов заявки. Движение только вперёд,
// cancelled достижим из любого нетерминального статуса.
var StatusFlow = []EnquiryStatus{
	StatusApplicationReceived,
	StatusTutorsSent,
	StatusDemoRequested,
	StatusDemoCompleted,
	StatusTutorFinalized,
	StatusCancelled,
}

type Enquiry struct {
	ID               int64         `json:"id"`
	UserID           int64         `json:"user"`
	Username         string        `json:"user_username"`
	Email            string        `json:"email"`
	MobileNumber     string        `json:"mobile_number"`
	HomeAddress      string        `json:"home_address"`
	Boards           []string      `json:"board"`
	Classes          []string      `json:"classes"`
	Subjects         []string      `json:"subjects"`
	TeachingLanguage string        `json:"teaching_language"`
	TeachingSection  string        `json:"teaching_section"`
	StartTime        string        `json:"teaching_starttime"` // HH:MM
	EndTime          string        `json:"teaching_endtime"`   // HH:MM
	StudentClass     string        `json:"student_class"`
	MinimumPrice     int           `json:"minimum_price"`
	MaximumPrice     int           `json:"maximum_price"`
	Message          string        `json:"message"`
	Status           EnquiryStatus `json:"status"`
	IsTutorAllocated bool          `json:"is_tutor_allocated"`
	TutorAllocated   *int64        `json:"tutor_allocated"` // указатель - может быть nil
	Created          time.Time     `json:"created"`
}

// FlowItem одна запись истории статусов заявки (GET /enquiry-flow)
type FlowItem struct {
	ID          int64         `json:"id"`
	EnquiryID   int64         `json:"enquiry"`
	Status      EnquiryStatus `json:"status"`
	StatusLabel string        `json:"status_label"`
	Created     time.Time     `json:"created"`
}
