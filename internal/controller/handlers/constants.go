package handlers

// Ключи временных данных диалога
const (
	dataKeyFlow     = "flow"
	dataKeyWizard   = "wizard"
	dataKeyFieldIdx = "field_idx"
	dataKeyUsername = "username"
	dataKeyEnquiry  = "enquiry_id"
	dataKeyTutor    = "tutor_id"
	dataKeyDemoDate = "demo_date"
	dataKeyDemoTime = "demo_time"
)

// Имена флоу мастеров
const (
	flowBooking         = "booking"
	flowStudentRegister = "student_register"
	flowTutorRegister   = "tutor_register"
	flowDemoBooking     = "demo_booking"
)
