package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/tutorgram/enquiry_bot/internal/api"
	"github.com/tutorgram/enquiry_bot/internal/validation"
	"github.com/tutorgram/enquiry_bot/internal/wizard"
)

// FieldSpec одно поле шага мастера: ключ значения, подсказка для
// пользователя и признак спискового поля (ввод через запятую)
type FieldSpec struct {
	Key    string
	Prompt string
	List   bool
}

// FormFlow описание одного мастера: шаги для контроллера и поля,
// которые диалог запрашивает по одному сообщению
type FormFlow struct {
	Name   string
	Title  string
	Steps  []wizard.Step
	Fields [][]FieldSpec // по шагам, индексы совпадают со Steps
}

// bookingFlow 3-шаговый мастер офлайн-заявки: контакты, требования,
// расписание и бюджет
func bookingFlow() *FormFlow {
	return &FormFlow{
		Name:  flowBooking,
		Title: "Book a tutor",
		Steps: []wizard.Step{
			{Name: "Personal", Validate: validation.BookingPersonalStep},
			{Name: "Requirements", Validate: validation.BookingRequirementsStep},
			{Name: "Schedule", Validate: validation.BookingScheduleStep},
		},
		Fields: [][]FieldSpec{
			{
				{Key: "username", Prompt: "Your username:"},
				{Key: "email", Prompt: "Your email address:"},
				{Key: "mobile_number", Prompt: "Your mobile number (10 digits):"},
				{Key: "home_address", Prompt: "Your home address:"},
			},
			{
				{Key: "board", Prompt: "Boards (comma-separated, e.g. cbse, icse):", List: true},
				{Key: "classes", Prompt: "Classes (comma-separated, e.g. 8, 9):", List: true},
				{Key: "subjects", Prompt: "Subjects (comma-separated, e.g. english, biology):", List: true},
				{Key: "teaching_language", Prompt: "Teaching language:"},
				{Key: "teaching_section", Prompt: "Teaching section (morning/afternoon/evening/night):"},
			},
			{
				{Key: "teaching_starttime", Prompt: "Preferred start time (HH:MM):"},
				{Key: "teaching_endtime", Prompt: "Preferred end time (HH:MM):"},
				{Key: "minimum_price", Prompt: "Minimum price (₹):"},
				{Key: "maximum_price", Prompt: "Maximum price (₹):"},
				{Key: "message", Prompt: "Additional message (or a dash to skip):"},
			},
		},
	}
}

// studentRegisterFlow 3-шаговый мастер регистрации студента
func studentRegisterFlow(now time.Time) *FormFlow {
	return &FormFlow{
		Name:  flowStudentRegister,
		Title: "Student registration",
		Steps: []wizard.Step{
			{Name: "Account", Validate: validation.RegisterAccountStep},
			{Name: "Profile", Validate: validation.RegisterProfileStep(now)},
			{Name: "Address", Validate: validation.RegisterAddressStep},
		},
		Fields: [][]FieldSpec{
			{
				{Key: "username", Prompt: "Choose a username (3-20 characters):"},
				{Key: "email", Prompt: "Your email address:"},
				{Key: "password", Prompt: "Choose a password (at least 6 characters):"},
				{Key: "confirm_password", Prompt: "Repeat the password:"},
			},
			{
				{Key: "mobile_number", Prompt: "Your mobile number (10 digits, starts with 6-9):"},
				{Key: "date_of_birth", Prompt: "Date of birth (YYYY-MM-DD):"},
				{Key: "student_class", Prompt: "Student class (e.g. 9, ug, pg):"},
			},
			{
				{Key: "street", Prompt: "Street address:"},
				{Key: "city", Prompt: "City:"},
				{Key: "state", Prompt: "State:"},
				{Key: "pin_code", Prompt: "Pin code (6 digits):"},
				{Key: "country", Prompt: "Country:"},
			},
		},
	}
}

// tutorRegisterFlow 3-шаговый мастер регистрации репетитора
func tutorRegisterFlow() *FormFlow {
	return &FormFlow{
		Name:  flowTutorRegister,
		Title: "Tutor registration",
		Steps: []wizard.Step{
			{Name: "Account", Validate: validation.RegisterAccountStep},
			{Name: "Qualifications", Validate: validation.TutorQualificationsStep},
			{Name: "Availability", Validate: validation.TutorAvailabilityStep(parseSlotValues)},
		},
		Fields: [][]FieldSpec{
			{
				{Key: "username", Prompt: "Choose a username (3-20 characters):"},
				{Key: "email", Prompt: "Your email address:"},
				{Key: "password", Prompt: "Choose a password (at least 6 characters):"},
				{Key: "confirm_password", Prompt: "Repeat the password:"},
			},
			{
				{Key: "mobile_number", Prompt: "Your mobile number (10 digits, starts with 6-9):"},
				{Key: "subjects", Prompt: "Subjects you teach (comma-separated):", List: true},
				{Key: "experience", Prompt: "Years of experience:"},
				{Key: "price", Prompt: "Price per lesson (₹):"},
			},
			{
				{Key: "availability", Prompt: "Availability slots (comma-separated, e.g. morning 09:00-11:00, evening 17:00-19:00):", List: true},
			},
		},
	}
}

// demoBookingFlow 2-шаговый мастер прямой записи на демо, без заявки
func demoBookingFlow() *FormFlow {
	return &FormFlow{
		Name:  flowDemoBooking,
		Title: "Book a demo class",
		Steps: []wizard.Step{
			{Name: "Contact", Validate: validation.DemoContactStep},
			{Name: "Schedule", Validate: validation.DemoScheduleStep},
		},
		Fields: [][]FieldSpec{
			{
				{Key: "contact_name", Prompt: "Your name:"},
				{Key: "contact_email", Prompt: "Your email address:"},
				{Key: "contact_mobile", Prompt: "Your mobile number (10 digits):"},
			},
			{
				{Key: "tutor_id", Prompt: "Tutor id (from the tutor's page):"},
				{Key: "demo_date", Prompt: "Demo date (YYYY-MM-DD):"},
				{Key: "demo_time", Prompt: "Demo time (HH:MM, 24-hour):"},
				{Key: "address", Prompt: "Address for the demo:"},
				{Key: "message", Prompt: "Message for the tutor (or a dash to skip):"},
			},
		},
	}
}

// parseSlotValues разбирает строки вида "morning 09:00-11:00" из
// спискового поля availability в слоты доступности
func parseSlotValues(v validation.Values) []validation.Slot {
	var slots []validation.Slot
	for _, raw := range v.Lists["availability"] {
		fields := strings.Fields(raw)
		if len(fields) != 2 {
			continue
		}
		times := strings.SplitN(fields[1], "-", 2)
		if len(times) != 2 {
			continue
		}
		slots = append(slots, validation.Slot{
			Section: strings.ToLower(fields[0]),
			Start:   times[0],
			End:     times[1],
		})
	}
	return slots
}

// submitFunc отправка, привязанная к флоу и чату
func (h *Handlers) submitFunc(flowName string, chatID int64) wizard.SubmitFunc {
	switch flowName {
	case flowBooking:
		return func(ctx context.Context, v validation.Values) error {
			if v.Fields["message"] == "-" {
				v.Fields["message"] = ""
			}
			_, err := h.enquiryService.Submit(ctx, chatID, v)
			return err
		}
	case flowStudentRegister:
		return func(ctx context.Context, v validation.Values) error {
			_, err := h.authService.RegisterStudent(ctx, v)
			return err
		}
	case flowTutorRegister:
		return func(ctx context.Context, v validation.Values) error {
			_, err := h.authService.RegisterTutor(ctx, v, parseSlotValues(v))
			return err
		}
	case flowDemoBooking:
		return func(ctx context.Context, v validation.Values) error {
			tutorID, _ := strconv.ParseInt(v.Fields["tutor_id"], 10, 64)
			message := v.Fields["message"]
			if message == "-" {
				message = ""
			}
			_, err := h.demoService.Book(ctx, chatID, api.DemoBookingPayload{
				TutorID:       tutorID,
				ContactName:   v.Fields["contact_name"],
				ContactEmail:  v.Fields["contact_email"],
				ContactMobile: v.Fields["contact_mobile"],
				DemoDate:      v.Fields["demo_date"],
				DemoTime:      v.Fields["demo_time"],
				Message:       message,
				Address:       v.Fields["address"],
			})
			return err
		}
	default:
		return func(ctx context.Context, v validation.Values) error {
			return nil
		}
	}
}
