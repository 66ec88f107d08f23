package formatting

import (
	"github.com/tutorgram/enquiry_bot/internal/flow"
	"github.com/tutorgram/enquiry_bot/internal/model"
)

// StatusDisplay представляет отображение статуса заявки
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetEnquiryStatusDisplay возвращает emoji и подпись для статуса заявки
func GetEnquiryStatusDisplay(status model.EnquiryStatus) StatusDisplay {
	displays := map[model.EnquiryStatus]StatusDisplay{
		model.StatusApplicationReceived: {"📥", "Application Received"},
		model.StatusTutorsSent:          {"📤", "Tutors Sent"},
		model.StatusDemoRequested:       {"📅", "Demo Requested"},
		model.StatusDemoCompleted:       {"🎓", "Demo Completed"},
		model.StatusTutorFinalized:      {"✅", "Tutor Finalized"},
		model.StatusCancelled:           {"❌", "Cancelled"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", string(status)}
}

// GetTutorActionDisplay возвращает emoji и подпись для действия репетитора
func GetTutorActionDisplay(action model.TutorAction) StatusDisplay {
	displays := map[model.TutorAction]StatusDisplay{
		model.TutorActionPending:  {"⏳", "Pending"},
		model.TutorActionAccepted: {"✅", "Accepted"},
		model.TutorActionRejected: {"🚫", "Rejected"},
	}

	if display, ok := displays[action]; ok {
		return display
	}

	return StatusDisplay{"❓", string(action)}
}

// GetDecisionDisplay возвращает emoji и подпись для стороны решения по демо
func GetDecisionDisplay(decision model.Decision) StatusDisplay {
	displays := map[model.Decision]StatusDisplay{
		model.DecisionPending:  {"⏳", "Pending"},
		model.DecisionAccepted: {"✅", "Accepted"},
		model.DecisionRejected: {"🚫", "Rejected"},
	}

	if display, ok := displays[decision]; ok {
		return display
	}

	return StatusDisplay{"❓", string(decision)}
}

// GetStepMarker маркер шага таймлайна
func GetStepMarker(state flow.StepState) string {
	switch state {
	case flow.StepCompleted:
		return "🟢"
	case flow.StepActive:
		return "🔵"
	default:
		return "⚪️"
	}
}
