package flow

import "github.com/tutorgram/enquiry_bot/internal/model"

// StepState положение шага таймлайна относительно текущего статуса
type StepState string

const (
	StepCompleted StepState = "completed"
	StepActive    StepState = "active"
	StepUpcoming  StepState = "upcoming"
)

// Step один шаг таймлайна заявки
type Step struct {
	Status model.EnquiryStatus
	Label  string
	State  StepState
}

var statusLabels = map[model.EnquiryStatus]string{
	model.StatusApplicationReceived: "Application Received",
	model.StatusTutorsSent:          "Tutors Sent",
	model.StatusDemoRequested:       "Demo Requested",
	model.StatusDemoCompleted:       "Demo Completed",
	model.StatusTutorFinalized:      "Tutor Finalized",
	model.StatusCancelled:           "Cancelled",
}

// Label человекочитаемая подпись статуса
func Label(status model.EnquiryStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// Index позиция статуса в model.StatusFlow, -1 если статус неизвестен
func Index(status model.EnquiryStatus) int {
	for i, s := range model.StatusFlow {
		if s == status {
			return i
		}
	}
	return -1
}

// IsTerminal терминальные статусы: репетитор выбран или заявка отменена
func IsTerminal(status model.EnquiryStatus) bool {
	return status == model.StatusTutorFinalized || status == model.StatusCancelled
}

// CanTransition допустим ли переход from -> to. Статусы двигаются
// только вперёд; cancelled достижим из любого нетерминального.
// Источник истины - сервер, клиент лишь проверяет наблюдаемое.
func CanTransition(from, to model.EnquiryStatus) bool {
	fromIdx, toIdx := Index(from), Index(to)
	if fromIdx < 0 || toIdx < 0 || from == to {
		return false
	}
	if to == model.StatusCancelled {
		return !IsTerminal(from)
	}
	return !IsTerminal(from) && toIdx > fromIdx
}

// CanCancel клиент инициирует только отмену, и только пока
// заявка не в терминальном статусе
func CanCancel(status model.EnquiryStatus) bool {
	return Index(status) >= 0 && !IsTerminal(status)
}

// Timeline шаги таймлайна для текущего статуса: всё до текущего
// индекса завершено, текущий активен, остальное впереди.
// Cancelled не входит в линейку прогресса; для отменённой заявки
// он добавляется последним активным шагом, а пройденные стадии
// по одному статусу восстановить нельзя.
func Timeline(current model.EnquiryStatus) []Step {
	progress := model.StatusFlow[:len(model.StatusFlow)-1]
	currentIdx := Index(current)
	if current == model.StatusCancelled {
		currentIdx = -1
	}
	steps := make([]Step, 0, len(model.StatusFlow))
	for i, status := range progress {
		state := StepUpcoming
		switch {
		case i < currentIdx:
			state = StepCompleted
		case i == currentIdx:
			state = StepActive
		}
		steps = append(steps, Step{Status: status, Label: Label(status), State: state})
	}
	if current == model.StatusCancelled {
		steps = append(steps, Step{
			Status: model.StatusCancelled,
			Label:  Label(model.StatusCancelled),
			State:  StepActive,
		})
	}
	return steps
}
