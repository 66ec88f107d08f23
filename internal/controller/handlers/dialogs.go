package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/state"
	"github.com/tutorgram/enquiry_bot/internal/wizard"
)

// startFlow запускает мастер и спрашивает первое поле первого шага
func (h *Handlers) startFlow(ctx context.Context, b *bot.Bot, chatID int64, flow *FormFlow) {
	w := wizard.New(flow.Steps, h.submitFunc(flow.Name, chatID))

	h.stateManager.SetState(chatID, state.StateWizardField)
	h.stateManager.SetData(chatID, dataKeyFlow, flow)
	h.stateManager.SetData(chatID, dataKeyWizard, w)
	h.stateManager.SetData(chatID, dataKeyFieldIdx, 0)

	h.logger.Info("Starting form flow",
		zap.Int64("chat_id", chatID),
		zap.String("flow", flow.Name))

	h.sendText(ctx, b, chatID, fmt.Sprintf(
		"📝 %s\n\nStep 1 of %d: %s\n\nUse /back to go one step back, /cancel to abort.",
		flow.Title, w.StepCount(), flow.Steps[0].Name))
	h.promptField(ctx, b, chatID, flow, w, 0)
}

// HandleWizardInput обрабатывает ввод значения текущего поля мастера
func (h *Handlers) HandleWizardInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	input := strings.TrimSpace(update.Message.Text)

	flow, w, fieldIdx, ok := h.wizardState(chatID)
	if !ok {
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, "This form is no longer active. Start again from the menu.")
		return
	}

	fields := flow.Fields[w.Current()-1]
	spec := fields[fieldIdx]
	if spec.List {
		w.SetList(spec.Key, splitList(input))
	} else {
		w.SetField(spec.Key, input)
	}

	// Остались поля текущего шага - спрашиваем следующее
	if fieldIdx+1 < len(fields) {
		h.stateManager.SetData(chatID, dataKeyFieldIdx, fieldIdx+1)
		h.promptField(ctx, b, chatID, flow, w, fieldIdx+1)
		return
	}

	h.advanceWizard(ctx, b, chatID, flow, w)
}

// advanceWizard все поля шага собраны: двигаем контроллер вперёд
func (h *Handlers) advanceWizard(ctx context.Context, b *bot.Bot, chatID int64, flow *FormFlow, w *wizard.Wizard) {
	stepBefore := w.Current()
	done, err := w.Next(ctx)

	switch {
	case err != nil:
		// Отправка не удалась: введённые значения сохранены,
		// серверные ошибки полей уже подняты в w.Errors()
		h.logger.Warn("Form submit failed",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("flow", flow.Name))
		h.ReportAPIError(ctx, b, chatID, err)
		h.stateManager.SetData(chatID, dataKeyFieldIdx, 0)
		h.promptField(ctx, b, chatID, flow, w, 0)

	case done:
		h.stateManager.ClearState(chatID)
		h.logger.Info("Form flow completed",
			zap.Int64("chat_id", chatID),
			zap.String("flow", flow.Name))
		h.sendText(ctx, b, chatID, h.successMessage(flow.Name))

	case w.Current() == stepBefore:
		// Валидация шага не прошла: остаёмся и перезаполняем шаг
		h.sendError(ctx, b, chatID,
			"Please fix the following:\n"+formatFieldErrors(w.Errors()))
		h.stateManager.SetData(chatID, dataKeyFieldIdx, 0)
		h.promptField(ctx, b, chatID, flow, w, 0)

	default:
		h.stateManager.SetData(chatID, dataKeyFieldIdx, 0)
		h.sendText(ctx, b, chatID, fmt.Sprintf(
			"✅ Step %d done.\n\nStep %d of %d: %s",
			stepBefore, w.Current(), w.StepCount(), flow.Steps[w.Current()-1].Name))
		h.promptField(ctx, b, chatID, flow, w, 0)
	}
}

// HandleBack шаг назад без перепроверки
func (h *Handlers) HandleBack(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	flow, w, _, ok := h.wizardState(chatID)
	if !ok {
		h.sendText(ctx, b, chatID, "Nothing to go back from.")
		return
	}
	if w.Current() == 1 {
		h.sendText(ctx, b, chatID, "Already on the first step.")
		h.promptField(ctx, b, chatID, flow, w, 0)
		return
	}

	w.Previous()
	h.stateManager.SetData(chatID, dataKeyFieldIdx, 0)
	h.sendText(ctx, b, chatID, fmt.Sprintf(
		"↩️ Back to step %d of %d: %s",
		w.Current(), w.StepCount(), flow.Steps[w.Current()-1].Name))
	h.promptField(ctx, b, chatID, flow, w, 0)
}

func (h *Handlers) promptField(ctx context.Context, b *bot.Bot, chatID int64, flow *FormFlow, w *wizard.Wizard, fieldIdx int) {
	spec := flow.Fields[w.Current()-1][fieldIdx]
	prompt := spec.Prompt
	if msg, ok := w.Errors()[spec.Key]; ok {
		prompt = "❌ " + msg + "\n\n" + prompt
	}
	h.sendText(ctx, b, chatID, prompt)
}

func (h *Handlers) wizardState(chatID int64) (*FormFlow, *wizard.Wizard, int, bool) {
	rawFlow, ok := h.stateManager.GetData(chatID, dataKeyFlow)
	if !ok {
		return nil, nil, 0, false
	}
	rawWizard, ok := h.stateManager.GetData(chatID, dataKeyWizard)
	if !ok {
		return nil, nil, 0, false
	}
	flow, ok := rawFlow.(*FormFlow)
	if !ok {
		return nil, nil, 0, false
	}
	w, ok := rawWizard.(*wizard.Wizard)
	if !ok {
		return nil, nil, 0, false
	}
	fieldIdx := 0
	if rawIdx, ok := h.stateManager.GetData(chatID, dataKeyFieldIdx); ok {
		if idx, ok := rawIdx.(int); ok {
			fieldIdx = idx
		}
	}
	return flow, w, fieldIdx, true
}

func (h *Handlers) successMessage(flowName string) string {
	switch flowName {
	case flowBooking:
		return "✅ Your enquiry has been submitted! Track it with /enquiries."
	case flowStudentRegister, flowTutorRegister:
		return "✅ Registered successfully. Use /login to sign in."
	case flowDemoBooking:
		return "✅ Demo booked! Track it with /bookings."
	default:
		return "✅ Done."
	}
}
