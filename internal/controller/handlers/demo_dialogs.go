package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/api"
	"github.com/tutorgram/enquiry_bot/internal/controller/state"
	"github.com/tutorgram/enquiry_bot/internal/validation"
)

// StartDemoRequest начинает диалог планирования демо с репетитором
func (h *Handlers) StartDemoRequest(ctx context.Context, b *bot.Bot, chatID, enquiryID, tutorID int64) {
	h.stateManager.SetState(chatID, state.StateDemoDate)
	h.stateManager.SetData(chatID, dataKeyEnquiry, enquiryID)
	h.stateManager.SetData(chatID, dataKeyTutor, tutorID)

	h.logger.Info("Starting demo request dialog",
		zap.Int64("chat_id", chatID),
		zap.Int64("enquiry_id", enquiryID),
		zap.Int64("tutor_id", tutorID))

	h.sendText(ctx, b, chatID,
		"📅 Schedule a demo lesson\n\nDemo date (YYYY-MM-DD):\n\nUse /cancel to abort.")
}

// HandleDemoInput шаги диалога демо: дата, время, сообщение
func (h *Handlers) HandleDemoInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	input := strings.TrimSpace(update.Message.Text)

	switch h.stateManager.GetState(chatID) {
	case state.StateDemoDate:
		if msg := validation.ValidateDate(input); msg != "" {
			h.sendError(ctx, b, chatID, msg+". Try again:")
			return
		}
		h.stateManager.SetData(chatID, dataKeyDemoDate, input)
		h.stateManager.SetState(chatID, state.StateDemoTime)
		h.sendText(ctx, b, chatID, "Demo time (HH:MM, 24-hour):")

	case state.StateDemoTime:
		if msg := validation.ValidateTime(input); msg != "" {
			h.sendError(ctx, b, chatID, msg+". Try again:")
			return
		}
		h.stateManager.SetData(chatID, dataKeyDemoTime, input)
		h.stateManager.SetState(chatID, state.StateDemoMessage)
		h.sendText(ctx, b, chatID, "Message for the tutor (or a dash to skip):")

	case state.StateDemoMessage:
		message := input
		if message == "-" {
			message = ""
		}
		h.submitDemoRequest(ctx, b, chatID, message)
	}
}

func (h *Handlers) submitDemoRequest(ctx context.Context, b *bot.Bot, chatID int64, message string) {
	data := h.stateManager.GetAllData(chatID)
	enquiryID, _ := data[dataKeyEnquiry].(int64)
	tutorID, _ := data[dataKeyTutor].(int64)
	demoDate, _ := data[dataKeyDemoDate].(string)
	demoTime, _ := data[dataKeyDemoTime].(string)
	h.stateManager.ClearState(chatID)

	created, err := h.demoService.Request(ctx, chatID, api.DemoRequestPayload{
		EnquiryID: enquiryID,
		TutorID:   tutorID,
		DemoDate:  demoDate,
		DemoTime:  demoTime,
		Message:   message,
	})
	if err != nil {
		h.ReportAPIError(ctx, b, chatID, err)
		return
	}

	h.sendText(ctx, b, chatID, fmt.Sprintf(
		"✅ Demo scheduled for %s at %s. The tutor will be notified.",
		created.DemoDate, created.DemoTime))
}
