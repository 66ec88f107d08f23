package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/callbacks/common/formatting"
	"github.com/tutorgram/enquiry_bot/internal/controller/state"
)

// HandleStart приветствие и список команд
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	h.stateManager.ClearState(chatID)

	greeting := "👋 Welcome to the tutor marketplace bot!"
	if user, err := h.authService.CurrentUser(ctx, chatID); err == nil {
		greeting = fmt.Sprintf("👋 Welcome back, %s!", user.Username)
	}

	h.sendText(ctx, b, chatID, greeting+"\n\n"+
		"/login — sign in\n"+
		"/register — create an account\n"+
		"/book — book a tutor (offline enquiry)\n"+
		"/enquiries — my enquiries and their status\n"+
		"/bookings — my demo bookings\n"+
		"/profile — my profile\n"+
		"/bookdemo — book a demo class directly\n"+
		"/logout — sign out\n"+
		"/cancel — abort the current form")
}

// HandleLogin начинает диалог логина
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	h.stateManager.SetState(chatID, state.StateLoginUsername)
	h.sendText(ctx, b, chatID, "🔑 Sign in\n\nYour username:")
}

func (h *Handlers) handleLoginUsername(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	username := strings.TrimSpace(update.Message.Text)

	if username == "" {
		h.sendError(ctx, b, chatID, "Username is required. Try again:")
		return
	}

	h.stateManager.SetData(chatID, dataKeyUsername, username)
	h.stateManager.SetState(chatID, state.StateLoginPassword)
	h.sendText(ctx, b, chatID, "Your password:")
}

func (h *Handlers) handleLoginPassword(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	password := update.Message.Text

	rawUsername, _ := h.stateManager.GetData(chatID, dataKeyUsername)
	username, _ := rawUsername.(string)
	h.stateManager.ClearState(chatID)

	user, err := h.authService.Login(ctx, chatID, username, password)
	if err != nil {
		h.logger.Warn("Login failed",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("username", username))
		h.ReportAPIError(ctx, b, chatID, err)
		return
	}

	h.sendText(ctx, b, chatID, fmt.Sprintf("✅ Signed in as %s.", user.Username))
}

// HandleRegister выбор роли для регистрации
func (h *Handlers) HandleRegister(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "🎒 Student", CallbackData: "register:student"},
				{Text: "🎓 Tutor", CallbackData: "register:tutor"},
			},
		},
	}
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Who are you registering as?",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		h.logger.Error("Failed to send register keyboard", zap.Error(err))
	}
}

// StartStudentRegistration запускает мастер регистрации студента
func (h *Handlers) StartStudentRegistration(ctx context.Context, b *bot.Bot, chatID int64) {
	h.startFlow(ctx, b, chatID, studentRegisterFlow(time.Now()))
}

// StartTutorRegistration запускает мастер регистрации репетитора
func (h *Handlers) StartTutorRegistration(ctx context.Context, b *bot.Bot, chatID int64) {
	h.startFlow(ctx, b, chatID, tutorRegisterFlow())
}

// HandleBook запускает мастер офлайн-заявки
func (h *Handlers) HandleBook(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	if _, err := h.authService.Session(ctx, chatID); err != nil {
		h.ReportAPIError(ctx, b, chatID, err)
		return
	}
	h.startFlow(ctx, b, chatID, bookingFlow())
}

// HandleBookDemo запускает мастер прямой записи на демо
func (h *Handlers) HandleBookDemo(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	if _, err := h.authService.Session(ctx, chatID); err != nil {
		h.ReportAPIError(ctx, b, chatID, err)
		return
	}
	h.startFlow(ctx, b, chatID, demoBookingFlow())
}

// HandleEnquiries список заявок пользователя с действиями
func (h *Handlers) HandleEnquiries(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	enquiries, _, err := h.enquiryService.My(ctx, chatID)
	if err != nil {
		h.ReportAPIError(ctx, b, chatID, err)
		return
	}
	if len(enquiries) == 0 {
		h.sendText(ctx, b, chatID, "You have no enquiries yet. Create one with /book.")
		return
	}

	for _, e := range enquiries {
		display := formatting.GetEnquiryStatusDisplay(e.Status)
		text := fmt.Sprintf(
			"%s Enquiry #%d — %s\n"+
				"Subjects: %s\n"+
				"Section: %s, %s\n"+
				"Budget: %s",
			display.Emoji, e.ID, display.Text,
			strings.Join(e.Subjects, ", "),
			formatting.FormatSection(e.TeachingSection),
			formatting.FormatTimeRange(e.StartTime, e.EndTime),
			formatting.FormatPriceRange(e.MinimumPrice, e.MaximumPrice))

		keyboard := &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{
					{Text: "📊 Status", CallbackData: fmt.Sprintf("enquiry:status:%d", e.ID)},
					{Text: "👩‍🏫 Tutors", CallbackData: fmt.Sprintf("enquiry:tutors:%d", e.ID)},
				},
				{
					{Text: "📅 Demos", CallbackData: fmt.Sprintf("enquiry:demos:%d", e.ID)},
					{Text: "❌ Cancel enquiry", CallbackData: fmt.Sprintf("enquiry:cancel:%d", e.ID)},
				},
			},
		}
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        text,
			ReplyMarkup: keyboard,
		})
		if err != nil {
			h.logger.Error("Failed to send enquiry card",
				zap.Error(err),
				zap.Int64("enquiry_id", e.ID))
		}
	}
}

// HandleBookings выбор фильтра записей на демо
func (h *Handlers) HandleBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "✅ Accepted", CallbackData: "bookings:accepted"},
				{Text: "⏳ Pending", CallbackData: "bookings:pending"},
				{Text: "🚫 Rejected", CallbackData: "bookings:rejected"},
			},
		},
	}
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Which demo bookings do you want to see?",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		h.logger.Error("Failed to send bookings keyboard", zap.Error(err))
	}
}

// HandleLogout выходит из аккаунта
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	h.stateManager.ClearState(chatID)

	if err := h.authService.Logout(ctx, chatID); err != nil {
		h.ReportAPIError(ctx, b, chatID, err)
		return
	}
	h.sendText(ctx, b, chatID, "👋 Signed out.")
}

// HandleCancel прерывает текущий диалог
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	if h.stateManager.GetState(chatID) == state.StateNone {
		h.sendText(ctx, b, chatID, "Nothing to cancel.")
		return
	}
	h.stateManager.ClearState(chatID)
	h.sendText(ctx, b, chatID, "Form cancelled. Entered values were discarded.")
}

// HandleText маршрутизирует свободный текст по состоянию диалога
func (h *Handlers) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	switch h.stateManager.GetState(chatID) {
	case state.StateLoginUsername:
		h.handleLoginUsername(ctx, b, update)
	case state.StateLoginPassword:
		h.handleLoginPassword(ctx, b, update)
	case state.StateWizardField:
		h.HandleWizardInput(ctx, b, update)
	case state.StateDemoDate, state.StateDemoTime, state.StateDemoMessage:
		h.HandleDemoInput(ctx, b, update)
	case state.StateProfileMobile, state.StateProfileAddress:
		h.HandleProfileInput(ctx, b, update)
	default:
		h.sendText(ctx, b, chatID, "I didn't understand that. See /start for commands.")
	}
}
