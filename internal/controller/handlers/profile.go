package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/state"
	"github.com/tutorgram/enquiry_bot/internal/model"
	"github.com/tutorgram/enquiry_bot/internal/validation"
)

// HandleProfile карточка профиля с кнопками редактирования
func (h *Handlers) HandleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	user, err := h.authService.CurrentUser(ctx, chatID)
	if err != nil {
		h.ReportAPIError(ctx, b, chatID, err)
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "👤 %s (%s)\n", user.Username, user.Role)
	fmt.Fprintf(&text, "✉️ %s\n", user.Email)
	fmt.Fprintf(&text, "📱 %s\n", user.MobileNumber)
	if addr := user.HomeAddress; addr != nil {
		fmt.Fprintf(&text, "🏠 %s, %s, %s %s, %s\n",
			addr.Street, addr.City, addr.State, addr.PinCode, addr.Country)
	}

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "📱 Edit mobile", CallbackData: "profile:mobile"},
				{Text: "🏠 Edit address", CallbackData: "profile:address"},
			},
		},
	}
	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text.String(),
		ReplyMarkup: keyboard,
	})
	if err != nil {
		h.logger.Error("Failed to send profile card", zap.Error(err))
	}
}

// StartMobileEdit начинает диалог смены номера
func (h *Handlers) StartMobileEdit(ctx context.Context, b *bot.Bot, chatID int64) {
	h.stateManager.SetState(chatID, state.StateProfileMobile)
	h.sendText(ctx, b, chatID, "New mobile number (10 digits, starts with 6-9):\n\nUse /cancel to abort.")
}

// StartAddressEdit начинает диалог смены адреса
func (h *Handlers) StartAddressEdit(ctx context.Context, b *bot.Bot, chatID int64) {
	h.stateManager.SetState(chatID, state.StateProfileAddress)
	h.sendText(ctx, b, chatID,
		"New address as: street, city, state, pin code, country\n"+
			"e.g. 12 MG Road, Mumbai, Maharashtra, 400001, India\n\nUse /cancel to abort.")
}

// HandleProfileInput ввод значений редактирования профиля
func (h *Handlers) HandleProfileInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	input := strings.TrimSpace(update.Message.Text)

	switch h.stateManager.GetState(chatID) {
	case state.StateProfileMobile:
		if msg := validation.ValidateIndianMobile(input); msg != "" {
			h.sendError(ctx, b, chatID, msg+". Try again:")
			return
		}
		h.stateManager.ClearState(chatID)
		user, err := h.authService.UpdateMobile(ctx, chatID, input)
		if err != nil {
			h.ReportAPIError(ctx, b, chatID, err)
			return
		}
		h.sendText(ctx, b, chatID, fmt.Sprintf("✅ Mobile number updated to %s.", user.MobileNumber))

	case state.StateProfileAddress:
		addr, msg := parseAddressInput(input)
		if msg != "" {
			h.sendError(ctx, b, chatID, msg+". Try again:")
			return
		}
		h.stateManager.ClearState(chatID)
		updated, err := h.authService.UpdateAddress(ctx, chatID, addr)
		if err != nil {
			h.ReportAPIError(ctx, b, chatID, err)
			return
		}
		h.sendText(ctx, b, chatID, fmt.Sprintf("✅ Address updated: %s, %s.", updated.Street, updated.City))
	}
}

// parseAddressInput разбирает "street, city, state, pin, country" и
// прогоняет каждую часть через её валидатор
func parseAddressInput(input string) (model.Address, string) {
	parts := splitList(input)
	if len(parts) != 5 {
		return model.Address{}, "Expected exactly 5 comma-separated parts"
	}
	addr := model.Address{
		Street:  parts[0],
		City:    parts[1],
		State:   parts[2],
		PinCode: parts[3],
		Country: parts[4],
	}
	for _, msg := range []string{
		validation.ValidateStreet(addr.Street),
		validation.ValidateCity(addr.City),
		validation.ValidateState(addr.State),
		validation.ValidatePinCode(addr.PinCode),
		validation.ValidateCountry(addr.Country),
	} {
		if msg != "" {
			return model.Address{}, msg
		}
	}
	return addr, ""
}
