package handlers

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/api"
	"github.com/tutorgram/enquiry_bot/internal/service"
)

// sendText отправляет простое текстовое сообщение
func (h *Handlers) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

// sendError отправляет сообщение об ошибке
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	h.sendText(ctx, b, chatID, "❌ "+text)
}

// ReportAPIError преобразует ошибку сетевого вызова в сообщения чата
// по таксономии: 401 чистит сессию и ведёт на логин; конфликты
// существования и ошибки полей показываются отдельными алертами;
// остальное - общий алерт с лучшим доступным текстом.
func (h *Handlers) ReportAPIError(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		h.authService.HandleUnauthorized(ctx, chatID)
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, "Your session has expired. Please /login again.")
		return
	}
	if errors.Is(err, service.ErrNotLoggedIn) {
		h.sendError(ctx, b, chatID, "You are not logged in. Use /login first.")
		return
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if len(apiErr.Existence) > 0 {
			h.sendError(ctx, b, chatID,
				"Registration error:\n"+strings.Join(apiErr.Existence, "\n")+
					"\n\nPlease use different credentials and try again.")
		}
		if len(apiErr.Fields) > 0 {
			h.sendError(ctx, b, chatID, "Validation error:\n"+formatFieldErrors(apiErr.Fields))
		}
		if apiErr.HasFieldErrors() {
			return
		}
	}

	h.sendError(ctx, b, chatID, api.UserMessage(err))
}

// formatFieldErrors детерминированный список ошибок полей
func formatFieldErrors(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, "• "+k+": "+fields[k])
	}
	return strings.Join(lines, "\n")
}

// splitList разбирает ввод вида "a, b, c" в список значений
func splitList(input string) []string {
	parts := strings.Split(input, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
