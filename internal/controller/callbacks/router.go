package callbacks

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/handlers"
	"github.com/tutorgram/enquiry_bot/internal/controller/state"
	"github.com/tutorgram/enquiry_bot/internal/service"
)

// Router разбирает callback data инлайн-кнопок и зовёт обработчики.
// Формат: "ns:action[:args...]", числовые аргументы через двоеточие.
type Router struct {
	handlers       *handlers.Handlers
	authService    *service.AuthService
	enquiryService *service.EnquiryService
	demoService    *service.DemoService
	stateManager   *state.Manager
	logger         *zap.Logger
}

func NewRouter(
	h *handlers.Handlers,
	authService *service.AuthService,
	enquiryService *service.EnquiryService,
	demoService *service.DemoService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Router {
	return &Router{
		handlers:       h,
		authService:    authService,
		enquiryService: enquiryService,
		demoService:    demoService,
		stateManager:   stateManager,
		logger:         logger,
	}
}

// Handle единая точка входа для callback query
func (r *Router) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	// Телеграм ждёт подтверждения каждого callback
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
	})

	// Для старых сообщений Телеграм не присылает полное сообщение
	msg := query.Message.Message
	if msg == nil {
		r.logger.Warn("Callback without accessible message", zap.String("data", query.Data))
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Split(query.Data, ":")

	r.logger.Debug("Callback received",
		zap.Int64("chat_id", chatID),
		zap.String("data", query.Data))

	switch parts[0] {
	case "register":
		r.handleRegister(ctx, b, chatID, parts)
	case "enquiry":
		r.handleEnquiry(ctx, b, chatID, parts)
	case "round":
		r.handleRound(ctx, b, chatID, parts)
	case "demo":
		r.handleDemo(ctx, b, chatID, parts)
	case "bookings":
		r.handleBookings(ctx, b, chatID, parts)
	case "profile":
		r.handleProfile(ctx, b, chatID, parts)
	default:
		r.logger.Warn("Unknown callback namespace", zap.String("data", query.Data))
	}
}

func (r *Router) handleRegister(ctx context.Context, b *bot.Bot, chatID int64, parts []string) {
	if len(parts) < 2 {
		return
	}
	switch parts[1] {
	case "student":
		r.handlers.StartStudentRegistration(ctx, b, chatID)
	case "tutor":
		r.handlers.StartTutorRegistration(ctx, b, chatID)
	}
}

func (r *Router) handleProfile(ctx context.Context, b *bot.Bot, chatID int64, parts []string) {
	if len(parts) < 2 {
		return
	}
	switch parts[1] {
	case "mobile":
		r.handlers.StartMobileEdit(ctx, b, chatID)
	case "address":
		r.handlers.StartAddressEdit(ctx, b, chatID)
	}
}

// parseID int64 из сегмента callback data
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil
}

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

func (r *Router) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		r.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
