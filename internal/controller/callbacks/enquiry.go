package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/callbacks/common"
	"github.com/tutorgram/enquiry_bot/internal/controller/callbacks/common/formatting"
)

func (r *Router) handleEnquiry(ctx context.Context, b *bot.Bot, chatID int64, parts []string) {
	if len(parts) < 3 {
		return
	}
	enquiryID, ok := parseID(parts[2])
	if !ok {
		return
	}

	switch parts[1] {
	case "status":
		r.showTimeline(ctx, b, chatID, enquiryID)
	case "tutors":
		r.showRounds(ctx, b, chatID, enquiryID)
	case "demos":
		r.showDemos(ctx, b, chatID, enquiryID)
	case "cancel":
		r.confirmCancel(ctx, b, chatID, enquiryID)
	case "cancelyes":
		r.doCancel(ctx, b, chatID, enquiryID)
	case "cancelno":
		r.sendText(ctx, b, chatID, "Enquiry kept as is.")
	}
}

// showTimeline таймлайн статусов: текст плюс картинка
func (r *Router) showTimeline(ctx context.Context, b *bot.Bot, chatID, enquiryID int64) {
	steps, status, err := r.enquiryService.Timeline(ctx, chatID, enquiryID)
	if err != nil {
		r.handlers.ReportAPIError(ctx, b, chatID, err)
		return
	}

	r.sendText(ctx, b, chatID, formatting.FormatTimeline(enquiryID, steps))

	png, err := common.RenderTimelineImage(enquiryID, steps)
	if err != nil {
		// Текстовый таймлайн уже отправлен, картинка опциональна
		r.logger.Error("Failed to render timeline image",
			zap.Error(err),
			zap.Int64("enquiry_id", enquiryID))
		return
	}
	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: chatID,
		Photo: &models.InputFileUpload{
			Filename: fmt.Sprintf("enquiry_%d_status.png", enquiryID),
			Data:     bytesReader(png),
		},
	})
	if err != nil {
		r.logger.Error("Failed to send timeline photo",
			zap.Error(err),
			zap.Int64("enquiry_id", enquiryID),
			zap.String("status", string(status)))
	}
}

// confirmCancel отмена необратима, поэтому всегда с подтверждением
func (r *Router) confirmCancel(ctx context.Context, b *bot.Bot, chatID, enquiryID int64) {
	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "⚠️ Yes, cancel it", CallbackData: fmt.Sprintf("enquiry:cancelyes:%d", enquiryID)},
				{Text: "Keep it", CallbackData: fmt.Sprintf("enquiry:cancelno:%d", enquiryID)},
			},
		},
	}
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("Are you sure you want to cancel enquiry #%d? This cannot be undone.", enquiryID),
		ReplyMarkup: keyboard,
	})
	if err != nil {
		r.logger.Error("Failed to send cancel confirmation", zap.Error(err))
	}
}

func (r *Router) doCancel(ctx context.Context, b *bot.Bot, chatID, enquiryID int64) {
	if err := r.enquiryService.Cancel(ctx, chatID, enquiryID); err != nil {
		r.handlers.ReportAPIError(ctx, b, chatID, err)
		return
	}
	r.sendText(ctx, b, chatID, fmt.Sprintf("❌ Enquiry #%d has been cancelled.", enquiryID))
}
