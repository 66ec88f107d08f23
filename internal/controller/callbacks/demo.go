package callbacks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/callbacks/common/formatting"
	"github.com/tutorgram/enquiry_bot/internal/demo"
	"github.com/tutorgram/enquiry_bot/internal/model"
)

func demosDataKey(enquiryID int64) string {
	return fmt.Sprintf("demos:%d", enquiryID)
}

// showDemos показывает демо-запросы заявки. Кнопки решения появляются
// только когда демо прошло и вторая сторона ещё не финализирована.
func (r *Router) showDemos(ctx context.Context, b *bot.Bot, chatID, enquiryID int64) {
	requests, err := r.demoService.List(ctx, chatID, enquiryID)
	if err != nil {
		r.handlers.ReportAPIError(ctx, b, chatID, err)
		return
	}
	if len(requests) == 0 {
		r.sendText(ctx, b, chatID, "No demo classes have been requested for this enquiry yet.")
		return
	}

	r.stateManager.SetData(chatID, demosDataKey(enquiryID), requests)
	now := time.Now()
	for _, d := range requests {
		r.renderDemo(ctx, b, chatID, enquiryID, d, now)
	}
}

func (r *Router) renderDemo(ctx context.Context, b *bot.Bot, chatID, enquiryID int64, d *model.DemoRequest, now time.Time) {
	var text strings.Builder
	fmt.Fprintf(&text, "Demo with %s\n", d.TutorName)
	fmt.Fprintf(&text, "🗓 %s at %s\n", d.DemoDate, d.DemoTime)
	if !d.Created.IsZero() {
		fmt.Fprintf(&text, "Requested %s\n", formatting.FormatDateTime(d.Created))
	}
	if d.Message != "" {
		fmt.Fprintf(&text, "💬 %s\n", d.Message)
	}

	user := formatting.GetDecisionDisplay(d.UserDecision)
	tutor := formatting.GetDecisionDisplay(d.TutorDecision)
	fmt.Fprintf(&text, "You: %s %s • Tutor: %s %s\n", user.Emoji, user.Text, tutor.Emoji, tutor.Text)

	switch {
	case demo.Finalized(d):
		text.WriteString("🤝 Both sides accepted, the tutor is finalized.")
	case !demo.Completed(d, now):
		text.WriteString("⏳ The demo has not taken place yet.")
	}

	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text.String(),
	}
	if demo.CanDecide(d, now) {
		params.ReplyMarkup = &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{
					{
						Text:         "✅ Continue with tutor",
						CallbackData: fmt.Sprintf("demo:decide:%d:%d:accepted", enquiryID, d.ID),
					},
					{
						Text:         "🚫 Decline",
						CallbackData: fmt.Sprintf("demo:decide:%d:%d:rejected", enquiryID, d.ID),
					},
				},
			},
		}
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		r.logger.Error("Failed to send demo request",
			zap.Error(err),
			zap.Int64("demo_id", d.ID))
	}
}

func (r *Router) handleDemo(ctx context.Context, b *bot.Bot, chatID int64, parts []string) {
	if len(parts) < 4 {
		return
	}
	enquiryID, ok := parseID(parts[2])
	if !ok {
		return
	}

	switch parts[1] {
	case "request":
		tutorID, ok := parseID(parts[3])
		if !ok {
			return
		}
		r.handlers.StartDemoRequest(ctx, b, chatID, enquiryID, tutorID)
	case "decide":
		if len(parts) < 5 {
			return
		}
		demoID, ok := parseID(parts[3])
		if !ok {
			return
		}
		decision := model.Decision(parts[4])
		if decision != model.DecisionAccepted && decision != model.DecisionRejected {
			return
		}
		r.decideDemo(ctx, b, chatID, enquiryID, demoID, decision)
	}
}

func (r *Router) decideDemo(ctx context.Context, b *bot.Bot, chatID, enquiryID, demoID int64, decision model.Decision) {
	d := r.storedDemo(chatID, enquiryID, demoID)
	if d == nil {
		r.sendText(ctx, b, chatID, "This demo view has expired. Open the enquiry demos again.")
		return
	}

	if err := r.demoService.Decide(ctx, chatID, d, decision); err != nil {
		r.handlers.ReportAPIError(ctx, b, chatID, err)
		return
	}

	if decision == model.DecisionAccepted {
		r.sendText(ctx, b, chatID, "✅ Your decision is saved. Once the tutor also accepts, they become your finalized tutor.")
	} else {
		r.sendText(ctx, b, chatID, "Your decision is saved. You can continue with other candidates.")
	}
	r.renderDemo(ctx, b, chatID, enquiryID, d, time.Now())
}

func (r *Router) storedDemo(chatID, enquiryID, demoID int64) *model.DemoRequest {
	raw, ok := r.stateManager.GetData(chatID, demosDataKey(enquiryID))
	if !ok {
		return nil
	}
	requests, ok := raw.([]*model.DemoRequest)
	if !ok {
		return nil
	}
	for _, d := range requests {
		if d.ID == demoID {
			return d
		}
	}
	return nil
}

func (r *Router) handleBookings(ctx context.Context, b *bot.Bot, chatID int64, parts []string) {
	if len(parts) < 2 {
		return
	}
	status := model.Decision(parts[1])

	bookings, err := r.demoService.Bookings(ctx, chatID, status)
	if err != nil {
		r.handlers.ReportAPIError(ctx, b, chatID, err)
		return
	}
	if len(bookings) == 0 {
		display := formatting.GetDecisionDisplay(status)
		r.sendText(ctx, b, chatID, fmt.Sprintf("You have no %s demo bookings.", strings.ToLower(display.Text)))
		return
	}

	var text strings.Builder
	for i, bk := range bookings {
		if i > 0 {
			text.WriteString("\n")
		}
		display := formatting.GetDecisionDisplay(bk.Status)
		fmt.Fprintf(&text, "%s %s at %s (%s)\n", display.Emoji, bk.DemoDate, bk.DemoTime, display.Text)
		if bk.Address != "" {
			fmt.Fprintf(&text, "📍 %s\n", bk.Address)
		}
		if bk.Message != "" {
			fmt.Fprintf(&text, "💬 %s\n", bk.Message)
		}
	}
	r.sendText(ctx, b, chatID, text.String())
}
