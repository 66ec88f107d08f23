package callbacks

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/callbacks/common/formatting"
	"github.com/tutorgram/enquiry_bot/internal/model"
	"github.com/tutorgram/enquiry_bot/internal/rounds"
)

func roundsDataKey(enquiryID int64) string {
	return fmt.Sprintf("rounds:%d", enquiryID)
}

// showRounds загружает кандидатов заявки и показывает раунды.
// Снимок раундов кладётся в данные состояния чата: переключатели
// выбора работают по нему без походов в сеть.
func (r *Router) showRounds(ctx context.Context, b *bot.Bot, chatID, enquiryID int64) {
	grouped, err := r.enquiryService.Rounds(ctx, chatID, enquiryID)
	if err != nil {
		r.handlers.ReportAPIError(ctx, b, chatID, err)
		return
	}
	if len(grouped) == 0 {
		r.sendText(ctx, b, chatID, "No tutors have been sent for this enquiry yet.")
		return
	}

	r.stateManager.SetData(chatID, roundsDataKey(enquiryID), grouped)
	for _, round := range grouped {
		r.renderRound(ctx, b, chatID, enquiryID, round)
	}
}

func (r *Router) renderRound(ctx context.Context, b *bot.Bot, chatID, enquiryID int64, round *model.Round) {
	var text strings.Builder
	fmt.Fprintf(&text, "Round %d • %s\n", round.Number, formatting.FormatDate(round.Created))
	if rounds.Advanced(round) {
		// Подсказка для отображения, фактические раунды решает сервер
		text.WriteString("➡️ A tutor was accepted, next round may follow\n")
	}
	if picked := rounds.Selected(round); len(picked) > 0 {
		fmt.Fprintf(&text, "☑️ %d selected\n", len(picked))
	}
	text.WriteString("\n")

	for _, c := range round.Tutors {
		check := "⬜️"
		if c.Selected {
			check = "☑️"
		}
		display := formatting.GetTutorActionDisplay(c.Action)
		fmt.Fprintf(&text, "%s %s — %s %s\n", check, c.TutorName, display.Emoji, display.Text)
	}

	var keyboard [][]models.InlineKeyboardButton
	for _, c := range round.Tutors {
		row := []models.InlineKeyboardButton{
			{
				Text:         "☑️ " + c.TutorName,
				CallbackData: fmt.Sprintf("round:toggle:%d:%d:%d", enquiryID, round.Number, c.TutorID),
			},
		}
		if c.Action != model.TutorActionAccepted {
			row = append(row,
				models.InlineKeyboardButton{
					Text:         "✅",
					CallbackData: fmt.Sprintf("round:accept:%d:%d:%d", enquiryID, round.Number, c.TutorID),
				},
				models.InlineKeyboardButton{
					Text:         "🚫",
					CallbackData: fmt.Sprintf("round:reject:%d:%d:%d", enquiryID, round.Number, c.TutorID),
				})
		} else {
			row = append(row, models.InlineKeyboardButton{
				Text:         "📅 Demo",
				CallbackData: fmt.Sprintf("demo:request:%d:%d", enquiryID, c.TutorID),
			})
		}
		keyboard = append(keyboard, row)
	}
	keyboard = append(keyboard, []models.InlineKeyboardButton{
		{
			Text:         "Select all / clear all",
			CallbackData: fmt.Sprintf("round:toggleall:%d:%d", enquiryID, round.Number),
		},
	})

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text.String(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: keyboard},
	})
	if err != nil {
		r.logger.Error("Failed to send round",
			zap.Error(err),
			zap.Int64("enquiry_id", enquiryID),
			zap.Int("round", round.Number))
	}
}

func (r *Router) handleRound(ctx context.Context, b *bot.Bot, chatID int64, parts []string) {
	if len(parts) < 4 {
		return
	}
	enquiryID, ok := parseID(parts[2])
	if !ok {
		return
	}
	roundNumber, ok := parseID(parts[3])
	if !ok {
		return
	}

	round := r.storedRound(chatID, enquiryID, int(roundNumber))
	if round == nil {
		r.sendText(ctx, b, chatID, "This round view has expired. Open the enquiry tutors again.")
		return
	}

	switch parts[1] {
	case "toggle":
		if len(parts) < 5 {
			return
		}
		if tutorID, ok := parseID(parts[4]); ok {
			rounds.ToggleSelect(round, tutorID)
		}
	case "toggleall":
		rounds.ToggleSelectAll(round)
	case "accept":
		if len(parts) < 5 {
			return
		}
		if tutorID, ok := parseID(parts[4]); ok {
			rounds.UpdateAction(round, tutorID, model.TutorActionAccepted)
		}
	case "reject":
		if len(parts) < 5 {
			return
		}
		if tutorID, ok := parseID(parts[4]); ok {
			rounds.UpdateAction(round, tutorID, model.TutorActionRejected)
		}
	default:
		return
	}

	r.renderRound(ctx, b, chatID, enquiryID, round)
}

func (r *Router) storedRound(chatID, enquiryID int64, roundNumber int) *model.Round {
	raw, ok := r.stateManager.GetData(chatID, roundsDataKey(enquiryID))
	if !ok {
		return nil
	}
	grouped, ok := raw.([]*model.Round)
	if !ok {
		return nil
	}
	for _, round := range grouped {
		if round.Number == roundNumber {
			return round
		}
	}
	return nil
}
