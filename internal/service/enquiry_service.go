package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/api"
	"github.com/tutorgram/enquiry_bot/internal/flow"
	"github.com/tutorgram/enquiry_bot/internal/model"
	"github.com/tutorgram/enquiry_bot/internal/rounds"
	"github.com/tutorgram/enquiry_bot/internal/store"
	"github.com/tutorgram/enquiry_bot/internal/validation"
)

type EnquiryService struct {
	client  *api.Client
	auth    *AuthService
	refresh *store.RefreshNotifier
	logger  *zap.Logger
}

func NewEnquiryService(
	client *api.Client,
	auth *AuthService,
	refresh *store.RefreshNotifier,
	logger *zap.Logger,
) *EnquiryService {
	return &EnquiryService{
		client:  client,
		auth:    auth,
		refresh: refresh,
		logger:  logger,
	}
}

// Submit сериализует значения мастера в payload заявки и отправляет
// её на бэкенд. Сервер создаёт заявку в статусе application_received.
func (s *EnquiryService) Submit(ctx context.Context, chatID int64, v validation.Values) (*model.Enquiry, error) {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}

	minPrice, _ := strconv.Atoi(v.Fields["minimum_price"])
	maxPrice, _ := strconv.Atoi(v.Fields["maximum_price"])

	payload := api.EnquiryPayload{
		Username:         v.Fields["username"],
		Email:            v.Fields["email"],
		MobileNumber:     v.Fields["mobile_number"],
		HomeAddress:      v.Fields["home_address"],
		Boards:           v.Lists["board"],
		Classes:          v.Lists["classes"],
		Subjects:         v.Lists["subjects"],
		TeachingLanguage: v.Fields["teaching_language"],
		TeachingSection:  v.Fields["teaching_section"],
		StartTime:        v.Fields["teaching_starttime"],
		EndTime:          v.Fields["teaching_endtime"],
		MinimumPrice:     minPrice,
		MaximumPrice:     maxPrice,
		Message:          v.Fields["message"],
	}

	enquiry, err := s.client.CreateEnquiry(ctx, session.AccessToken, payload)
	if err != nil {
		return nil, err
	}

	s.refresh.Trigger()

	s.logger.Info("Enquiry submitted",
		zap.Int64("chat_id", chatID),
		zap.Int64("enquiry_id", enquiry.ID),
		zap.String("status", string(enquiry.Status)))

	return enquiry, nil
}

// My заявки пользователя. Результат помечен поколением обновления:
// вызывающий применяет его только если поколение всё ещё последнее.
func (s *EnquiryService) My(ctx context.Context, chatID int64) ([]*model.Enquiry, uint64, error) {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return nil, 0, err
	}

	var enquiries []*model.Enquiry
	var generation uint64
	for attempt := 0; attempt < 3; attempt++ {
		generation = s.refresh.Latest()
		enquiries, err = s.client.MyEnquiries(ctx, session.AccessToken)
		if err != nil {
			return nil, 0, err
		}
		if s.refresh.IsCurrent(generation) {
			break
		}
		// Поколение ушло вперёд пока летел запрос: ответ устарел,
		// перечитываем вместо молчаливого показа старых данных
		s.logger.Debug("Stale enquiry list discarded",
			zap.Int64("chat_id", chatID),
			zap.Uint64("generation", generation))
	}
	return enquiries, generation, nil
}

// Timeline таймлайн по последнему наблюдаемому статусу заявки
func (s *EnquiryService) Timeline(ctx context.Context, chatID, enquiryID int64) ([]flow.Step, model.EnquiryStatus, error) {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return nil, "", err
	}

	items, err := s.client.EnquiryFlow(ctx, session.AccessToken, enquiryID)
	if err != nil {
		return nil, "", err
	}
	if len(items) == 0 {
		return nil, "", fmt.Errorf("enquiry %d has no flow history", enquiryID)
	}

	// Последняя по времени запись - текущий статус
	latest := items[0]
	for _, item := range items[1:] {
		if item.Created.After(latest.Created) {
			latest = item
		}
	}
	return flow.Timeline(latest.Status), latest.Status, nil
}

// Rounds кандидаты заявки, сгруппированные в раунды
func (s *EnquiryService) Rounds(ctx context.Context, chatID, enquiryID int64) ([]*model.Round, error) {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.client.SentTutors(ctx, session.AccessToken, enquiryID)
	if err != nil {
		return nil, err
	}
	return rounds.GroupIntoRounds(candidates), nil
}

// Cancel отмена заявки - единственный переход, инициируемый клиентом.
// Подтверждение собирает UI; здесь перепроверяется по свежему списку,
// что заявка существует и ещё не в терминальном статусе.
func (s *EnquiryService) Cancel(ctx context.Context, chatID, enquiryID int64) error {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return err
	}

	enquiries, err := s.client.MyEnquiries(ctx, session.AccessToken)
	if err != nil {
		return err
	}
	var target *model.Enquiry
	for _, e := range enquiries {
		if e.ID == enquiryID {
			target = e
			break
		}
	}
	if target == nil {
		return fmt.Errorf("enquiry %d not found", enquiryID)
	}
	if !flow.CanCancel(target.Status) {
		return fmt.Errorf("enquiry %d is already %s", enquiryID, target.Status)
	}

	if err := s.client.CancelEnquiry(ctx, session.AccessToken, enquiryID); err != nil {
		return err
	}

	s.refresh.Trigger()

	s.logger.Info("Enquiry cancelled",
		zap.Int64("chat_id", chatID),
		zap.Int64("enquiry_id", enquiryID))
	return nil
}
