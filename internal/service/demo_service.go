package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/api"
	"github.com/tutorgram/enquiry_bot/internal/demo"
	"github.com/tutorgram/enquiry_bot/internal/model"
	"github.com/tutorgram/enquiry_bot/internal/store"
)

type DemoService struct {
	client  *api.Client
	auth    *AuthService
	refresh *store.RefreshNotifier
	logger  *zap.Logger
	now     func() time.Time
}

func NewDemoService(
	client *api.Client,
	auth *AuthService,
	refresh *store.RefreshNotifier,
	logger *zap.Logger,
) *DemoService {
	return &DemoService{
		client:  client,
		auth:    auth,
		refresh: refresh,
		logger:  logger,
		now:     time.Now,
	}
}

// List демо-запросы по заявке
func (s *DemoService) List(ctx context.Context, chatID, enquiryID int64) ([]*model.DemoRequest, error) {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return s.client.DemoRequests(ctx, session.AccessToken, enquiryID)
}

// Request планирует демо. На пару (заявка, репетитор) допускается
// ровно один запрос, существующие проверяются перед отправкой.
func (s *DemoService) Request(ctx context.Context, chatID int64, payload api.DemoRequestPayload) (*model.DemoRequest, error) {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}

	existing, err := s.client.DemoRequests(ctx, session.AccessToken, payload.EnquiryID)
	if err != nil {
		return nil, err
	}
	if !demo.CanRequest(existing, payload.TutorID) {
		return nil, fmt.Errorf("demo already requested for tutor %d", payload.TutorID)
	}

	created, err := s.client.CreateDemoRequest(ctx, session.AccessToken, payload)
	if err != nil {
		return nil, err
	}

	s.refresh.Trigger()

	s.logger.Info("Demo requested",
		zap.Int64("chat_id", chatID),
		zap.Int64("enquiry_id", payload.EnquiryID),
		zap.Int64("tutor_id", payload.TutorID))
	return created, nil
}

// Decide решение пользователя по демо. Порядок проверок инвариантен:
// демо прошло, не финализировано, своё решение ещё не принято.
func (s *DemoService) Decide(ctx context.Context, chatID int64, d *model.DemoRequest, decision model.Decision) error {
	if !demo.CanDecide(d, s.now()) {
		return fmt.Errorf("demo %d is not awaiting a decision", d.ID)
	}

	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return err
	}

	if err := s.client.SubmitDemoDecision(ctx, session.AccessToken, d.ID, decision); err != nil {
		return err
	}

	d.UserDecision = decision
	s.refresh.Trigger()

	s.logger.Info("Demo decision submitted",
		zap.Int64("chat_id", chatID),
		zap.Int64("demo_id", d.ID),
		zap.String("decision", string(decision)))
	return nil
}

// Book прямая запись на демо к репетитору, без заявки
func (s *DemoService) Book(ctx context.Context, chatID int64, payload api.DemoBookingPayload) (*model.DemoBooking, error) {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}

	booking, err := s.client.BookDemo(ctx, session.AccessToken, payload)
	if err != nil {
		return nil, err
	}

	s.refresh.Trigger()

	s.logger.Info("Demo booked",
		zap.Int64("chat_id", chatID),
		zap.Int64("tutor_id", payload.TutorID))
	return booking, nil
}

// Bookings записи на демо, отфильтрованные по статусу
func (s *DemoService) Bookings(ctx context.Context, chatID int64, status model.Decision) ([]*model.DemoBooking, error) {
	session, err := s.auth.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return s.client.ListDemoBookings(ctx, session.AccessToken, status)
}
