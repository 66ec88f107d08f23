package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/api"
	"github.com/tutorgram/enquiry_bot/internal/model"
	"github.com/tutorgram/enquiry_bot/internal/repository"
	"github.com/tutorgram/enquiry_bot/internal/store"
	"github.com/tutorgram/enquiry_bot/internal/validation"
)

// ErrNotLoggedIn у чата нет сессии
var ErrNotLoggedIn = errors.New("not logged in")

type AuthService struct {
	client      *api.Client
	sessionRepo *repository.SessionRepository
	userCache   *store.UserCache
	refresh     *store.RefreshNotifier
	logger      *zap.Logger
}

func NewAuthService(
	client *api.Client,
	sessionRepo *repository.SessionRepository,
	userCache *store.UserCache,
	refresh *store.RefreshNotifier,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		client:      client,
		sessionRepo: sessionRepo,
		userCache:   userCache,
		refresh:     refresh,
		logger:      logger,
	}
}

// Login авторизует чат на бэкенде и сохраняет сессию
func (s *AuthService) Login(ctx context.Context, chatID int64, username, password string) (*model.User, error) {
	resp, err := s.client.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	session := &model.Session{
		ChatID:       chatID,
		AccessToken:  resp.Tokens.Access,
		RefreshToken: resp.Tokens.Refresh,
		User:         resp.User,
	}
	if err := s.sessionRepo.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.userCache.Set(chatID, resp.User)
	s.refresh.Trigger()

	s.logger.Info("User logged in",
		zap.Int64("chat_id", chatID),
		zap.String("username", username))

	return resp.User, nil
}

// Session сессия чата: сначала кэш, потом БД. Отсутствие сессии
// возвращается как ErrNotLoggedIn.
func (s *AuthService) Session(ctx context.Context, chatID int64) (*model.Session, error) {
	session, err := s.sessionRepo.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrNotLoggedIn
	}
	if _, ok := s.userCache.Get(chatID); !ok {
		s.userCache.Set(chatID, session.User)
	}
	return session, nil
}

// CurrentUser синхронное чтение пользователя из кэша с добором из БД
func (s *AuthService) CurrentUser(ctx context.Context, chatID int64) (*model.User, error) {
	if user, ok := s.userCache.Get(chatID); ok {
		return user, nil
	}
	session, err := s.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return session.User, nil
}

// Logout чистит сессию, кэш и будит зависимые экраны
func (s *AuthService) Logout(ctx context.Context, chatID int64) error {
	if err := s.sessionRepo.DeleteByChatID(ctx, chatID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.userCache.Clear(chatID)
	s.refresh.Trigger()

	s.logger.Info("User logged out", zap.Int64("chat_id", chatID))
	return nil
}

// HandleUnauthorized принудительный сброс по 401: локальная сессия
// больше не действительна, пользователь идёт на повторный логин
func (s *AuthService) HandleUnauthorized(ctx context.Context, chatID int64) {
	if err := s.sessionRepo.DeleteByChatID(ctx, chatID); err != nil {
		s.logger.Error("Failed to clear session after 401",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
	s.userCache.Clear(chatID)
	s.refresh.Trigger()
}

// UpdateMobile меняет номер телефона в профиле и синхронизирует
// сохранённую сессию с ответом бэкенда
func (s *AuthService) UpdateMobile(ctx context.Context, chatID int64, mobile string) (*model.User, error) {
	session, err := s.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if session.User == nil {
		return nil, ErrNotLoggedIn
	}

	updated, err := s.client.UpdateUser(ctx, session.AccessToken, session.User.ID,
		map[string]any{"mobile_number": mobile})
	if err != nil {
		return nil, err
	}

	session.User = updated
	if err := s.sessionRepo.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.userCache.Set(chatID, updated)

	s.logger.Info("Mobile number updated", zap.Int64("chat_id", chatID))
	return updated, nil
}

// UpdateAddress меняет домашний адрес профиля
func (s *AuthService) UpdateAddress(ctx context.Context, chatID int64, addr model.Address) (*model.Address, error) {
	session, err := s.Session(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if session.User == nil || session.User.HomeAddress == nil {
		return nil, fmt.Errorf("no address on file to update")
	}

	updated, err := s.client.UpdateAddress(ctx, session.AccessToken, session.User.HomeAddress.ID,
		map[string]any{
			"street":   addr.Street,
			"city":     addr.City,
			"state":    addr.State,
			"pin_code": addr.PinCode,
			"country":  addr.Country,
		})
	if err != nil {
		return nil, err
	}

	session.User.HomeAddress = updated
	if err := s.sessionRepo.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.userCache.Set(chatID, session.User)

	s.logger.Info("Address updated", zap.Int64("chat_id", chatID))
	return updated, nil
}

// RegisterStudent собирает payload из значений мастера и регистрирует
// студента на бэкенде
func (s *AuthService) RegisterStudent(ctx context.Context, v validation.Values) (*api.RegisterResponse, error) {
	payload := api.StudentRegistration{
		Username:     v.Fields["username"],
		Email:        v.Fields["email"],
		Password:     v.Fields["password"],
		MobileNumber: v.Fields["mobile_number"],
		DateOfBirth:  v.Fields["date_of_birth"],
		StudentClass: v.Fields["student_class"],
		Address: model.Address{
			Street:  v.Fields["street"],
			City:    v.Fields["city"],
			State:   v.Fields["state"],
			PinCode: v.Fields["pin_code"],
			Country: v.Fields["country"],
		},
	}

	resp, err := s.client.RegisterStudent(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("register student: %w", err)
	}

	s.logger.Info("Student registered", zap.String("username", payload.Username))
	return resp, nil
}

// RegisterTutor регистрирует репетитора
func (s *AuthService) RegisterTutor(ctx context.Context, v validation.Values, slots []validation.Slot) (*api.RegisterResponse, error) {
	experience, _ := strconv.Atoi(v.Fields["experience"])
	price, _ := strconv.Atoi(v.Fields["price"])

	availability := make([]api.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		availability = append(availability, api.AvailabilitySlot{
			Section:   slot.Section,
			StartTime: slot.Start,
			EndTime:   slot.End,
		})
	}

	payload := api.TutorRegistration{
		Username:     v.Fields["username"],
		Email:        v.Fields["email"],
		Password:     v.Fields["password"],
		MobileNumber: v.Fields["mobile_number"],
		Subjects:     v.Lists["subjects"],
		Experience:   experience,
		Price:        price,
		Availability: availability,
	}

	resp, err := s.client.RegisterTutor(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("register tutor: %w", err)
	}

	s.logger.Info("Tutor registered", zap.String("username", payload.Username))
	return resp, nil
}
