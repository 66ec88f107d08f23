package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorgram/enquiry_bot/internal/model"
	"github.com/tutorgram/enquiry_bot/internal/repository/base"
)

// SessionRepository хранит авторизацию чатов: пару токенов и
// сериализованного пользователя. Аналог локального хранилища
// мобильного клиента, по одной строке на чат.
type SessionRepository struct {
	*base.Repository
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{Repository: base.NewRepository(pool)}
}

// encodeUser сериализует пользователя для колонки user_data
func encodeUser(user *model.User) ([]byte, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	return data, nil
}

// decodeUser обратная операция; пустая колонка - пользователя нет
func decodeUser(data []byte) (*model.User, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var user *model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}

// Upsert создаёт или обновляет сессию чата
func (r *SessionRepository) Upsert(ctx context.Context, session *model.Session) error {
	userJSON, err := encodeUser(session.User)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (chat_id, access_token, refresh_token, user_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (chat_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			user_data = EXCLUDED.user_data,
			updated_at = NOW()`

	_, err = r.Pool().Exec(ctx, query,
		session.ChatID, session.AccessToken, session.RefreshToken, userJSON)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// GetByChatID возвращает сессию чата или nil, если её нет
func (r *SessionRepository) GetByChatID(ctx context.Context, chatID int64) (*model.Session, error) {
	query := `
		SELECT chat_id, access_token, refresh_token, user_data, created_at, updated_at
		FROM sessions
		WHERE chat_id = $1`

	var session model.Session
	var userJSON []byte

	err := r.QueryRow(ctx, query, chatID).Scan(
		&session.ChatID,
		&session.AccessToken,
		&session.RefreshToken,
		&userJSON,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	session.User, err = decodeUser(userJSON)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByChatID удаляет сессию (логаут или 401 от бэкенда)
func (r *SessionRepository) DeleteByChatID(ctx context.Context, chatID int64) error {
	_, err := r.ExecAffected(ctx, `DELETE FROM sessions WHERE chat_id = $1`, chatID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
