package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized токен протух или отозван. Обработчики по этой
// ошибке чистят локальную сессию и отправляют на повторный логин.
var ErrUnauthorized = errors.New("unauthorized")

// Error ошибка бэкенда с разобранным телом. Сервер не присылает
// типизированных кодов - только карту поле -> сообщения, поэтому
// конфликты существования выделяются подстрочным поиском.
type Error struct {
	Status    int
	Message   string
	Fields    map[string]string
	Existence []string // конфликты "username/email уже существует"
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

// FieldErrors карта серверных ошибок полей (для мастера форм)
func (e *Error) FieldErrors() map[string]string {
	return e.Fields
}

// HasFieldErrors есть ли хоть одна ошибка поля
func (e *Error) HasFieldErrors() bool {
	return len(e.Fields) > 0 || len(e.Existence) > 0
}

// decodeError разбирает тело ошибочного ответа. Тело - JSON-объект
// поле -> сообщение или поле -> список сообщений; поле message
// трактуется как общий текст. Конфликты существования на username и
// email отделяются от остальных ошибок полей.
func decodeError(status int, body []byte) error {
	if status == http.StatusUnauthorized {
		return fmt.Errorf("api: %d: %w", status, ErrUnauthorized)
	}

	apiErr := &Error{Status: status, Fields: make(map[string]string)}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for field, raw := range payload {
			msg := joinMessages(raw)
			if msg == "" {
				continue
			}
			if field == "message" || field == "detail" {
				apiErr.Message = msg
				continue
			}
			if isExistenceConflict(field, msg) {
				apiErr.Existence = append(apiErr.Existence, msg)
				continue
			}
			apiErr.Fields[field] = msg
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

func joinMessages(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// isExistenceConflict договорённость UX, не протокола: сервер шлёт
// свободный текст, совпадение ищется по подстроке
func isExistenceConflict(field, msg string) bool {
	if field != "username" && field != "email" {
		return false
	}
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "exist") || strings.Contains(lower, "already")
}

// UserMessage лучший доступный текст для показа пользователю:
// message из тела -> текст ошибки -> запасная строка
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "Something went wrong. Please try again."
}
