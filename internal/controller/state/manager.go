package state

import (
	"sync"
)

// Manager управляет состояниями диалогов по chat id
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData
}

func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// ensure возвращает запись чата, создавая её при необходимости.
// Вызывать только под write-блокировкой.
func (sm *Manager) ensure(chatID int64) *UserData {
	userData, exists := sm.states[chatID]
	if !exists {
		userData = &UserData{
			State: StateNone,
			Data:  make(map[string]any),
		}
		sm.states[chatID] = userData
	}
	return userData
}

// GetState получает текущее состояние чата
func (sm *Manager) GetState(chatID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	userData, exists := sm.states[chatID]
	if !exists {
		return StateNone
	}
	return userData.State
}

// SetState устанавливает состояние чата. StateNone удаляет запись
// целиком вместе с временными данными.
func (sm *Manager) SetState(chatID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		delete(sm.states, chatID)
		return
	}
	sm.ensure(chatID).State = state
}

// GetData получает временные данные чата
func (sm *Manager) GetData(chatID int64, key string) (any, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	userData, exists := sm.states[chatID]
	if !exists {
		return nil, false
	}
	value, ok := userData.Data[key]
	return value, ok
}

// SetData устанавливает временные данные чата
func (sm *Manager) SetData(chatID int64, key string, value any) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.ensure(chatID).Data[key] = value
}

// GetAllData получает копию всех временных данных чата
func (sm *Manager) GetAllData(chatID int64) map[string]any {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	userData, exists := sm.states[chatID]
	if !exists {
		return nil
	}
	copied := make(map[string]any, len(userData.Data))
	for k, v := range userData.Data {
		copied[k] = v
	}
	return copied
}

// ClearState очищает состояние и данные чата
func (sm *Manager) ClearState(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, chatID)
}
