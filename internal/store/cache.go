package store

import (
	"sync"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

// UserCache потокобезопасное зеркало сохранённых пользователей для
// синхронного чтения. Источник истины - таблица сессий; кэш лишь
// избавляет обработчики от похода в БД на каждое сообщение.
type UserCache struct {
	mu    sync.RWMutex
	users map[int64]*model.User // chatID -> пользователь
}

func NewUserCache() *UserCache {
	return &UserCache{users: make(map[int64]*model.User)}
}

func (c *UserCache) Get(chatID int64) (*model.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	user, ok := c.users[chatID]
	return user, ok
}

func (c *UserCache) Set(chatID int64, user *model.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if user == nil {
		delete(c.users, chatID)
		return
	}
	c.users[chatID] = user
}

// Clear убирает пользователя из кэша (логаут, 401)
func (c *UserCache) Clear(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.users, chatID)
}
