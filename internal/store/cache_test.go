package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

func TestUserCache(t *testing.T) {
	c := NewUserCache()

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, &model.User{ID: 7, Username: "nikhh"})
	user, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "nikhh", user.Username)

	// Чаты изолированы друг от друга
	_, ok = c.Get(2)
	assert.False(t, ok)

	c.Clear(1)
	_, ok = c.Get(1)
	assert.False(t, ok)
}

func TestUserCache_SetNilDeletes(t *testing.T) {
	c := NewUserCache()
	c.Set(1, &model.User{ID: 7})

	c.Set(1, nil)
	_, ok := c.Get(1)
	assert.False(t, ok)
}
