package api

import (
	"context"
	"fmt"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

// UpdateUser частичное обновление профиля
func (c *Client) UpdateUser(ctx context.Context, token string, userID int64, fields map[string]any) (*model.User, error) {
	var updated model.User
	path := fmt.Sprintf("/users/%d", userID)
	if err := c.patch(ctx, path, token, fields, &updated); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &updated, nil
}

// UpdateAddress частичное обновление адреса
func (c *Client) UpdateAddress(ctx context.Context, token string, addressID int64, fields map[string]any) (*model.Address, error) {
	var updated model.Address
	path := fmt.Sprintf("/addresses/%d", addressID)
	if err := c.patch(ctx, path, token, fields, &updated); err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}
	return &updated, nil
}
