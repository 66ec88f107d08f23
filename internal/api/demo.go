package api

import (
	"context"
	"fmt"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

type DemoRequestPayload struct {
	EnquiryID int64  `json:"enquiry_id"`
	TutorID   int64  `json:"tutor_id"`
	DemoDate  string `json:"demo_date"`
	DemoTime  string `json:"demo_time"`
	Message   string `json:"message"`
}

type DemoBookingPayload struct {
	TutorID       int64  `json:"tutor_id"`
	ContactName   string `json:"contact_name"`
	ContactEmail  string `json:"contact_email"`
	ContactMobile string `json:"contact_mobile"`
	DemoDate      string `json:"demo_date"`
	DemoTime      string `json:"demo_time"`
	Message       string `json:"message"`
	Address       string `json:"address"`
}

// DemoRequests демо-запросы по заявке
func (c *Client) DemoRequests(ctx context.Context, token string, enquiryID int64) ([]*model.DemoRequest, error) {
	var demos []*model.DemoRequest
	path := fmt.Sprintf("/enquiry-demo-requests?enquiry=%d", enquiryID)
	if err := c.get(ctx, path, token, &demos); err != nil {
		return nil, fmt.Errorf("demo requests: %w", err)
	}
	return demos, nil
}

// CreateDemoRequest один демо-запрос на пару (заявка, репетитор);
// предусловие "демо ещё нет" проверяет вызывающий через demo.CanRequest
func (c *Client) CreateDemoRequest(ctx context.Context, token string, payload DemoRequestPayload) (*model.DemoRequest, error) {
	var created model.DemoRequest
	if err := c.post(ctx, "/enquiry-demo-requests", token, payload, &created); err != nil {
		return nil, fmt.Errorf("create demo request: %w", err)
	}
	return &created, nil
}

// SubmitDemoDecision решение пользователя по прошедшему демо
func (c *Client) SubmitDemoDecision(ctx context.Context, token string, demoID int64, decision model.Decision) error {
	path := fmt.Sprintf("/enquiry-demo-requests/%d", demoID)
	body := map[string]string{"user_application_accepted": string(decision)}
	if err := c.patch(ctx, path, token, body, nil); err != nil {
		return fmt.Errorf("submit demo decision: %w", err)
	}
	return nil
}

// BookDemo прямая запись на демо к репетитору
func (c *Client) BookDemo(ctx context.Context, token string, payload DemoBookingPayload) (*model.DemoBooking, error) {
	var booking model.DemoBooking
	if err := c.post(ctx, "/demoapp", token, payload, &booking); err != nil {
		return nil, fmt.Errorf("book demo: %w", err)
	}
	return &booking, nil
}

// ListDemoBookings записи, отфильтрованные по статусу
func (c *Client) ListDemoBookings(ctx context.Context, token string, status model.Decision) ([]*model.DemoBooking, error) {
	var bookings []*model.DemoBooking
	path := fmt.Sprintf("/demoapp?status=%s", status)
	if err := c.get(ctx, path, token, &bookings); err != nil {
		return nil, fmt.Errorf("list demo bookings: %w", err)
	}
	return bookings, nil
}
