package api

import (
	"context"
	"fmt"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

// EnquiryPayload payload офлайн-заявки, собранный мастером
type EnquiryPayload struct {
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	MobileNumber     string   `json:"mobile_number"`
	HomeAddress      string   `json:"home_address"`
	Boards           []string `json:"board"`
	Classes          []string `json:"classes"`
	Subjects         []string `json:"subjects"`
	TeachingLanguage string   `json:"teaching_language"`
	TeachingSection  string   `json:"teaching_section"`
	StartTime        string   `json:"teaching_starttime"`
	EndTime          string   `json:"teaching_endtime"`
	MinimumPrice     int      `json:"minimum_price"`
	MaximumPrice     int      `json:"maximum_price"`
	Message          string   `json:"message"`
}

// MyEnquiries заявки текущего пользователя
func (c *Client) MyEnquiries(ctx context.Context, token string) ([]*model.Enquiry, error) {
	var enquiries []*model.Enquiry
	if err := c.get(ctx, "/enquiry/myapplications", token, &enquiries); err != nil {
		return nil, fmt.Errorf("my enquiries: %w", err)
	}
	return enquiries, nil
}

// CreateEnquiry создаёт заявку; сервер отвечает заявкой в статусе
// application_received
func (c *Client) CreateEnquiry(ctx context.Context, token string, payload EnquiryPayload) (*model.Enquiry, error) {
	var enquiry model.Enquiry
	if err := c.post(ctx, "/enquiry", token, payload, &enquiry); err != nil {
		return nil, fmt.Errorf("create enquiry: %w", err)
	}
	return &enquiry, nil
}

// EnquiryFlow история статусов заявки для таймлайна
func (c *Client) EnquiryFlow(ctx context.Context, token string, enquiryID int64) ([]*model.FlowItem, error) {
	var items []*model.FlowItem
	path := fmt.Sprintf("/enquiry-flow?enquiry=%d", enquiryID)
	if err := c.get(ctx, path, token, &items); err != nil {
		return nil, fmt.Errorf("enquiry flow: %w", err)
	}
	return items, nil
}

// SentTutors кандидаты, отправленные по заявке (сырой список,
// группировку в раунды делает клиент)
func (c *Client) SentTutors(ctx context.Context, token string, enquiryID int64) ([]*model.TutorCandidate, error) {
	var candidates []*model.TutorCandidate
	path := fmt.Sprintf("/send-tutors?enquiry=%d", enquiryID)
	if err := c.get(ctx, path, token, &candidates); err != nil {
		return nil, fmt.Errorf("sent tutors: %w", err)
	}
	return candidates, nil
}

// CancelEnquiry единственный переход, который инициирует клиент
func (c *Client) CancelEnquiry(ctx context.Context, token string, enquiryID int64) error {
	path := fmt.Sprintf("/enquiry/%d/cancel", enquiryID)
	if err := c.post(ctx, path, token, nil, nil); err != nil {
		return fmt.Errorf("cancel enquiry: %w", err)
	}
	return nil
}
