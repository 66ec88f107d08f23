package api

import (
	"context"
	"fmt"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	OK     bool            `json:"ok"`
	Tokens model.TokenPair `json:"tokens"`
	User   *model.User     `json:"user"`
}

// StudentRegistration собранный мастером payload регистрации студента
type StudentRegistration struct {
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	Password     string        `json:"password"`
	MobileNumber string        `json:"mobile_number"`
	DateOfBirth  string        `json:"date_of_birth"`
	StudentClass string        `json:"student_class"`
	Address      model.Address `json:"address"`
}

// TutorRegistration payload регистрации репетитора
type TutorRegistration struct {
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	Password     string             `json:"password"`
	MobileNumber string             `json:"mobile_number"`
	Subjects     []string           `json:"subjects"`
	Experience   int                `json:"experience"`
	Price        int                `json:"price"`
	Availability []AvailabilitySlot `json:"availability"`
}

type AvailabilitySlot struct {
	Section   string `json:"section"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type RegisterResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	User    *model.User `json:"user,omitempty"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &resp, nil
}

func (c *Client) RegisterStudent(ctx context.Context, req StudentRegistration) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.post(ctx, "/users/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register student: %w", err)
	}
	return &resp, nil
}

func (c *Client) RegisterTutor(ctx context.Context, req TutorRegistration) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.post(ctx, "/tutors/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register tutor: %w", err)
	}
	return &resp, nil
}
