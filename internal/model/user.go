package model

import "time"

type Address struct {
	ID               int64  `json:"id"`
	Street           string `json:"street"`
	City             string `json:"city"`
	State            string `json:"state"`
	PinCode          string `json:"pin_code"`
	Country          string `json:"country"`
	FormattedAddress string `json:"formatted_address"`
}

type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	MobileNumber string   `json:"mobile_number"`
	Role         string   `json:"role"` // student или tutor
	HomeAddress  *Address `json:"home_address"`
}

// TokenPair пара токенов от бэкенда. Токены непрозрачные строки,
// клиент их не разбирает и не проверяет.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Session сохранённое состояние авторизации одного чата
type Session struct {
	ChatID       int64     `json:"chat_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *User     `json:"user"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
