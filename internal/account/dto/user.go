package dto

import "time"

type UserSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type OnlineUserOutput struct {
	ID           string     `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	LastOnlineAt *time.Time `json:"last_online_at,omitempty"`
}
