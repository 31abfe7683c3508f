package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountLocked          = errors.New("account locked after too many failed login attempts")
	ErrInvalidOrExpiredToken  = errors.New("invalid or expired token")
	ErrSessionNotFound        = errors.New("session not found")
)
