package domain

import "time"

type User struct {
	ID                          string
	FullName                    string
	Email                       string
	PasswordHash                string
	IsVerified                  bool
	VerificationToken           *string
	VerificationTokenExpiration *time.Time
	ResetToken                  *string
	ResetTokenExpiration        *time.Time
	IsOnline                    bool
	FailedLoginAttempts         int
	AccountLocked               bool
	LastLoginAt                 *time.Time
	LastOnlineAt                *time.Time
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// Session is the server-side record of a live login. Its existence is the
// capability: a signed token that no longer has a matching row is dead even
// if the signature still verifies.
type Session struct {
	SessionID      string
	UserID         string
	DeviceID       string
	CreatedAt      time.Time
	LastActivityAt time.Time
	ExpiresAt      time.Time
}

type OnlineUser struct {
	ID           string
	FullName     string
	Email        string
	LastLoginAt  *time.Time
	LastOnlineAt *time.Time
}
