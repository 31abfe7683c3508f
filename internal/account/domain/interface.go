package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, token string, now time.Time) (bool, error)
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) (bool, error)
	FindByValidResetToken(ctx context.Context, token string, now time.Time) (*User, error)
	UpdatePasswordByResetToken(ctx context.Context, token, passwordHash string, now time.Time) (bool, error)
	SetOnlineStatus(ctx context.Context, userID string, online bool, now time.Time) error
	RecordLoginFailure(ctx context.Context, userID string, maxAttempts int) error
	ResetLoginFailures(ctx context.Context, userID string) error
	UpdateLastLogin(ctx context.Context, userID string, now time.Time) error
	GetOnlineUsers(ctx context.Context) ([]OnlineUser, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Find(ctx context.Context, userID, sessionID string) (*Session, error)
	Delete(ctx context.Context, userID, sessionID string) (bool, error)
	DeleteExpired(ctx context.Context, userID string, now time.Time) error
	Touch(ctx context.Context, userID, sessionID string, now time.Time) error
	ListByUserID(ctx context.Context, userID string) ([]Session, error)
}

type MailSender interface {
	SendVerificationEmail(to, fullName, verificationURL string) error
	SendPasswordResetEmail(to, resetURL string) error
}
