package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/KingTechFoundation/learn/internal/account/domain UserRepository,SessionRepository,MailSender

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KingTechFoundation/learn/config"
	"github.com/KingTechFoundation/learn/internal/account/domain"
	"github.com/KingTechFoundation/learn/internal/account/dto"
	autherror "github.com/KingTechFoundation/learn/internal/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	tokens   TokenGenerator
	mail     domain.MailSender
	cfg      *config.Config
}

func NewUserService(users domain.UserRepository, sessions domain.SessionRepository,
	tokens TokenGenerator, mail domain.MailSender, cfg *config.Config) *UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		mail:     mail,
		cfg:      cfg,
	}
}

// Signup creates an unverified account and emails a verification link. The
// pre-check on email is best effort; the unique constraint on users.email is
// what actually decides a race, surfacing as ErrEmailAlreadyRegistered from
// Create.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	verificationToken, err := s.tokens.NewOpaqueToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	verificationExpiry := now.Add(time.Duration(s.cfg.VerificationExpiryHours) * time.Hour)

	user := &domain.User{
		ID:                          uuid.New().String(),
		FullName:                    input.FullName,
		Email:                       email,
		PasswordHash:                string(hashedPassword),
		VerificationToken:           &verificationToken,
		VerificationTokenExpiration: &verificationExpiry,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	verificationURL := fmt.Sprintf("%s/api/users/verify-email/%s", s.cfg.AppBaseURL, verificationToken)
	if err := s.mail.SendVerificationEmail(user.Email, user.FullName, verificationURL); err != nil {
		slog.Error("failed to send verification email", "user_id", user.ID, "error", err)
		return nil, err
	}

	return user, nil
}

// VerifyEmail consumes a verification token. Consumption is idempotent in the
// failure direction: a second call with the same token is a no-op that fails.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return autherror.ErrInvalidOrExpiredToken
	}

	verified, err := s.users.MarkVerified(ctx, token, time.Now())
	if err != nil {
		return err
	}
	if !verified {
		return autherror.ErrInvalidOrExpiredToken
	}

	return nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if user.AccountLocked {
		return nil, autherror.ErrAccountLocked
	}

	if !user.IsVerified {
		return nil, autherror.ErrEmailNotVerified
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		if err := s.users.RecordLoginFailure(ctx, user.ID, s.cfg.LoginMaxAttempts); err != nil {
			slog.Error("failed to record login failure", "user_id", user.ID, "error", err)
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 {
		if err := s.users.ResetLoginFailures(ctx, user.ID); err != nil {
			slog.Error("failed to reset login failures", "user_id", user.ID, "error", err)
		}
	}

	token, expiresAt, err := s.tokens.GenerateSessionToken(user.ID, input.DeviceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Lazy prune: rows whose embedded expiry has passed are dead weight.
	if err := s.sessions.DeleteExpired(ctx, user.ID, now); err != nil {
		slog.Warn("failed to prune expired sessions", "user_id", user.ID, "error", err)
	}

	session := &domain.Session{
		SessionID:      token,
		UserID:         user.ID,
		DeviceID:       input.DeviceID,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.users.SetOnlineStatus(ctx, user.ID, true, now); err != nil {
		return nil, err
	}
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful.",
		Token:   token,
		User: dto.UserSummary{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	}, nil
}

// RequestPasswordReset issues a one-hour reset token and emails the reset
// link. An unknown email succeeds without doing either, so the response does
// not reveal whether an account exists.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	resetToken, err := s.tokens.NewOpaqueToken()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(time.Duration(s.cfg.ResetTokenExpiryMin) * time.Minute)

	matched, err := s.users.SetResetToken(ctx, email, resetToken, expiry)
	if err != nil {
		return err
	}
	if !matched {
		slog.Info("password reset requested for unknown email")
		return nil
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.cfg.FrontendBaseURL, resetToken)
	if err := s.mail.SendPasswordResetEmail(email, resetURL); err != nil {
		slog.Error("failed to send password reset email", "error", err)
		return err
	}

	return nil
}

func (s *UserService) VerifyResetToken(ctx context.Context, token string) error {
	user, err := s.users.FindByValidResetToken(ctx, token, time.Now())
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidOrExpiredToken
	}

	return nil
}

// ResetPassword rotates the password and consumes the reset token in one
// conditional update. Of two concurrent calls with the same token, exactly
// one hits a row; the loser gets ErrInvalidOrExpiredToken.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	now := time.Now()

	user, err := s.users.FindByValidResetToken(ctx, token, now)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidOrExpiredToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	updated, err := s.users.UpdatePasswordByResetToken(ctx, token, string(hashedPassword), now)
	if err != nil {
		return err
	}
	if !updated {
		return autherror.ErrInvalidOrExpiredToken
	}

	return nil
}

// Logout revokes the session by deleting its registry row. The token keeps
// verifying cryptographically until its embedded expiry; the missing row is
// what kills it.
func (s *UserService) Logout(ctx context.Context, userID, sessionID string) error {
	deleted, err := s.sessions.Delete(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if !deleted {
		return autherror.ErrSessionNotFound
	}

	if err := s.users.SetOnlineStatus(ctx, userID, false, time.Now()); err != nil {
		return err
	}

	return nil
}

func (s *UserService) GetOnlineUsers(ctx context.Context) ([]dto.OnlineUserOutput, error) {
	users, err := s.users.GetOnlineUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OnlineUserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, dto.OnlineUserOutput{
			ID:           u.ID,
			FullName:     u.FullName,
			Email:        u.Email,
			LastLoginAt:  u.LastLoginAt,
			LastOnlineAt: u.LastOnlineAt,
		})
	}

	return out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
