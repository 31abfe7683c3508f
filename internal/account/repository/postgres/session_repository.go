package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KingTechFoundation/learn/internal/account/domain"
	"github.com/jackc/pgx/v5"
)

type SessionRepository struct {
	db DB
}

func NewSessionRepository(db DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_sessions (session_id, user_id, device_id, created_at, last_activity_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, session.SessionID, session.UserID, session.DeviceID,
		session.CreatedAt, session.LastActivityAt, session.ExpiresAt)

	return err
}

func (r *SessionRepository) Find(ctx context.Context, userID, sessionID string) (*domain.Session, error) {
	row := r.db.QueryRow(ctx, `
		SELECT session_id, user_id, device_id, created_at, last_activity_at, expires_at
		FROM user_sessions
		WHERE user_id = $1 AND session_id = $2
		LIMIT 1
	`, userID, sessionID)

	var session domain.Session
	err := row.Scan(&session.SessionID, &session.UserID, &session.DeviceID,
		&session.CreatedAt, &session.LastActivityAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID, sessionID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM user_sessions WHERE user_id = $1 AND session_id = $2
	`, userID, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, userID string, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM user_sessions WHERE user_id = $1 AND expires_at <= $2
	`, userID, now)

	return err
}

func (r *SessionRepository) Touch(ctx context.Context, userID, sessionID string, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE user_sessions SET last_activity_at = $3 WHERE user_id = $1 AND session_id = $2
	`, userID, sessionID, now)

	return err
}

func (r *SessionRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Session, error) {
	rows, err := r.db.Query(ctx, `
		SELECT session_id, user_id, device_id, created_at, last_activity_at, expires_at
		FROM user_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.SessionID, &s.UserID, &s.DeviceID,
			&s.CreatedAt, &s.LastActivityAt, &s.ExpiresAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
