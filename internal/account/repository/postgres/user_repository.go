package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KingTechFoundation/learn/internal/account/domain"
	autherror "github.com/KingTechFoundation/learn/internal/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories need. pgxmock satisfies
// it too, which is what the repository tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, full_name, email, password_hash, is_verified,
		verification_token, verification_token_expiration,
		reset_token, reset_token_expiration,
		is_online, failed_login_attempts, account_locked,
		last_login_at, last_online_at, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.IsVerified,
		&user.VerificationToken, &user.VerificationTokenExpiration,
		&user.ResetToken, &user.ResetTokenExpiration,
		&user.IsOnline, &user.FailedLoginAttempts, &user.AccountLocked,
		&user.LastLoginAt, &user.LastOnlineAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, full_name, email, password_hash, is_verified,
			verification_token, verification_token_expiration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, user.ID, user.FullName, user.Email, user.PasswordHash, user.IsVerified,
		user.VerificationToken, user.VerificationTokenExpiration, user.CreatedAt, user.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return autherror.ErrEmailAlreadyRegistered
	}

	return err
}

// MarkVerified consumes a verification token: it flips is_verified and clears
// the token pair in one statement, conditioned on the token still matching
// and not being expired. Returns false when no row was hit.
func (r *UserRepository) MarkVerified(ctx context.Context, token string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET is_verified = TRUE, verification_token = NULL,
			verification_token_expiration = NULL, updated_at = $2
		WHERE verification_token = $1 AND verification_token_expiration > $2
	`, token, now)
	if err != nil {
		return false, fmt.Errorf("failed to mark user verified: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expiry time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET reset_token = $2, reset_token_expiration = $3, updated_at = NOW()
		WHERE email = $1
	`, email, token, expiry)
	if err != nil {
		return false, fmt.Errorf("failed to set reset token: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// FindByValidResetToken filters the expiration in SQL so callers never see a
// stale token as valid.
func (r *UserRepository) FindByValidResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users
		WHERE reset_token = $1 AND reset_token_expiration > $2 LIMIT 1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, token, now))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by reset token: %w", err)
	}

	return user, nil
}

// UpdatePasswordByResetToken rotates the password and consumes the token in a
// single conditional update, so concurrent resets with the same token cannot
// both succeed. A consumed password reset also clears any login lockout.
func (r *UserRepository) UpdatePasswordByResetToken(ctx context.Context, token, passwordHash string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_token_expiration = NULL,
			failed_login_attempts = 0, account_locked = FALSE, updated_at = $3
		WHERE reset_token = $1 AND reset_token_expiration > $3
	`, token, passwordHash, now)
	if err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) SetOnlineStatus(ctx context.Context, userID string, online bool, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET is_online = $2, last_online_at = $3, updated_at = $3 WHERE id = $1
	`, userID, online, now)

	return err
}

// RecordLoginFailure bumps the counter and locks the account in the same
// statement once the new value reaches the configured maximum.
func (r *UserRepository) RecordLoginFailure(ctx context.Context, userID string, maxAttempts int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1,
			account_locked = (failed_login_attempts + 1 >= $2),
			updated_at = NOW()
		WHERE id = $1
	`, userID, maxAttempts)

	return err
}

func (r *UserRepository) ResetLoginFailures(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET failed_login_attempts = 0, updated_at = NOW() WHERE id = $1
	`, userID)

	return err
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID string, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_login_at = $2, updated_at = $2 WHERE id = $1
	`, userID, now)

	return err
}

func (r *UserRepository) GetOnlineUsers(ctx context.Context) ([]domain.OnlineUser, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, full_name, email, last_login_at, last_online_at
		FROM users
		WHERE is_online = TRUE
		ORDER BY last_online_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get online users: %w", err)
	}
	defer rows.Close()

	var users []domain.OnlineUser
	for rows.Next() {
		var u domain.OnlineUser
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.LastLoginAt, &u.LastOnlineAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
