package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KingTechFoundation/learn/internal/account/domain"
	repo "github.com/KingTechFoundation/learn/internal/account/repository/postgres"
	autherror "github.com/KingTechFoundation/learn/internal/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"id", "full_name", "email", "password_hash", "is_verified",
	"verification_token", "verification_token_expiration",
	"reset_token", "reset_token_expiration",
	"is_online", "failed_login_attempts", "account_locked",
	"last_login_at", "last_online_at", "created_at", "updated_at",
}

func userRow(id, email string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(userColumns).
		AddRow(id, "Test User", email, "hash", true,
			nil, nil, nil, nil,
			false, 0, false,
			nil, nil, now, now)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, full_name").
			WithArgs("test@example.com").
			WillReturnRows(userRow("user-123", "test@example.com"))

		user, err := r.GetByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, full_name").
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, full_name").
			WithArgs("test@example.com").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, "test@example.com")
		assert.Error(t, err)
	})
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	token := "verification-token"
	expiry := time.Now().Add(24 * time.Hour)
	now := time.Now()

	user := &domain.User{
		ID:                          "user-123",
		FullName:                    "Test User",
		Email:                       "new@example.com",
		PasswordHash:                "hash",
		VerificationToken:           &token,
		VerificationTokenExpiration: &expiry,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.FullName, user.Email, user.PasswordHash, user.IsVerified,
				user.VerificationToken, user.VerificationTokenExpiration, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, user))
	})

	t.Run("unique violation maps to duplicate email", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.FullName, user.Email, user.PasswordHash, user.IsVerified,
				user.VerificationToken, user.VerificationTokenExpiration, user.CreatedAt, user.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err := r.Create(ctx, user)
		assert.ErrorIs(t, err, autherror.ErrEmailAlreadyRegistered)
	})
}

func TestUserRepository_MarkVerified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("token consumed", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("good-token", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := r.MarkVerified(ctx, "good-token", now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown or expired token is a no-op", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("stale-token", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := r.MarkVerified(ctx, "stale-token", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserRepository_SetResetToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)

	t.Run("known email", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("test@example.com", "reset-token", expiry).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := r.SetResetToken(ctx, "test@example.com", "reset-token", expiry)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown email", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("ghost@example.com", "reset-token", expiry).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := r.SetResetToken(ctx, "ghost@example.com", "reset-token", expiry)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserRepository_FindByValidResetToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("valid token", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, full_name").
			WithArgs("reset-token", now).
			WillReturnRows(userRow("user-123", "test@example.com"))

		user, err := r.FindByValidResetToken(ctx, "reset-token", now)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("expired token filtered by the query", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, full_name").
			WithArgs("stale-token", now).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.FindByValidResetToken(ctx, "stale-token", now)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_UpdatePasswordByResetToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("winner consumes the token", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("reset-token", "new-hash", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := r.UpdatePasswordByResetToken(ctx, "reset-token", "new-hash", now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("loser sees zero rows", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("reset-token", "new-hash", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := r.UpdatePasswordByResetToken(ctx, "reset-token", "new-hash", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserRepository_RecordLoginFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)

	mock.ExpectExec("UPDATE users").
		WithArgs("user-123", 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, r.RecordLoginFailure(context.Background(), "user-123", 5))
}

func TestUserRepository_SetOnlineStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	now := time.Now()

	mock.ExpectExec("UPDATE users").
		WithArgs("user-123", true, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, r.SetOnlineStatus(context.Background(), "user-123", true, now))
}

func TestUserRepository_GetOnlineUsers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	lastOnline := time.Now()

	mock.ExpectQuery("SELECT id, full_name, email, last_login_at, last_online_at").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "last_login_at", "last_online_at"}).
			AddRow("user-1", "A", "a@example.com", nil, &lastOnline).
			AddRow("user-2", "B", "b@example.com", nil, nil))

	users, err := r.GetOnlineUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@example.com", users[0].Email)
	assert.Nil(t, users[1].LastOnlineAt)
}
