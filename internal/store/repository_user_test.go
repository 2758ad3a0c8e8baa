package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"user_id", "login", "email", "name", "password_hash",
	"remember_token_hash", "remember_token_expires_at", "last_login_at", "created_at",
}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{DB: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login,email,name,password_hash)")).
		WithArgs("anna", "anna@kita.example", "Anna", "hash").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "anna", "anna@kita.example", "Anna", "hash", nil, nil, nil, now))

	created, err := repo.CreateUser(context.Background(), models.User{
		Login: "anna", Email: "anna@kita.example", Name: "Anna", PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Empty(t, created.RememberTokenHash)
	assert.Nil(t, created.LastLoginAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "anna"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "anna"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindByLoginOrEmail(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	lastLogin := time.Now().Add(-time.Hour)

	t.Run("found with nullable columns", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE (login = $1 OR lower(email) = $2)")).
			WithArgs("anna", "anna").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(4, "anna", "anna@kita.example", "Anna", "hash", "rh", expires, lastLogin, time.Now()))

		user, err := repo.FindByLoginOrEmail(context.Background(), "anna")
		require.NoError(t, err)
		assert.Equal(t, int64(4), user.UserID)
		assert.Equal(t, "rh", user.RememberTokenHash)
		require.NotNil(t, user.RememberTokenExpiresAt)
		assert.True(t, expires.Equal(*user.RememberTokenExpiresAt))
		require.NotNil(t, user.LastLoginAt)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := repo.FindByLoginOrEmail(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("FROM users").WillReturnError(errors.New("boom"))

		_, err := repo.FindByLoginOrEmail(context.Background(), "anna")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestRotateRememberTokenHash(t *testing.T) {
	now := time.Now()
	expires := now.Add(30 * 24 * time.Hour)

	t.Run("swaps the hash", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET remember_token_hash = $1")).
			WithArgs("new", expires, "old", now).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(2, "ben", "ben@kita.example", "Ben", "hash", "new", expires, nil, now))

		user, err := repo.RotateRememberTokenHash(context.Background(), "old", "new", expires, now)
		require.NoError(t, err)
		assert.Equal(t, "new", user.RememberTokenHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second redemption matches nothing", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("UPDATE users").WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := repo.RotateRememberTokenHash(context.Background(), "old", "newer", expires, now)
		assert.ErrorIs(t, err, ErrRememberTokenNotFound)
	})
}

func TestUpdatePasswordHash(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash = $1 WHERE user_id = $2")).
			WithArgs("h", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePasswordHash(context.Background(), 1, "h"))
	})

	t.Run("no such user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePasswordHash(context.Background(), 99, "h"), ErrUserNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users").WillReturnError(sql.ErrConnDone)

		assert.ErrorIs(t, repo.UpdatePasswordHash(context.Background(), 1, "h"), ErrExecutingStatement)
	})
}

func TestWithRetry_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	repo.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectExec("UPDATE users").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLastLogin(context.Background(), 1, time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRetry_DoesNotRetryConstraintViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	repo.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectExec("UPDATE users").WillReturnError(pgError(pgerrcode.CheckViolation))

	assert.Error(t, repo.UpdateLastLogin(context.Background(), 1, time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
