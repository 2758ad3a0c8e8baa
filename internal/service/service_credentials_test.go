package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/mock"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestVerifier(t *testing.T, users store.UserRepository) *credentialVerifier {
	t.Helper()
	v, err := NewCredentialVerifier(users, config.Auth{BcryptCost: bcrypt.MinCost}, logger.Nop())
	require.NoError(t, err)
	return v.(*credentialVerifier)
}

func seedUser(t *testing.T, users store.UserRepository, v CredentialVerifier, login, password string) models.User {
	t.Helper()
	hash, err := v.HashPassword(password)
	require.NoError(t, err)

	user, err := users.CreateUser(context.Background(), models.User{
		Login:        login,
		Email:        login + "@kita.example",
		Name:         login,
		PasswordHash: hash,
	})
	require.NoError(t, err)
	return user
}

func TestVerify(t *testing.T) {
	users := store.NewMemoryUserRepository()
	v := newTestVerifier(t, users)
	anna := seedUser(t, users, v, "anna", "Sandkasten-2026")
	ctx := context.Background()

	tests := []struct {
		name     string
		login    string
		password string
		wantErr  error
	}{
		{name: "by login", login: "anna", password: "Sandkasten-2026"},
		{name: "by email ignoring case", login: "ANNA@kita.example", password: "Sandkasten-2026"},
		{name: "wrong password", login: "anna", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "unknown user", login: "ghost", password: "Sandkasten-2026", wantErr: ErrInvalidCredentials},
		{name: "empty password", login: "anna", password: "", wantErr: ErrInvalidCredentials},
		{name: "empty login", login: "", password: "x", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := v.Verify(ctx, tt.login, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, user.UserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, anna.UserID, user.UserID)
		})
	}
}

func TestVerify_StorageErrorIsNotMaskedAsBadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	v := newTestVerifier(t, users)

	dbErr := errors.New("connection refused")
	users.EXPECT().FindByLoginOrEmail(gomock.Any(), "anna").Return(models.User{}, dbErr)

	_, err := v.Verify(context.Background(), "anna", "pw")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	users := store.NewMemoryUserRepository()
	v := newTestVerifier(t, users)
	user := seedUser(t, users, v, "ben", "old-password")
	ctx := context.Background()

	require.NoError(t, v.ChangePassword(ctx, user.UserID, "new-password"))

	_, err := v.Verify(ctx, "ben", "old-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = v.Verify(ctx, "ben", "new-password")
	assert.NoError(t, err)

	assert.ErrorIs(t, v.ChangePassword(ctx, user.UserID, ""), ErrInvalidDataProvided)
	assert.ErrorIs(t, v.ChangePassword(ctx, 999, "whatever"), store.ErrUserNotFound)
}
