package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/mock"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHashKey = "test-token-key"

func tokenConfig() *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.App.TokenHashKey = testHashKey
	cfg.Auth.RememberTokenDuration = 30 * 24 * time.Hour
	cfg.Auth.PasswordResetDuration = time.Hour
	return cfg
}

func newTestIssuer(t *testing.T) (*tokenIssuer, *store.MemoryUserRepository, *store.MemoryPasswordResetRepository, *time.Time) {
	t.Helper()
	users := store.NewMemoryUserRepository()
	resets := store.NewMemoryPasswordResetRepository(users)
	issuer := NewTokenIssuer(users, resets, tokenConfig(), logger.Nop()).(*tokenIssuer)

	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return now }

	return issuer, users, resets, &now
}

func TestRememberToken_IssueAndRedeemOnce(t *testing.T) {
	issuer, users, _, _ := newTestIssuer(t)
	ctx := context.Background()
	user, err := users.CreateUser(ctx, models.User{Login: "anna"})
	require.NoError(t, err)

	token, err := issuer.IssueRememberToken(ctx, user.UserID)
	require.NoError(t, err)

	stored, err := users.FindByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, token, stored.RememberTokenHash, "plaintext must never be stored")
	assert.Equal(t, utils.HashString(token, testHashKey), stored.RememberTokenHash)

	redeemed, next, err := issuer.RedeemRememberToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, redeemed.UserID)
	assert.NotEqual(t, token, next)

	_, _, err = issuer.RedeemRememberToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid, "a redeemed token cannot be used twice")

	_, _, err = issuer.RedeemRememberToken(ctx, next)
	assert.NoError(t, err, "the rotated token is valid")
}

func TestRememberToken_NewIssueReplacesOld(t *testing.T) {
	issuer, users, _, _ := newTestIssuer(t)
	ctx := context.Background()
	user, _ := users.CreateUser(ctx, models.User{Login: "anna"})

	first, err := issuer.IssueRememberToken(ctx, user.UserID)
	require.NoError(t, err)
	second, err := issuer.IssueRememberToken(ctx, user.UserID)
	require.NoError(t, err)

	_, _, err = issuer.RedeemRememberToken(ctx, first)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, _, err = issuer.RedeemRememberToken(ctx, second)
	assert.NoError(t, err)
}

func TestRememberToken_ExpiredAndRevoked(t *testing.T) {
	issuer, users, _, now := newTestIssuer(t)
	ctx := context.Background()
	user, _ := users.CreateUser(ctx, models.User{Login: "anna"})

	token, err := issuer.IssueRememberToken(ctx, user.UserID)
	require.NoError(t, err)

	*now = now.Add(31 * 24 * time.Hour)
	_, _, err = issuer.RedeemRememberToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	token, err = issuer.IssueRememberToken(ctx, user.UserID)
	require.NoError(t, err)
	require.NoError(t, issuer.RevokeRememberToken(ctx, user.UserID))
	_, _, err = issuer.RedeemRememberToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, _, err = issuer.RedeemRememberToken(ctx, "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordResetToken(t *testing.T) {
	issuer, users, _, now := newTestIssuer(t)
	ctx := context.Background()
	user, _ := users.CreateUser(ctx, models.User{Login: "anna"})

	fresh, err := issuer.IssuePasswordResetToken(ctx, user.UserID)
	require.NoError(t, err)

	userID, err := issuer.ValidatePasswordResetToken(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, userID)

	t.Run("unknown", func(t *testing.T) {
		_, err := issuer.ValidatePasswordResetToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("used before expiry", func(t *testing.T) {
		token, err := issuer.IssuePasswordResetToken(ctx, user.UserID)
		require.NoError(t, err)

		consumedBy, err := issuer.ConsumePasswordResetToken(ctx, token, "new-hash")
		require.NoError(t, err)
		assert.Equal(t, user.UserID, consumedBy)

		stored, err := users.FindByID(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", stored.PasswordHash)

		_, err = issuer.ValidatePasswordResetToken(ctx, token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
		_, err = issuer.ConsumePasswordResetToken(ctx, token, "other-hash")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("empty hash", func(t *testing.T) {
		_, err := issuer.ConsumePasswordResetToken(ctx, fresh, "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		_, err = issuer.ValidatePasswordResetToken(ctx, fresh)
		assert.NoError(t, err, "rejected call must not spend the token")
	})

	t.Run("expired", func(t *testing.T) {
		*now = now.Add(time.Hour + time.Second)
		_, err := issuer.ValidatePasswordResetToken(ctx, fresh)
		assert.ErrorIs(t, err, ErrTokenInvalid)
		_, err = issuer.ConsumePasswordResetToken(ctx, fresh, "new-hash")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("purge", func(t *testing.T) {
		n, err := issuer.PurgeExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}

func TestRedeemRememberToken_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	issuer := NewTokenIssuer(users, store.NewMemoryPasswordResetRepository(users), tokenConfig(), logger.Nop())

	dbErr := errors.New("db down")
	users.EXPECT().
		RotateRememberTokenHash(gomock.Any(), utils.HashString("tok", testHashKey), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, dbErr)

	_, _, err := issuer.RedeemRememberToken(context.Background(), "tok")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestConsumePasswordResetToken_FailedUpdateKeepsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	resets := store.NewMemoryPasswordResetRepository(users)
	issuer := NewTokenIssuer(users, resets, tokenConfig(), logger.Nop())
	ctx := context.Background()

	_, err := resets.CreateResetToken(ctx, models.PasswordReset{
		UserID:    4,
		TokenHash: utils.HashString("tok", testHashKey),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	dbErr := errors.New("db down")
	gomock.InOrder(
		users.EXPECT().UpdatePasswordHash(gomock.Any(), int64(4), "new-hash").Return(dbErr),
		users.EXPECT().UpdatePasswordHash(gomock.Any(), int64(4), "new-hash").Return(nil),
	)

	_, err = issuer.ConsumePasswordResetToken(ctx, "tok", "new-hash")
	assert.ErrorIs(t, err, dbErr)

	userID, err := issuer.ValidatePasswordResetToken(ctx, "tok")
	require.NoError(t, err, "the link must survive a failed password update")
	assert.Equal(t, int64(4), userID)

	userID, err = issuer.ConsumePasswordResetToken(ctx, "tok", "new-hash")
	require.NoError(t, err)
	assert.Equal(t, int64(4), userID)
}
