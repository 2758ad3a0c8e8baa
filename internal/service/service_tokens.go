package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
	"github.com/MKhiriev/go-kita-inventory/models"
)

const tokenLength = 32

type tokenIssuer struct {
	userRepository          store.UserRepository
	passwordResetRepository store.PasswordResetRepository

	// hashKey keys the HMAC applied to every token before it is stored.
	hashKey string

	rememberDuration time.Duration
	resetDuration    time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenIssuer returns a [TokenIssuer] storing HMAC-SHA256 hashes keyed
// with cfg.App.TokenHashKey.
func NewTokenIssuer(users store.UserRepository, resets store.PasswordResetRepository, cfg *config.StructuredConfig, logger *logger.Logger) TokenIssuer {
	return &tokenIssuer{
		userRepository:          users,
		passwordResetRepository: resets,
		hashKey:                 cfg.App.TokenHashKey,
		rememberDuration:        cfg.Auth.RememberTokenDuration,
		resetDuration:           cfg.Auth.PasswordResetDuration,
		now:                     time.Now,
		logger:                  logger,
	}
}

// IssueRememberToken replaces any previous remember token of userID.
func (t *tokenIssuer) IssueRememberToken(ctx context.Context, userID int64) (string, error) {
	token, err := utils.GenerateToken(tokenLength)
	if err != nil {
		return "", err
	}

	expiresAt := t.now().Add(t.rememberDuration)
	if err = t.userRepository.SetRememberTokenHash(ctx, userID, t.hash(token), expiresAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenIssuer.IssueRememberToken").Int64("user_id", userID).Msg("failed to store remember token")
		return "", fmt.Errorf("store remember token: %w", err)
	}

	return token, nil
}

// RedeemRememberToken swaps the stored hash of token for the hash of a new
// token in one conditional update. Of two concurrent redemptions only one
// succeeds.
func (t *tokenIssuer) RedeemRememberToken(ctx context.Context, token string) (models.User, string, error) {
	if token == "" {
		return models.User{}, "", ErrTokenInvalid
	}

	next, err := utils.GenerateToken(tokenLength)
	if err != nil {
		return models.User{}, "", err
	}

	now := t.now()
	user, err := t.userRepository.RotateRememberTokenHash(ctx, t.hash(token), t.hash(next), now.Add(t.rememberDuration), now)
	if errors.Is(err, store.ErrRememberTokenNotFound) {
		return models.User{}, "", ErrTokenInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenIssuer.RedeemRememberToken").Msg("failed to rotate remember token")
		return models.User{}, "", fmt.Errorf("rotate remember token: %w", err)
	}

	return user, next, nil
}

func (t *tokenIssuer) RevokeRememberToken(ctx context.Context, userID int64) error {
	err := t.userRepository.ClearRememberTokenHash(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("revoke remember token: %w", err)
	}

	return nil
}

func (t *tokenIssuer) IssuePasswordResetToken(ctx context.Context, userID int64) (string, error) {
	token, err := utils.GenerateToken(tokenLength)
	if err != nil {
		return "", err
	}

	_, err = t.passwordResetRepository.CreateResetToken(ctx, models.PasswordReset{
		UserID:    userID,
		TokenHash: t.hash(token),
		ExpiresAt: t.now().Add(t.resetDuration),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenIssuer.IssuePasswordResetToken").Int64("user_id", userID).Msg("failed to store reset token")
		return "", fmt.Errorf("store reset token: %w", err)
	}

	return token, nil
}

// ValidatePasswordResetToken returns the owner of an unexpired, unused token.
func (t *tokenIssuer) ValidatePasswordResetToken(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrTokenInvalid
	}

	reset, err := t.passwordResetRepository.FindValidResetByHash(ctx, t.hash(token), t.now())
	if errors.Is(err, store.ErrResetNotFound) {
		return 0, ErrTokenInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("find reset token: %w", err)
	}

	return reset.UserID, nil
}

func (t *tokenIssuer) ConsumePasswordResetToken(ctx context.Context, token, passwordHash string) (int64, error) {
	if token == "" {
		return 0, ErrTokenInvalid
	}
	if passwordHash == "" {
		return 0, ErrInvalidDataProvided
	}

	reset, err := t.passwordResetRepository.ConsumeReset(ctx, t.hash(token), t.now(), passwordHash)
	if errors.Is(err, store.ErrResetNotFound) {
		return 0, ErrTokenInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("consume reset token: %w", err)
	}

	return reset.UserID, nil
}

// PurgeExpired removes expired and used reset tokens.
func (t *tokenIssuer) PurgeExpired(ctx context.Context) (int64, error) {
	return t.passwordResetRepository.DeleteExpiredResets(ctx, t.now())
}

func (t *tokenIssuer) hash(token string) string {
	return utils.HashString(token, t.hashKey)
}
