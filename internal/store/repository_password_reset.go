package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/models"
)

// passwordResetRepository is the PostgreSQL-backed implementation of
// [PasswordResetRepository].
type passwordResetRepository struct {
	*DB
	logger *logger.Logger
}

// NewPasswordResetRepository constructs a [PasswordResetRepository].
func NewPasswordResetRepository(db *DB, logger *logger.Logger) PasswordResetRepository {
	logger.Debug().Msg("creating password reset repository")
	return &passwordResetRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *passwordResetRepository) CreateResetToken(ctx context.Context, reset models.PasswordReset) (models.PasswordReset, error) {
	query, args, err := buildCreateResetQuery(reset)
	if err != nil {
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryReset(ctx, "*passwordResetRepository.CreateResetToken", query, args)
}

func (r *passwordResetRepository) FindValidResetByHash(ctx context.Context, hash string, now time.Time) (models.PasswordReset, error) {
	query, args, err := buildFindValidResetQuery(hash, now)
	if err != nil {
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryReset(ctx, "*passwordResetRepository.FindValidResetByHash", query, args)
}

// ConsumeReset stamps used_at with an UPDATE that only matches an unused,
// unexpired token and stores the new password hash of its owner. Both run in
// one transaction, so a failed password update leaves the token usable.
func (r *passwordResetRepository) ConsumeReset(ctx context.Context, hash string, now time.Time, passwordHash string) (models.PasswordReset, error) {
	query, args, err := buildMarkResetUsedQuery(hash, now)
	if err != nil {
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reset models.PasswordReset
	err = r.withRetry(ctx, func() error {
		var txErr error
		reset, txErr = r.consumeReset(ctx, query, args, passwordHash)
		return txErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PasswordReset{}, ErrResetNotFound
	case errors.Is(err, ErrUserNotFound):
		return models.PasswordReset{}, err
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*passwordResetRepository.ConsumeReset").Msg("error consuming password reset")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return reset, nil
}

func (r *passwordResetRepository) consumeReset(ctx context.Context, markQuery string, markArgs []any, passwordHash string) (models.PasswordReset, error) {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	reset, err := scanReset(tx.QueryRowContext(ctx, markQuery, markArgs...))
	if err != nil {
		return models.PasswordReset{}, err
	}

	query, args, err := buildUpdatePasswordHashQuery(reset.UserID, passwordHash)
	if err != nil {
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return models.PasswordReset{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.PasswordReset{}, err
	}
	if affected == 0 {
		return models.PasswordReset{}, ErrUserNotFound
	}

	if err = tx.Commit(); err != nil {
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return reset, nil
}

func (r *passwordResetRepository) DeleteExpiredResets(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredResetsQuery(before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execStatement(ctx, "*passwordResetRepository.DeleteExpiredResets", query, args)
}

func (r *passwordResetRepository) queryReset(ctx context.Context, funcName, query string, args []any) (models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.withRetry(ctx, func() error {
		var scanErr error
		reset, scanErr = scanReset(r.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.PasswordReset{}, ErrResetNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying password reset")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reset, nil
}

func scanReset(row rowScanner) (models.PasswordReset, error) {
	var (
		reset  models.PasswordReset
		usedAt sql.NullTime
	)

	if err := row.Scan(&reset.ID, &reset.UserID, &reset.TokenHash, &reset.ExpiresAt, &usedAt, &reset.CreatedAt); err != nil {
		return models.PasswordReset{}, err
	}
	if usedAt.Valid {
		reset.UsedAt = &usedAt.Time
	}

	return reset, nil
}
