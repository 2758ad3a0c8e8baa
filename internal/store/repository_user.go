package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindByID retrieves a user by primary key.
func (r *userRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.FindByID", ErrUserNotFound, query, args)
}

// FindByLoginOrEmail retrieves the user whose login equals identifier or
// whose email equals it ignoring case.
func (r *userRepository) FindByLoginOrEmail(ctx context.Context, identifier string) (models.User, error) {
	query, args, err := buildFindUserByLoginOrEmailQuery(identifier)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.FindByLoginOrEmail", ErrUserNotFound, query, args)
}

// FindByRememberTokenHash retrieves the owner of an unexpired remember token.
func (r *userRepository) FindByRememberTokenHash(ctx context.Context, hash string, now time.Time) (models.User, error) {
	query, args, err := buildFindUserByRememberHashQuery(hash, now)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.FindByRememberTokenHash", ErrRememberTokenNotFound, query, args)
}

// UpdatePasswordHash stores a new bcrypt hash for userID.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	query, args, err := buildUpdatePasswordHashQuery(userID, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateUser(ctx, "*userRepository.UpdatePasswordHash", query, args)
}

// UpdateLastLogin stamps the last successful login.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	query, args, err := buildUpdateLastLoginQuery(userID, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateUser(ctx, "*userRepository.UpdateLastLogin", query, args)
}

// SetRememberTokenHash replaces the remember token of userID.
func (r *userRepository) SetRememberTokenHash(ctx context.Context, userID int64, hash string, expiresAt time.Time) error {
	query, args, err := buildSetRememberHashQuery(userID, hash, expiresAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateUser(ctx, "*userRepository.SetRememberTokenHash", query, args)
}

// RotateRememberTokenHash swaps oldHash for newHash in a single UPDATE guarded
// by the old hash and its expiry.
func (r *userRepository) RotateRememberTokenHash(ctx context.Context, oldHash, newHash string, expiresAt, now time.Time) (models.User, error) {
	query, args, err := buildRotateRememberHashQuery(oldHash, newHash, expiresAt, now)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.RotateRememberTokenHash", ErrRememberTokenNotFound, query, args)
}

// ClearRememberTokenHash forgets the remember token of userID. Clearing a
// user without a token is not an error.
func (r *userRepository) ClearRememberTokenHash(ctx context.Context, userID int64) error {
	query, args, err := buildClearRememberHashQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateUser(ctx, "*userRepository.ClearRememberTokenHash", query, args)
}

func (r *userRepository) queryUser(ctx context.Context, funcName string, notFound error, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, notFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) updateUser(ctx context.Context, funcName, query string, args []any) error {
	affected, err := r.execStatement(ctx, funcName, query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user         models.User
		rememberHash sql.NullString
		rememberExp  sql.NullTime
		lastLogin    sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Login,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&rememberHash,
		&rememberExp,
		&lastLogin,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.RememberTokenHash = rememberHash.String
	if rememberExp.Valid {
		user.RememberTokenExpiresAt = &rememberExp.Time
	}
	if lastLogin.Valid {
		user.LastLoginAt = &lastLogin.Time
	}

	return user, nil
}
