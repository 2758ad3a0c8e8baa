package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-kita-inventory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists staff accounts and their remember-me token.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, userID int64) (models.User, error)
	// FindByLoginOrEmail matches the login exactly or the email case-insensitively.
	FindByLoginOrEmail(ctx context.Context, identifier string) (models.User, error)
	FindByRememberTokenHash(ctx context.Context, hash string, now time.Time) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	SetRememberTokenHash(ctx context.Context, userID int64, hash string, expiresAt time.Time) error
	// RotateRememberTokenHash replaces oldHash with newHash only if oldHash is
	// stored and unexpired at now. It fails with ErrRememberTokenNotFound
	// otherwise, so a token can be redeemed at most once.
	RotateRememberTokenHash(ctx context.Context, oldHash, newHash string, expiresAt, now time.Time) (models.User, error)
	ClearRememberTokenHash(ctx context.Context, userID int64) error
}

// PasswordResetRepository persists hashed password-reset tokens.
type PasswordResetRepository interface {
	CreateResetToken(ctx context.Context, reset models.PasswordReset) (models.PasswordReset, error)
	FindValidResetByHash(ctx context.Context, hash string, now time.Time) (models.PasswordReset, error)
	// ConsumeReset marks a valid token used and stores passwordHash for its
	// owner in one transaction. It fails with ErrResetNotFound
	// when the token is unknown, expired or already used.
	ConsumeReset(ctx context.Context, hash string, now time.Time, passwordHash string) (models.PasswordReset, error)
	DeleteExpiredResets(ctx context.Context, before time.Time) (int64, error)
}

// IPBanRepository persists per-IP failure counters and bans.
type IPBanRepository interface {
	GetBan(ctx context.Context, ip string) (models.IPBan, error)
	ListBans(ctx context.Context) ([]models.IPBan, error)
	// UpsertBanOnFailure atomically increments the failure counter of ip,
	// creating the record on first failure.
	UpsertBanOnFailure(ctx context.Context, ip, reason string, now time.Time) (models.IPBan, error)
	// EscalateBan applies policy if the counter of ip has reached the
	// threshold: it extends the ban, increments the offense count and zeroes
	// the counter. It returns ErrNoEscalation when the counter is below the
	// threshold, e.g. because a concurrent request escalated first.
	EscalateBan(ctx context.Context, ip string, policy models.BanPolicy, now time.Time) (models.IPBan, error)
	ResetBanCounter(ctx context.Context, ip string) error
	InsertManualBan(ctx context.Context, ip, reason string, now time.Time) (models.IPBan, error)
	DeleteBan(ctx context.Context, ip string) error
	// DeleteExpiredBans removes non-permanent records that are not banned at
	// now and whose last failure happened before lastAttemptBefore.
	DeleteExpiredBans(ctx context.Context, now, lastAttemptBefore time.Time) (int64, error)
}

// ChangelogRepository is the write-only audit trail.
type ChangelogRepository interface {
	Record(ctx context.Context, entry models.ChangelogEntry) error
}

// SessionStore persists browser sessions.
type SessionStore interface {
	Load(ctx context.Context, id string) (*models.SessionRecord, error)
	Save(ctx context.Context, rec *models.SessionRecord) error
	// Rotate stores rec under its (new) ID and removes oldID in one step.
	// A positive grace keeps oldID for that long as an alias of rec.ID.
	Rotate(ctx context.Context, oldID string, rec *models.SessionRecord, grace time.Duration) error
	Delete(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, lastActivityBefore time.Time) (int, error)
	Close() error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
