package service

import (
	"context"

	"github.com/MKhiriev/go-kita-inventory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialVerifier checks login/password pairs against stored bcrypt hashes.
type CredentialVerifier interface {
	Verify(ctx context.Context, login, password string) (models.User, error)
	HashPassword(password string) (string, error)
	ChangePassword(ctx context.Context, userID int64, password string) error
}

// TokenIssuer issues and redeems remember-me and password-reset tokens. Only
// keyed hashes of the tokens are ever stored.
type TokenIssuer interface {
	IssueRememberToken(ctx context.Context, userID int64) (string, error)
	// RedeemRememberToken consumes token and returns its owner together with
	// the replacement token.
	RedeemRememberToken(ctx context.Context, token string) (models.User, string, error)
	RevokeRememberToken(ctx context.Context, userID int64) error

	IssuePasswordResetToken(ctx context.Context, userID int64) (string, error)
	ValidatePasswordResetToken(ctx context.Context, token string) (int64, error)
	// ConsumePasswordResetToken consumes token, stores passwordHash for the
	// user it belongs to and returns that user. Nothing changes on failure.
	ConsumePasswordResetToken(ctx context.Context, token, passwordHash string) (int64, error)

	PurgeExpired(ctx context.Context) (int64, error)
}

// BruteForceGuard tracks failed attempts per client IP and bans offenders.
type BruteForceGuard interface {
	IsBanned(ctx context.Context, ip string) (models.BanStatus, error)
	RecordFailedAttempt(ctx context.Context, ip, reason string) (models.IPBan, error)
	ResetFailedAttempts(ctx context.Context, ip string) error

	BanPermanently(ctx context.Context, ip, reason string) (models.IPBan, error)
	Unban(ctx context.Context, ip string) error
	ListBans(ctx context.Context) ([]models.IPBan, error)

	PurgeExpired(ctx context.Context) (int64, error)
}

// AppInfoService reports what is running.
type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
