package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-kita-inventory/models"
	sq "github.com/Masterminds/squirrel"
)

// psql renders $N placeholders for PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"user_id", "login", "email", "name", "password_hash",
		"remember_token_hash", "remember_token_expires_at", "last_login_at", "created_at",
	}
	resetColumns = []string{"id", "user_id", "token_hash", "expires_at", "used_at", "created_at"}
	banColumns   = []string{
		"ip", "failed_attempts", "offense_count", "last_attempt_at", "banned_until", "is_permanent", "reason",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("login", "email", "name", "password_hash").
		Values(user.Login, user.Email, user.Name, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildFindUserByLoginOrEmailQuery(identifier string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Or{
			sq.Eq{"login": identifier},
			sq.Eq{"lower(email)": strings.ToLower(identifier)},
		}).
		OrderBy("user_id").
		Limit(1).
		ToSql()
}

func buildFindUserByRememberHashQuery(hash string, now time.Time) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"remember_token_hash": hash}).
		Where(sq.Gt{"remember_token_expires_at": now}).
		ToSql()
}

func buildUpdatePasswordHashQuery(userID int64, passwordHash string) (string, []any, error) {
	return psql.Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateLastLoginQuery(userID int64, at time.Time) (string, []any, error) {
	return psql.Update("users").
		Set("last_login_at", at).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSetRememberHashQuery(userID int64, hash string, expiresAt time.Time) (string, []any, error) {
	return psql.Update("users").
		Set("remember_token_hash", hash).
		Set("remember_token_expires_at", expiresAt).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildRotateRememberHashQuery is a compare-and-swap on the stored hash:
// two concurrent redemptions of the same token cannot both match.
func buildRotateRememberHashQuery(oldHash, newHash string, expiresAt, now time.Time) (string, []any, error) {
	return psql.Update("users").
		Set("remember_token_hash", newHash).
		Set("remember_token_expires_at", expiresAt).
		Where(sq.Eq{"remember_token_hash": oldHash}).
		Where(sq.Gt{"remember_token_expires_at": now}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildClearRememberHashQuery(userID int64) (string, []any, error) {
	return psql.Update("users").
		Set("remember_token_hash", nil).
		Set("remember_token_expires_at", nil).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ── password_resets ──────────────────────────────────────────────────────────

func buildCreateResetQuery(reset models.PasswordReset) (string, []any, error) {
	return psql.Insert("password_resets").
		Columns("user_id", "token_hash", "expires_at").
		Values(reset.UserID, reset.TokenHash, reset.ExpiresAt).
		Suffix(returning(resetColumns)).
		ToSql()
}

func buildFindValidResetQuery(hash string, now time.Time) (string, []any, error) {
	return psql.Select(resetColumns...).
		From("password_resets").
		Where(sq.Eq{"token_hash": hash}).
		Where(sq.Eq{"used_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

func buildMarkResetUsedQuery(hash string, now time.Time) (string, []any, error) {
	return psql.Update("password_resets").
		Set("used_at", now).
		Where(sq.Eq{"token_hash": hash}).
		Where(sq.Eq{"used_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		Suffix(returning(resetColumns)).
		ToSql()
}

func buildDeleteExpiredResetsQuery(before time.Time) (string, []any, error) {
	return psql.Delete("password_resets").
		Where(sq.Or{
			sq.Lt{"expires_at": before},
			sq.NotEq{"used_at": nil},
		}).
		ToSql()
}

// ── ip_bans ──────────────────────────────────────────────────────────────────

func buildGetBanQuery(ip string) (string, []any, error) {
	return psql.Select(banColumns...).
		From("ip_bans").
		Where(sq.Eq{"ip": ip}).
		ToSql()
}

func buildListBansQuery() (string, []any, error) {
	return psql.Select(banColumns...).
		From("ip_bans").
		OrderBy("last_attempt_at DESC").
		ToSql()
}

func buildUpsertBanOnFailureQuery(ip, reason string, now time.Time) (string, []any, error) {
	return psql.Insert("ip_bans").
		Columns("ip", "failed_attempts", "last_attempt_at", "reason").
		Values(ip, 1, now, reason).
		Suffix("ON CONFLICT (ip) DO UPDATE SET " +
			"failed_attempts = ip_bans.failed_attempts + 1, " +
			"last_attempt_at = EXCLUDED.last_attempt_at, " +
			"reason = EXCLUDED.reason " +
			returning(banColumns)).
		ToSql()
}

// buildEscalateBanQuery extends the ban to
// max(existing, now + min(max, base * 2^offense_count)). The right-hand sides
// of SET see the pre-update row, so offense_count is the previous value.
func buildEscalateBanQuery(ip string, policy models.BanPolicy, now time.Time) (string, []any, error) {
	return psql.Update("ip_bans").
		Set("banned_until", sq.Expr(
			"GREATEST(COALESCE(banned_until, ?), ?::timestamptz + make_interval(secs => LEAST(?::float8, ?::float8 * power(2, offense_count))))",
			now, now, policy.MaxDuration.Seconds(), policy.BaseDuration.Seconds(),
		)).
		Set("offense_count", sq.Expr("offense_count + 1")).
		Set("failed_attempts", 0).
		Where(sq.Eq{"ip": ip}).
		Where(sq.GtOrEq{"failed_attempts": policy.Threshold}).
		Suffix(returning(banColumns)).
		ToSql()
}

func buildResetBanCounterQuery(ip string) (string, []any, error) {
	return psql.Update("ip_bans").
		Set("failed_attempts", 0).
		Where(sq.Eq{"ip": ip}).
		ToSql()
}

func buildInsertManualBanQuery(ip, reason string, now time.Time) (string, []any, error) {
	return psql.Insert("ip_bans").
		Columns("ip", "is_permanent", "reason", "last_attempt_at").
		Values(ip, true, reason, now).
		Suffix("ON CONFLICT (ip) DO UPDATE SET is_permanent = TRUE, reason = EXCLUDED.reason " +
			returning(banColumns)).
		ToSql()
}

func buildDeleteBanQuery(ip string) (string, []any, error) {
	return psql.Delete("ip_bans").
		Where(sq.Eq{"ip": ip}).
		ToSql()
}

func buildDeleteExpiredBansQuery(now, lastAttemptBefore time.Time) (string, []any, error) {
	return psql.Delete("ip_bans").
		Where(sq.Eq{"is_permanent": false}).
		Where(sq.Or{
			sq.Eq{"banned_until": nil},
			sq.LtOrEq{"banned_until": now},
		}).
		Where(sq.Lt{"last_attempt_at": lastAttemptBefore}).
		ToSql()
}

// ── changelog ────────────────────────────────────────────────────────────────

func buildRecordChangelogQuery(entry models.ChangelogEntry) (string, []any, error) {
	var userID any
	if entry.UserID != 0 {
		userID = entry.UserID
	}

	return psql.Insert("changelog").
		Columns("user_id", "action", "detail", "created_at").
		Values(userID, entry.Action, entry.Detail, entry.CreatedAt).
		ToSql()
}
