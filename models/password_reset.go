package models

import "time"

// PasswordReset is a single-use, time-limited token that authorizes one
// password change. Only the hash of the token is persisted.
type PasswordReset struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	TokenHash string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PasswordReset model.
func (p PasswordReset) TableName() string {
	return "password_resets"
}

// IsExpired reports whether the token is past its expiry at now.
func (p PasswordReset) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// IsUsed reports whether the token has already been consumed.
func (p PasswordReset) IsUsed() bool {
	return p.UsedAt != nil
}

// IsValid reports whether the token may still authorize a reset.
func (p PasswordReset) IsValid(now time.Time) bool {
	return !p.IsUsed() && !p.IsExpired(now)
}
