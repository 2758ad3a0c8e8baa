package models

import "time"

// User represents a staff account that can sign in to the inventory.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Email is unique as well and may be used instead of Login when
	// signing in or requesting a password reset.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password. Never plaintext.
	PasswordHash string `json:"-"`

	// RememberTokenHash is the keyed hash of the single active remember-me
	// token. Empty when the user has no remembered device.
	RememberTokenHash string `json:"-"`

	// RememberTokenExpiresAt is the expiry of the remember-me token.
	RememberTokenExpiresAt *time.Time `json:"-"`

	// LastLoginAt is stamped on every successful login.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Snapshot returns the minimal identity copy that is kept in the session.
func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{
		UserID: u.UserID,
		Login:  u.Login,
		Name:   u.Name,
		Email:  u.Email,
	}
}

// HasValidRememberToken reports whether a remember token is stored and has not
// expired at now.
func (u User) HasValidRememberToken(now time.Time) bool {
	return u.RememberTokenHash != "" && u.RememberTokenExpiresAt != nil && now.Before(*u.RememberTokenExpiresAt)
}

// UserSnapshot is the part of the user record stored in the session.
type UserSnapshot struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
