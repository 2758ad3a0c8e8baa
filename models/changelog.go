package models

import "time"

// ChangelogEntry is one audit line describing who did what.
type ChangelogEntry struct {
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// Changelog actions written by the access-control layer.
const (
	ActionLogin         = "auth.login"
	ActionRememberLogin = "auth.login.remember"
	ActionLogout        = "auth.logout"
	ActionPasswordReset = "auth.password.reset"
	ActionBanCreated    = "ban.created"
	ActionBanLifted     = "ban.lifted"
)
