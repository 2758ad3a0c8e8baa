package models

import "time"

// BanStatus is the ban state of a client IP at a given instant.
type BanStatus int

const (
	// BanNone means the IP may attempt to log in.
	BanNone BanStatus = iota
	// BanTemporary means the IP is blocked until BannedUntil.
	BanTemporary
	// BanPermanent means the IP is blocked until an administrator lifts the ban.
	BanPermanent
)

// String returns the lowercase name of the status.
func (s BanStatus) String() string {
	switch s {
	case BanTemporary:
		return "temporary"
	case BanPermanent:
		return "permanent"
	default:
		return "none"
	}
}

// IPBan tracks failed login attempts and bans for one client IP.
type IPBan struct {
	// IP is the client address the record is keyed by.
	IP string `json:"ip"`

	// FailedAttempts counts consecutive failures since the last success or
	// the last escalation.
	FailedAttempts int `json:"failed_attempts"`

	// OffenseCount is the number of times the threshold was crossed. Each
	// offense doubles the next ban duration.
	OffenseCount int `json:"offense_count"`

	// LastAttemptAt is the time of the most recent failed attempt.
	LastAttemptAt time.Time `json:"last_attempt_at"`

	// BannedUntil is set while a temporary ban is (or was) in force.
	BannedUntil *time.Time `json:"banned_until,omitempty"`

	// IsPermanent bans never expire by time.
	IsPermanent bool `json:"is_permanent"`

	// Reason is a short free-form note, e.g. "invalid credentials" or an
	// administrator comment.
	Reason string `json:"reason"`
}

// TableName returns the name of the database table
// associated with the IPBan model.
func (b IPBan) TableName() string {
	return "ip_bans"
}

// Status returns the ban status at now.
func (b IPBan) Status(now time.Time) BanStatus {
	if b.IsPermanent {
		return BanPermanent
	}
	if b.BannedUntil != nil && now.Before(*b.BannedUntil) {
		return BanTemporary
	}

	return BanNone
}

// BanPolicy holds the escalation parameters applied when the failure counter
// reaches Threshold.
type BanPolicy struct {
	Threshold    int
	BaseDuration time.Duration
	MaxDuration  time.Duration
}

// DurationFor returns the ban length for the given number of previous
// offenses: BaseDuration doubled per offense and capped at MaxDuration.
func (p BanPolicy) DurationFor(offenses int) time.Duration {
	d := p.BaseDuration
	for i := 0; i < offenses; i++ {
		d *= 2
		if d >= p.MaxDuration || d <= 0 {
			return p.MaxDuration
		}
	}
	if d > p.MaxDuration {
		return p.MaxDuration
	}

	return d
}
