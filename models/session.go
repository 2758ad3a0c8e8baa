package models

import "time"

// SessionRecord is the persisted state of one browser session.
type SessionRecord struct {
	ID string `json:"id"`

	// UserID is zero for anonymous sessions.
	UserID int64         `json:"user_id,omitempty"`
	User   *UserSnapshot `json:"user,omitempty"`

	Values   map[string]string `json:"values,omitempty"`
	Flash    map[string]string `json:"flash,omitempty"`
	OldInput map[string]string `json:"old_input,omitempty"`

	CSRFToken    string    `json:"csrf_token,omitempty"`
	CSRFIssuedAt time.Time `json:"csrf_issued_at"`

	CreatedAt    time.Time `json:"created_at"`
	RotatedAt    time.Time `json:"rotated_at"`
	LastActivity time.Time `json:"last_activity"`

	// MovedTo is set on the short-lived alias left behind by a periodic
	// rotation. It names the identifier the session lives under now.
	MovedTo string `json:"moved_to,omitempty"`
}

// NewSessionRecord returns an empty session stamped at now.
func NewSessionRecord(id string, now time.Time) *SessionRecord {
	return &SessionRecord{
		ID:           id,
		Values:       map[string]string{},
		Flash:        map[string]string{},
		OldInput:     map[string]string{},
		CreatedAt:    now,
		RotatedAt:    now,
		LastActivity: now,
	}
}

// Normalize replaces nil maps with empty ones. Decoded records need it
// because empty maps are omitted on the wire.
func (s *SessionRecord) Normalize() {
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	if s.Flash == nil {
		s.Flash = map[string]string{}
	}
	if s.OldInput == nil {
		s.OldInput = map[string]string{}
	}
}

// NewSessionAlias returns the record left under oldID after the session
// moved to newID at now.
func NewSessionAlias(oldID, newID string, now time.Time) *SessionRecord {
	return &SessionRecord{
		ID:           oldID,
		MovedTo:      newID,
		CreatedAt:    now,
		RotatedAt:    now,
		LastActivity: now,
	}
}

// IsAlias reports whether the record only points at another session.
func (s *SessionRecord) IsAlias() bool {
	return s.MovedTo != ""
}

// IsIdle reports whether the session has been inactive for longer than lifetime.
func (s *SessionRecord) IsIdle(now time.Time, lifetime time.Duration) bool {
	return lifetime > 0 && now.Sub(s.LastActivity) > lifetime
}

// Clone returns a deep copy of the record.
func (s *SessionRecord) Clone() *SessionRecord {
	c := *s
	c.Values = cloneMap(s.Values)
	c.Flash = cloneMap(s.Flash)
	c.OldInput = cloneMap(s.OldInput)
	if s.User != nil {
		u := *s.User
		c.User = &u
	}

	return &c
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
