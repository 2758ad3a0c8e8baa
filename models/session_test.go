package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionRecord_Normalize(t *testing.T) {
	rec := &SessionRecord{ID: "sid", Values: map[string]string{"k": "v"}}
	rec.Normalize()

	assert.Equal(t, "v", rec.Values["k"])
	assert.NotNil(t, rec.Flash)
	assert.NotNil(t, rec.OldInput)
}

func TestNewSessionAlias(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	alias := NewSessionAlias("old", "new", now)

	assert.True(t, alias.IsAlias())
	assert.Equal(t, "old", alias.ID)
	assert.Equal(t, "new", alias.MovedTo)
	assert.Zero(t, alias.UserID)
	assert.False(t, NewSessionRecord("sid", now).IsAlias())
}
