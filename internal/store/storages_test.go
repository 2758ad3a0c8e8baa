package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_InMemoryFallback(t *testing.T) {
	s, err := NewStorages(context.Background(), &config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &MemoryUserRepository{}, s.Users)
	assert.IsType(t, &MemoryIPBanRepository{}, s.IPBans)
	assert.IsType(t, &MemorySessionStore{}, s.Sessions)
}

func TestNewStorages_BadgerSessions(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Storage.Sessions.InMemory = true

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &BadgerSessionStore{}, s.Sessions)
	assert.NoError(t, s.Close())
}
