package handler

import (
	"testing"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/handler/http"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDependencies returns dependencies backed by in-memory storages.
// NewHandlers only stores services and managers, so they may stay nil.
func newTestDependencies() Dependencies {
	return Dependencies{
		Storages: &store.Storages{
			Users:     store.NewMemoryUserRepository(),
			Changelog: store.NewMemoryChangelogRepository(),
		},
	}
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server:  config.Server{HTTPAddress: ":8080"},
		Adapter: config.Adapter{BaseURL: "https://kita.example"},
	}

	h, err := NewHandlers(newTestDependencies(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that without an HTTP address NewHandlers
// returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestDependencies(), &config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server:  config.Server{HTTPAddress: ":8080"},
		Adapter: config.Adapter{BaseURL: "https://kita.example"},
	}

	h1, err1 := NewHandlers(newTestDependencies(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestDependencies(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}

func TestNewHandlers_RequiresBaseURL(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(newTestDependencies(), cfg, logger.Nop())

	require.ErrorIs(t, err, http.ErrBaseURLRequired)
	assert.Nil(t, h)
}
