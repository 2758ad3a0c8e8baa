package handler

import (
	"github.com/MKhiriev/go-kita-inventory/internal/adapter"
	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/handler/http"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

// Dependencies groups what the transport handlers are built from.
type Dependencies struct {
	Services *service.Services
	Storages *store.Storages
	Sessions *session.Manager
	Auth     *auth.Manager
	Mailer   adapter.Mailer
}

func NewHandlers(deps Dependencies, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	h, err := http.NewHandler(deps.Services, deps.Storages, deps.Sessions, deps.Auth, deps.Mailer, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: h}, nil
}
