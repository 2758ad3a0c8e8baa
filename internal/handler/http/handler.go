package http

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-kita-inventory/internal/adapter"
	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
	"github.com/MKhiriev/go-kita-inventory/internal/validators"
)

type Handler struct {
	services  *service.Services
	users     store.UserRepository
	changelog store.ChangelogRepository

	sessions *session.Manager
	auth     *auth.Manager
	mailer   adapter.Mailer

	validator validators.Validator
	views     *views
	traceIDs  *utils.UUIDGenerator

	publicURL string

	cfg    *config.StructuredConfig
	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	storages *store.Storages,
	sessions *session.Manager,
	authManager *auth.Manager,
	mailer adapter.Mailer,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Handler, error) {
	publicURL := strings.TrimRight(strings.TrimSpace(cfg.Adapter.BaseURL), "/")
	if publicURL == "" {
		return nil, ErrBaseURLRequired
	}

	v, err := parseViews()
	if err != nil {
		return nil, fmt.Errorf("parse views: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		users:     storages.Users,
		changelog: storages.Changelog,
		sessions:  sessions,
		auth:      authManager,
		mailer:    mailer,
		validator: validators.NewFormValidator(),
		views:     v,
		traceIDs:  utils.NewUUIDGenerator(),
		publicURL: publicURL,
		cfg:       cfg,
		logger:    logger,
	}, nil
}
