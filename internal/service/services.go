package service

import (
	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/metrics"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
)

type Services struct {
	Credentials CredentialVerifier
	Tokens      TokenIssuer
	BruteForce  BruteForceGuard
	AppInfo     AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	credentials, err := NewCredentialVerifier(storages.Users, cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Credentials: credentials,
		Tokens:      NewTokenIssuer(storages.Users, storages.PasswordResets, cfg, logger),
		BruteForce:  NewBruteForceGuard(storages.IPBans, cfg.Auth, countBan, logger),
		AppInfo:     appInfo,
	}, nil
}

func countBan(ban models.IPBan) {
	kind := models.BanTemporary
	if ban.IsPermanent {
		kind = models.BanPermanent
	}
	metrics.BansIssued.WithLabelValues(kind.String()).Inc()
}
