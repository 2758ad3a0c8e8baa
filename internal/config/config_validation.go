// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.BcryptCost != 0 && (cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAuthConfigs, cfg.Auth.BcryptCost)
	}

	if cfg.Auth.BanThreshold < 0 {
		return fmt.Errorf("%w: negative ban threshold", ErrInvalidAuthConfigs)
	}

	if cfg.Auth.BanMaxDuration != 0 && cfg.Auth.BanMaxDuration < cfg.Auth.BanBaseDuration {
		return fmt.Errorf("%w: max ban duration is shorter than base duration", ErrInvalidAuthConfigs)
	}

	switch strings.ToLower(cfg.Session.SameSite) {
	case "", "lax", "strict", "none":
	default:
		return fmt.Errorf("%w: unknown same-site mode %q", ErrInvalidSessionConfigs, cfg.Session.SameSite)
	}

	if cfg.Session.CSRFTokenLength != 0 && cfg.Session.CSRFTokenLength < 16 {
		return fmt.Errorf("%w: csrf token must be at least 16 bytes", ErrInvalidSessionConfigs)
	}

	if cfg.Storage.Sessions.Dir != "" && cfg.Storage.Sessions.InMemory {
		return fmt.Errorf("%w: sessions dir and in-memory mode are exclusive", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.BaseURL != "" {
		u, err := url.Parse(cfg.Adapter.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: base url %q must be an absolute http(s) URL", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
		}
	}

	return nil
}
