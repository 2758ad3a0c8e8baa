package config

import "time"

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     "Kita Inventory",
			Version:  "dev",
			LogLevel: "info",
		},
		Auth: Auth{
			BcryptCost:            12,
			RememberCookieName:    "remember_me",
			RememberTokenDuration: 30 * 24 * time.Hour,
			PasswordResetDuration: time.Hour,
			BanThreshold:          5,
			BanBaseDuration:       15 * time.Minute,
			BanMaxDuration:        24 * time.Hour,
			BanRetention:          7 * 24 * time.Hour,
		},
		Session: Session{
			CookieName:         "kita_session",
			CookiePath:         "/",
			SameSite:           "lax",
			Lifetime:           2 * time.Hour,
			RegenerateInterval: 30 * time.Minute,
			CSRFTokenLength:    32,
			CSRFTokenLifetime:  2 * time.Hour,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			MailFrom:       "no-reply@localhost",
			RequestTimeout: 10 * time.Second,
			BaseURL:        "http://localhost:8080",
		},
		Workers: Workers{
			MaintenanceInterval: 15 * time.Minute,
		},
	}
}
