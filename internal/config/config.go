// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// inventory server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level and the key
	// used to hash remember-me and password-reset tokens.
	App App `envPrefix:"APP_"`

	// Auth holds password hashing, token lifetime and brute-force settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Session holds cookie and lifecycle settings for browser sessions.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds configuration for the relational database and the
	// session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the outbound mail relay.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background maintenance.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is shown in page titles and mail subjects.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenHashKey is the HMAC key used to hash remember-me and
	// password-reset tokens before they are stored. Must be kept confidential.
	// Env: APP_TOKEN_HASH_KEY
	TokenHashKey string `env:"TOKEN_HASH_KEY"`
}

// Auth holds credential and brute-force protection settings.
type Auth struct {
	// BcryptCost is the bcrypt work factor for new password hashes.
	// Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// RememberCookieName is the name of the remember-me cookie.
	// Env: AUTH_REMEMBER_COOKIE_NAME
	RememberCookieName string `env:"REMEMBER_COOKIE_NAME"`

	// RememberTokenDuration is how long a remember-me token stays valid.
	// Env: AUTH_REMEMBER_TOKEN_DURATION
	RememberTokenDuration time.Duration `env:"REMEMBER_TOKEN_DURATION"`

	// PasswordResetDuration is how long a password-reset token stays valid.
	// Env: AUTH_PASSWORD_RESET_DURATION
	PasswordResetDuration time.Duration `env:"PASSWORD_RESET_DURATION"`

	// BanThreshold is the number of consecutive failures that triggers a ban.
	// Env: AUTH_BAN_THRESHOLD
	BanThreshold int `env:"BAN_THRESHOLD"`

	// BanBaseDuration is the length of the first ban. Every further offense
	// doubles it.
	// Env: AUTH_BAN_BASE_DURATION
	BanBaseDuration time.Duration `env:"BAN_BASE_DURATION"`

	// BanMaxDuration caps the escalated ban length.
	// Env: AUTH_BAN_MAX_DURATION
	BanMaxDuration time.Duration `env:"BAN_MAX_DURATION"`

	// BanRetention is how long an expired, non-permanent ban record is kept
	// after its last failed attempt before maintenance removes it.
	// Env: AUTH_BAN_RETENTION
	BanRetention time.Duration `env:"BAN_RETENTION"`
}

// Session holds cookie and lifecycle settings.
type Session struct {
	// CookieName is the name of the session cookie.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// CookiePath is the Path attribute of the session and remember cookies.
	// Env: SESSION_COOKIE_PATH
	CookiePath string `env:"COOKIE_PATH"`

	// CookieDomain is the optional Domain attribute.
	// Env: SESSION_COOKIE_DOMAIN
	CookieDomain string `env:"COOKIE_DOMAIN"`

	// SameSite is one of "lax", "strict" or "none".
	// Env: SESSION_SAME_SITE
	SameSite string `env:"SAME_SITE"`

	// ForceSecure marks cookies Secure even for plain HTTP requests.
	// Env: SESSION_FORCE_SECURE
	ForceSecure bool `env:"FORCE_SECURE"`

	// Lifetime is the idle timeout after which a session is discarded.
	// Env: SESSION_LIFETIME
	Lifetime time.Duration `env:"LIFETIME"`

	// RegenerateInterval is the session age after which its identifier is
	// rotated.
	// Env: SESSION_REGENERATE_INTERVAL
	RegenerateInterval time.Duration `env:"REGENERATE_INTERVAL"`

	// CSRFTokenLength is the number of random bytes in a CSRF token.
	// Env: SESSION_CSRF_TOKEN_LENGTH
	CSRFTokenLength int `env:"CSRF_TOKEN_LENGTH"`

	// CSRFTokenLifetime is the age after which a CSRF token is replaced.
	// Env: SESSION_CSRF_TOKEN_LIFETIME
	CSRFTokenLifetime time.Duration `env:"CSRF_TOKEN_LIFETIME"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Sessions holds the session store settings.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL Data Source Name. When empty, in-memory
	// repositories are used (development only).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sessions holds BadgerDB settings for the session store.
type Sessions struct {
	// Dir is the BadgerDB directory. When empty and InMemory is false, an
	// in-process map is used.
	// Env: STORAGE_SESSIONS_DIR
	Dir string `env:"DIR"`

	// InMemory runs BadgerDB without touching the disk.
	// Env: STORAGE_SESSIONS_IN_MEMORY
	InMemory bool `env:"IN_MEMORY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// TrustProxy makes the server honor X-Forwarded-For and
	// X-Forwarded-Proto headers.
	// Env: SERVER_TRUST_PROXY
	TrustProxy bool `env:"TRUST_PROXY"`
}

// Adapter holds configuration for the outbound mail relay.
type Adapter struct {
	// MailRelayURL is the HTTP endpoint that accepts outgoing mail as JSON.
	// When empty, mails are only written to the log.
	// Env: ADAPTER_MAIL_RELAY_URL
	MailRelayURL string `env:"MAIL_RELAY_URL"`

	// MailFrom is the sender address.
	// Env: ADAPTER_MAIL_FROM
	MailFrom string `env:"MAIL_FROM"`

	// RequestTimeout bounds a single relay call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BaseURL is the public URL used to build links in mails
	// (e.g. "https://kita.example").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MaintenanceInterval is how often expired bans, reset tokens and idle
	// sessions are purged. Zero disables the worker.
	// Env: WORKERS_MAINTENANCE_INTERVAL
	MaintenanceInterval time.Duration `env:"MAINTENANCE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadConfig(os.Args[1:])
}

// LoadConfig is GetStructuredConfig with explicit command-line arguments.
// Tools with their own flags pass nil and rely on the environment and the
// JSON file.
func LoadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
