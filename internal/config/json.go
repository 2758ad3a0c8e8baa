package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		Name         string `json:"name"`
		Version      string `json:"version"`
		LogLevel     string `json:"log_level"`
		TokenHashKey string `json:"token_hash_key"`
	} `json:"app,omitempty"`

	Auth struct {
		BcryptCost            int      `json:"bcrypt_cost"`
		RememberCookieName    string   `json:"remember_cookie_name"`
		RememberTokenDuration Duration `json:"remember_token_duration"`
		PasswordResetDuration Duration `json:"password_reset_duration"`
		BanThreshold          int      `json:"ban_threshold"`
		BanBaseDuration       Duration `json:"ban_base_duration"`
		BanMaxDuration        Duration `json:"ban_max_duration"`
		BanRetention          Duration `json:"ban_retention"`
	} `json:"auth,omitempty"`

	Session struct {
		CookieName         string   `json:"cookie_name"`
		CookiePath         string   `json:"cookie_path"`
		CookieDomain       string   `json:"cookie_domain"`
		SameSite           string   `json:"same_site"`
		ForceSecure        bool     `json:"force_secure"`
		Lifetime           Duration `json:"lifetime"`
		RegenerateInterval Duration `json:"regenerate_interval"`
		CSRFTokenLength    int      `json:"csrf_token_length"`
		CSRFTokenLifetime  Duration `json:"csrf_token_lifetime"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Sessions struct {
			Dir      string `json:"dir"`
			InMemory bool   `json:"in_memory"`
		} `json:"sessions,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		TrustProxy      bool     `json:"trust_proxy"`
	} `json:"server,omitempty"`

	Adapter struct {
		MailRelayURL   string   `json:"mail_relay_url"`
		MailFrom       string   `json:"mail_from"`
		RequestTimeout Duration `json:"request_timeout"`
		BaseURL        string   `json:"base_url"`
	} `json:"adapter,omitempty"`

	Workers struct {
		MaintenanceInterval Duration `json:"maintenance_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:         j.App.Name,
			Version:      j.App.Version,
			LogLevel:     j.App.LogLevel,
			TokenHashKey: j.App.TokenHashKey,
		},
		Auth: Auth{
			BcryptCost:            j.Auth.BcryptCost,
			RememberCookieName:    j.Auth.RememberCookieName,
			RememberTokenDuration: time.Duration(j.Auth.RememberTokenDuration),
			PasswordResetDuration: time.Duration(j.Auth.PasswordResetDuration),
			BanThreshold:          j.Auth.BanThreshold,
			BanBaseDuration:       time.Duration(j.Auth.BanBaseDuration),
			BanMaxDuration:        time.Duration(j.Auth.BanMaxDuration),
			BanRetention:          time.Duration(j.Auth.BanRetention),
		},
		Session: Session{
			CookieName:         j.Session.CookieName,
			CookiePath:         j.Session.CookiePath,
			CookieDomain:       j.Session.CookieDomain,
			SameSite:           j.Session.SameSite,
			ForceSecure:        j.Session.ForceSecure,
			Lifetime:           time.Duration(j.Session.Lifetime),
			RegenerateInterval: time.Duration(j.Session.RegenerateInterval),
			CSRFTokenLength:    j.Session.CSRFTokenLength,
			CSRFTokenLifetime:  time.Duration(j.Session.CSRFTokenLifetime),
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			Sessions: Sessions{
				Dir:      j.Storage.Sessions.Dir,
				InMemory: j.Storage.Sessions.InMemory,
			},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
			TrustProxy:      j.Server.TrustProxy,
		},
		Adapter: Adapter{
			MailRelayURL:   j.Adapter.MailRelayURL,
			MailFrom:       j.Adapter.MailFrom,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			BaseURL:        j.Adapter.BaseURL,
		},
		Workers: Workers{
			MaintenanceInterval: time.Duration(j.Workers.MaintenanceInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
