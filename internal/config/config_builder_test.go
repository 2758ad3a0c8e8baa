package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that mergo keeps the first non-zero
// value and only fills the gaps from later sources.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", Name: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.Name)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{BcryptCost: 99}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{BanThreshold: 3}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Auth.BanThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Session.RegenerateInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.RememberTokenDuration)
	assert.Equal(t, time.Hour, cfg.Auth.PasswordResetDuration)
	assert.Equal(t, 32, cfg.Session.CSRFTokenLength)
	assert.Equal(t, "lax", cfg.Session.SameSite)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"name": "from-json", "version": "9.9.9"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Version: "1.0.0"}, JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "from-json", cfg.App.Name)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── withFlags / withEnv ───────────────────────────────────────────────────────

func TestWithFlags_BadFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	require.Error(t, b.err)
}

func TestFullChain_EnvBeatsFlags(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost:7000"})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "localhost:7001", "-d", "postgres://flag"}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flag", cfg.Storage.DB.DSN)
	assert.Equal(t, "kita_session", cfg.Session.CookieName)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "defaults are valid", cfg: *defaults()},
		{name: "bcrypt too low", cfg: StructuredConfig{Auth: Auth{BcryptCost: 2}}, wantErr: ErrInvalidAuthConfigs},
		{name: "max shorter than base", cfg: StructuredConfig{Auth: Auth{BanBaseDuration: time.Hour, BanMaxDuration: time.Minute}}, wantErr: ErrInvalidAuthConfigs},
		{name: "unknown same site", cfg: StructuredConfig{Session: Session{SameSite: "sometimes"}}, wantErr: ErrInvalidSessionConfigs},
		{name: "short csrf", cfg: StructuredConfig{Session: Session{CSRFTokenLength: 8}}, wantErr: ErrInvalidSessionConfigs},
		{name: "dir and memory", cfg: StructuredConfig{Storage: Storage{Sessions: Sessions{Dir: "/x", InMemory: true}}}, wantErr: ErrInvalidStorageConfigs},
		{name: "https base url", cfg: StructuredConfig{Adapter: Adapter{BaseURL: "https://kita.example/app"}}},
		{name: "relative base url", cfg: StructuredConfig{Adapter: Adapter{BaseURL: "/app"}}, wantErr: ErrInvalidAdapterConfigs},
		{name: "base url without scheme", cfg: StructuredConfig{Adapter: Adapter{BaseURL: "kita.example"}}, wantErr: ErrInvalidAdapterConfigs},
		{name: "base url with other scheme", cfg: StructuredConfig{Adapter: Adapter{BaseURL: "ftp://kita.example"}}, wantErr: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
