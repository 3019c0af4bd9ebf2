package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{ImageKit: &ImageKitConfig{PrivateKey: "private"}}
	cfg.ApplyDefaults()

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.Storage.MaxPoolSize)
	assert.Equal(t, 5*time.Second, cfg.Storage.OperationTimeout)
	assert.Equal(t, "vidshare.session-token", cfg.Session.CookieName)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10*time.Second, cfg.Auth.ProviderTimeout)
	assert.Equal(t, DefaultOAuthStateTTL, cfg.OAuth.StateTTL)
	assert.Equal(t, 30*time.Minute, cfg.ImageKit.TokenTTL)
	assert.Equal(t, &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}, cfg.QRCode)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{MaxPoolSize: 3, OperationTimeout: time.Second},
		Session: SessionConfig{CookieName: "sid"},
		Auth:    &AuthConfig{ProviderTimeout: 2 * time.Second},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 3, cfg.Storage.MaxPoolSize)
	assert.Equal(t, time.Second, cfg.Storage.OperationTimeout)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 2*time.Second, cfg.Auth.ProviderTimeout)
	assert.Nil(t, cfg.ImageKit)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Postgres: &postgres.DBConn{}}
		cfg.Session.Secret = strings.Repeat("s", MinSessionSecretLength)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "empty secret",
			mutate:  func(c *Config) { c.Session.Secret = "" },
			wantErr: "session.secret",
		},
		{
			name:    "short secret",
			mutate:  func(c *Config) { c.Session.Secret = "too-short" },
			wantErr: "session.secret",
		},
		{
			name:    "missing postgres",
			mutate:  func(c *Config) { c.Postgres = nil },
			wantErr: "postgres",
		},
		{
			name:    "oauth without public base url",
			mutate:  func(c *Config) { c.OAuth.GitHub = &OAuthProviderConfig{ClientID: "id"} },
			wantErr: "publicBaseUrl",
		},
		{
			name: "oauth with public base url",
			mutate: func(c *Config) {
				c.OAuth.Google = &OAuthProviderConfig{ClientID: "id"}
				c.HTTP.PublicBaseURL = "https://vidshare.example"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOAuthProviderConfig_Enabled(t *testing.T) {
	var missing *OAuthProviderConfig
	assert.False(t, missing.Enabled())
	assert.False(t, (&OAuthProviderConfig{}).Enabled())
	assert.True(t, (&OAuthProviderConfig{ClientID: "id"}).Enabled())
}

func TestLoadWithEnv_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "session:\n  secret: from-file\n  cookieName: sid\nstorage:\n  operationTimeout: 2s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))

	t.Chdir(dir)
	unsetEnv(t, "ENV")
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("SESSION_COOKIENAME", "override")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, "override", cfg.Session.CookieName)
	assert.Equal(t, 2*time.Second, cfg.Storage.OperationTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

// unsetEnv hides a variable that would otherwise collide with a top-level config key.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	value, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Setenv(key, value) })
}
