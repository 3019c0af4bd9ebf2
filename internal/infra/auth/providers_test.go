package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"vidshare/config"
	"vidshare/internal/domain/entity"
	"vidshare/internal/domain/service"
	"vidshare/internal/infra/auth/oauthstate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubProvider struct {
	provider entity.ProviderType
}

func (s stubProvider) Provider() entity.ProviderType { return s.provider }
func (s stubProvider) AuthCodeURL(state string) string {
	return "https://example.com/" + state
}

func (s stubProvider) Exchange(context.Context, string) (*service.OAuthUser, error) {
	return &service.OAuthUser{}, nil
}

func TestProviderRegistry(t *testing.T) {
	registry := NewProviderRegistry(stubProvider{entity.ProviderGoogle}, stubProvider{entity.ProviderGitHub})

	assert.Equal(t, []entity.ProviderType{entity.ProviderGitHub, entity.ProviderGoogle}, registry.Enabled())

	p, ok := registry.Get(entity.ProviderGitHub)
	require.True(t, ok)
	assert.Equal(t, entity.ProviderGitHub, p.Provider())

	_, ok = registry.Get("twitter")
	assert.False(t, ok)
}

func TestNewIdentityProviders_OnlyConfigured(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = "https://vidshare.example.com/"
	cfg.OAuth.GitHub = &config.OAuthProviderConfig{ClientID: "gh", ClientSecret: "secret"}
	cfg.OAuth.Google = &config.OAuthProviderConfig{}

	registry, err := NewIdentityProviders(ProviderParams{
		Cfg:        cfg,
		HTTPClient: http.DefaultClient,
		Logger:     newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.ProviderType{entity.ProviderGitHub}, registry.Enabled())

	p, ok := registry.Get(entity.ProviderGitHub)
	require.True(t, ok)
	assert.Contains(t, p.AuthCodeURL("s"), "redirect_uri=https%3A%2F%2Fvidshare.example.com%2Fapi%2Fauth%2Fcallback%2Fgithub")
}

func TestNewIdentityProviders_GoogleNeedsVerifier(t *testing.T) {
	cfg := &config.Config{}
	cfg.OAuth.Google = &config.OAuthProviderConfig{ClientID: "g"}

	_, err := NewIdentityProviders(ProviderParams{
		Cfg:        cfg,
		HTTPClient: http.DefaultClient,
		Logger:     newDiscardLogger(),
	})
	assert.Error(t, err)
}

func TestNewOAuthStateStore_FallsBackToMemory(t *testing.T) {
	store := NewOAuthStateStore(&config.Config{}, nil, newDiscardLogger())

	_, ok := store.(*oauthstate.MemoryStore)
	assert.True(t, ok)
}
