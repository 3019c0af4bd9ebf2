package auth

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"vidshare/config"
	"vidshare/internal/domain/entity"
	"vidshare/internal/domain/service"
	"vidshare/internal/infra/auth/github"
	"vidshare/internal/infra/auth/google"
	"vidshare/internal/infra/auth/oauthstate"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ProviderRegistry holds the enabled external identity providers.
type ProviderRegistry struct {
	providers map[entity.ProviderType]service.IdentityProvider
}

// NewProviderRegistry indexes providers by type.
func NewProviderRegistry(providers ...service.IdentityProvider) *ProviderRegistry {
	registry := &ProviderRegistry{providers: make(map[entity.ProviderType]service.IdentityProvider, len(providers))}
	for _, p := range providers {
		registry.providers[p.Provider()] = p
	}

	return registry
}

// Get returns the provider if it is enabled.
func (r *ProviderRegistry) Get(provider entity.ProviderType) (service.IdentityProvider, bool) {
	p, ok := r.providers[provider]

	return p, ok
}

// Enabled lists enabled providers in a stable order.
func (r *ProviderRegistry) Enabled() []entity.ProviderType {
	out := make([]entity.ProviderType, 0, len(r.providers))
	for p := range r.providers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NewProviderHTTPClient returns the client used for every outbound identity-provider call.
func NewProviderHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Auth.ProviderTimeout}
}

// ProviderParams holds dependencies for building identity providers, injected by Fx.
type ProviderParams struct {
	fx.In

	Cfg        *config.Config
	HTTPClient *http.Client
	IDTokens   service.IDTokenVerifier `optional:"true"`
	Logger     *slog.Logger
}

// NewIdentityProviders builds a registry from every provider that has a client ID configured.
func NewIdentityProviders(params ProviderParams) (service.IdentityProviders, error) {
	var providers []service.IdentityProvider

	if params.Cfg.OAuth.Google.Enabled() {
		googleProvider, err := google.NewOAuthService(
			params.Cfg.OAuth.Google,
			redirectURI(params.Cfg, params.Cfg.OAuth.Google, entity.ProviderGoogle),
			params.IDTokens,
			params.HTTPClient,
		)
		if err != nil {
			return nil, err
		}
		providers = append(providers, googleProvider)
	}

	if params.Cfg.OAuth.GitHub.Enabled() {
		providers = append(providers, github.NewOAuthService(
			params.Cfg.OAuth.GitHub,
			redirectURI(params.Cfg, params.Cfg.OAuth.GitHub, entity.ProviderGitHub),
			params.HTTPClient,
		))
	}

	registry := NewProviderRegistry(providers...)
	params.Logger.Info("Identity providers configured", slog.Any("providers", registry.Enabled()))

	return registry, nil
}

func redirectURI(cfg *config.Config, providerCfg *config.OAuthProviderConfig, provider entity.ProviderType) string {
	if providerCfg.RedirectURI != "" {
		return providerCfg.RedirectURI
	}

	return strings.TrimSuffix(cfg.HTTP.PublicBaseURL, "/") + "/api/auth/callback/" + provider.String()
}

// NewOAuthStateStore uses Redis when a client is configured and process memory otherwise.
func NewOAuthStateStore(cfg *config.Config, client redis.UniversalClient, logger *slog.Logger) service.OAuthStateStore {
	if client == nil {
		logger.Warn("Redis not configured, OAuth state is kept in process memory")

		return oauthstate.NewMemoryStore()
	}

	prefix := ""
	if cfg.Redis != nil {
		prefix = cfg.Redis.KeyPrefix
	}

	return oauthstate.NewRedisStore(client, prefix)
}
