package service

import (
	"context"
	"time"

	"vidshare/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider (google, github)
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// IdentityProvider runs the redirect handshake with one external provider.
type IdentityProvider interface {
	// Provider returns the provider this implementation talks to.
	Provider() entity.ProviderType

	// AuthCodeURL builds the provider consent URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the asserted user profile.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)
}

// IDTokenVerifier verifies ID tokens obtained client-side (Google Sign-In buttons).
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}

// OAuthState is what the state store remembers between the redirect and the callback.
type OAuthState struct {
	Provider    entity.ProviderType `json:"provider"`
	CallbackURL string              `json:"callbackUrl"`
}

// OAuthStateStore keeps one-time state values for the redirect handshake.
type OAuthStateStore interface {
	// Save stores state for ttl.
	Save(ctx context.Context, state string, value OAuthState, ttl time.Duration) error

	// Consume returns and deletes the state. Unknown or expired state returns domainerrors.ErrOAuthStateInvalid.
	Consume(ctx context.Context, state string) (*OAuthState, error)
}

// IdentityProviders looks up the configured external providers.
type IdentityProviders interface {
	// Get returns the provider if it is enabled.
	Get(provider entity.ProviderType) (IdentityProvider, bool)
	// Enabled lists enabled providers in a stable order.
	Enabled() []entity.ProviderType
}
