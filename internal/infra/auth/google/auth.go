// Package google verifies Google identities, both from the redirect handshake and from ID tokens
// posted by client-side sign-in buttons.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"vidshare/config"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
	"vidshare/internal/errors"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
)

const (
	googleIssuer  = "https://accounts.google.com"
	googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
)

// idTokenClaims are the Google-specific claims read after signature verification.
type idTokenClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// AuthServiceImpl verifies Google ID tokens against Google's published signing keys.
type AuthServiceImpl struct {
	verifier *gooidc.IDTokenVerifier
	logger   *slog.Logger
}

// NewAuthService creates the Google ID token verifier. It returns nil when Google sign-in is disabled.
func NewAuthService(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) service.IDTokenVerifier {
	if !cfg.OAuth.Google.Enabled() {
		return nil
	}

	ctx := gooidc.ClientContext(context.Background(), httpClient)
	keySet := gooidc.NewRemoteKeySet(ctx, googleJWKSURL)

	return newAuthService(cfg.OAuth.Google.ClientID, keySet, time.Now, logger)
}

func newAuthService(clientID string, keySet gooidc.KeySet, now func() time.Time, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		verifier: gooidc.NewVerifier(googleIssuer, keySet, &gooidc.Config{
			ClientID: clientID,
			Now:      now,
		}),
		logger: logger,
	}
}

// VerifyIDToken checks signature, issuer, audience and expiry, then requires a verified email.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, rawIDToken string) (*service.OAuthUser, error) {
	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	if !claims.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "email not verified")
	}

	return &service.OAuthUser{
		ID:            idToken.Subject,
		Email:         claims.Email,
		Name:          claims.Name,
		Provider:      entity.ProviderGoogle,
		AvatarURL:     claims.Picture,
		EmailVerified: claims.EmailVerified,
	}, nil
}
