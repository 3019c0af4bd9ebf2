package google

import (
	"context"
	"net/http"
	"strings"

	"vidshare/config"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
	"vidshare/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const defaultScopes = "openid email profile"

// OAuthService runs the authorization-code handshake with Google.
type OAuthService struct {
	config     *oauth2.Config
	idTokens   *AuthServiceImpl
	httpClient *http.Client
}

// NewOAuthService creates the Google identity provider. The ID token verifier must be the Google one.
func NewOAuthService(providerCfg *config.OAuthProviderConfig, redirectURI string, idTokens service.IDTokenVerifier, httpClient *http.Client) (*OAuthService, error) {
	impl, ok := idTokens.(*AuthServiceImpl)
	if !ok || impl == nil {
		return nil, errors.New("google oauth requires the google id token verifier")
	}

	scopes := providerCfg.Scopes
	if scopes == "" {
		scopes = defaultScopes
	}

	return newOAuthService(&oauth2.Config{
		ClientID:     providerCfg.ClientID,
		ClientSecret: providerCfg.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       strings.Fields(scopes),
		Endpoint:     endpoints.Google,
	}, impl, httpClient), nil
}

func newOAuthService(oauthCfg *oauth2.Config, idTokens *AuthServiceImpl, httpClient *http.Client) *OAuthService {
	return &OAuthService{
		config:     oauthCfg,
		idTokens:   idTokens,
		httpClient: httpClient,
	}
}

// Provider returns the OAuth provider type
func (s *OAuthService) Provider() entity.ProviderType {
	return entity.ProviderGoogle
}

// AuthCodeURL builds the Google consent URL carrying state.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades the code for tokens and verifies the returned ID token.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "missing id_token in token response")
	}

	return s.idTokens.VerifyIDToken(ctx, rawIDToken)
}
