// Package github implements the GitHub authorization-code handshake and profile lookup.
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"vidshare/config"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
	"vidshare/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultScopes     = "read:user user:email"
)

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// OAuthService talks to GitHub's OAuth endpoints and REST API.
type OAuthService struct {
	config     *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
}

// NewOAuthService creates the GitHub identity provider.
func NewOAuthService(providerCfg *config.OAuthProviderConfig, redirectURI string, httpClient *http.Client) *OAuthService {
	scopes := providerCfg.Scopes
	if scopes == "" {
		scopes = defaultScopes
	}

	apiBaseURL := providerCfg.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}

	return newOAuthService(&oauth2.Config{
		ClientID:     providerCfg.ClientID,
		ClientSecret: providerCfg.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       strings.Fields(scopes),
		Endpoint:     endpoints.GitHub,
	}, apiBaseURL, httpClient)
}

func newOAuthService(oauthCfg *oauth2.Config, apiBaseURL string, httpClient *http.Client) *OAuthService {
	return &OAuthService{
		config:     oauthCfg,
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		httpClient: httpClient,
	}
}

func (s *OAuthService) Provider() entity.ProviderType {
	return entity.ProviderGitHub
}

func (s *OAuthService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state)
}

// Exchange trades the code for an access token and reads the profile.
// The primary verified address is used when the public profile hides the email.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	client := s.config.Client(ctx, token)

	var profile githubUser
	if err := s.getJSON(ctx, client, "/user", &profile); err != nil {
		return nil, err
	}

	user := &service.OAuthUser{
		ID:        strconv.FormatInt(profile.ID, 10),
		Email:     profile.Email,
		Name:      profile.Name,
		Provider:  entity.ProviderGitHub,
		AvatarURL: profile.AvatarURL,
	}
	if user.Name == "" {
		user.Name = profile.Login
	}

	var emails []githubEmail
	if err := s.getJSON(ctx, client, "/user/emails", &emails); err != nil {
		if user.Email != "" {
			return user, nil
		}

		return nil, err
	}

	if primary, ok := primaryVerifiedEmail(emails); ok {
		user.Email = primary
		user.EmailVerified = true
	}

	return user, nil
}

func (s *OAuthService) getJSON(ctx context.Context, client *http.Client, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBaseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create github request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Wrapf(domainerrors.ErrOAuthFailed, "github %s returned %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(domainerrors.ErrOAuthFailed, "decode github %s: %v", path, err)
	}

	return nil
}

func primaryVerifiedEmail(emails []githubEmail) (string, bool) {
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, true
		}
	}

	return "", false
}
