package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeGitHub struct {
	profile      githubUser
	emails       []githubEmail
	emailsStatus int
}

func (f *fakeGitHub) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "gh-token", "token_type": "bearer"})
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(f.profile)
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		if f.emailsStatus != 0 {
			w.WriteHeader(f.emailsStatus)

			return
		}
		_ = json.NewEncoder(w).Encode(f.emails)
	})

	return mux
}

func newTestService(t *testing.T, fake *fakeGitHub) *OAuthService {
	t.Helper()

	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	return newOAuthService(&oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  server.URL + "/login/oauth/authorize",
			TokenURL: server.URL + "/login/oauth/access_token",
		},
	}, server.URL, server.Client())
}

func TestOAuthService_ExchangeUsesPrimaryVerifiedEmail(t *testing.T) {
	svc := newTestService(t, &fakeGitHub{
		profile: githubUser{ID: 42, Login: "octocat"},
		emails: []githubEmail{
			{Email: "old@example.com", Primary: false, Verified: true},
			{Email: "octo@example.com", Primary: true, Verified: true},
		},
	})

	user, err := svc.Exchange(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "octo@example.com", user.Email)
	assert.Equal(t, "octocat", user.Name)
	assert.Equal(t, entity.ProviderGitHub, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestOAuthService_ExchangeFallsBackToProfileEmail(t *testing.T) {
	svc := newTestService(t, &fakeGitHub{
		profile:      githubUser{ID: 7, Login: "dev", Name: "Dev", Email: "public@example.com"},
		emailsStatus: http.StatusForbidden,
	})

	user, err := svc.Exchange(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, "public@example.com", user.Email)
	assert.Equal(t, "Dev", user.Name)
}

func TestOAuthService_ExchangeWithoutAnyEmail(t *testing.T) {
	svc := newTestService(t, &fakeGitHub{
		profile:      githubUser{ID: 7, Login: "dev"},
		emailsStatus: http.StatusForbidden,
	})

	_, err := svc.Exchange(context.Background(), "code")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	svc := newTestService(t, &fakeGitHub{})

	assert.Contains(t, svc.AuthCodeURL("xyz"), "state=xyz")
}
