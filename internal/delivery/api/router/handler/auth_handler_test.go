package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vidshare/config"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	mockUC "vidshare/internal/mocks/usecase"
	"vidshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "vidshare.session-token"

type authFixture struct {
	e      *echo.Echo
	authUC *mockUC.MockAuthUsecase
}

func newAuthFixture(t *testing.T, session *entity.Session) *authFixture {
	return newAuthFixtureWithConfig(t, session, newTestConfig())
}

func newAuthFixtureWithConfig(t *testing.T, session *entity.Session, cfg *config.Config) *authFixture {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Config: cfg,
		Logger: newDiscardLogger(),
	})

	e := newTestEcho()
	g := e.Group("/api/auth", withSession(session))
	g.POST("/register", h.Register)
	g.POST("/callback/credentials", h.CredentialsCallback)
	g.POST("/callback/google", h.GoogleIDTokenCallback)
	g.GET("/callback/:provider", h.ProviderCallback)
	g.GET("/signin/:provider", h.SignIn)
	g.GET("/session", h.Session)
	g.GET("/providers", h.Providers)
	g.POST("/signout", h.SignOut)

	return &authFixture{e: e, authUC: authUC}
}

func signInOutput(userID uuid.UUID, email string, expires time.Time) *usecase.SignInOutput {
	return &usecase.SignInOutput{
		Identity: entity.Identity{ID: userID, Email: email},
		Session:  &entity.IssuedSession{Token: "signed.session.token", ExpiresAt: expires},
	}
}

func TestAuthHandler_RegisterThenDuplicate(t *testing.T) {
	f := newAuthFixture(t, nil)
	input := usecase.RegisterInput{Email: "new@example.com", Password: "Passw0rd1"}

	f.authUC.EXPECT().Register(mock.Anything, input).
		Return(&usecase.RegisterOutput{User: &entity.User{ID: uuid.New(), Email: "new@example.com"}}, nil).Once()
	f.authUC.EXPECT().Register(mock.Anything, input).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate email")).Once()

	body := `{"email":"new@example.com","password":"Passw0rd1","confirmPassword":"Passw0rd1"}`

	rec := serve(f.e, jsonRequest(http.MethodPost, "/api/auth/register", body))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User registered successfully", decodeBody(t, rec)["message"])

	rec = serve(f.e, jsonRequest(http.MethodPost, "/api/auth/register", body))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already registered", decodeBody(t, rec)["error"])
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	f := newAuthFixture(t, nil)

	rec := serve(f.e, jsonRequest(http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"Passw0rd1","confirmPassword":"different"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Validation failed", body["error"])
	assert.ElementsMatch(t, []any{
		map[string]any{"field": "email", "message": "Invalid email address"},
		map[string]any{"field": "confirmPassword", "message": "Passwords do not match"},
	}, body["details"])
}

func TestAuthHandler_RegisterWeakPassword(t *testing.T) {
	f := newAuthFixture(t, nil)
	weak := domainerrors.NewValidationError(domainerrors.FieldError{
		Field:   "password",
		Message: "Password must be at least 8 characters",
	})
	f.authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, weak)

	rec := serve(f.e, jsonRequest(http.MethodPost, "/api/auth/register", `{"email":"a@example.com","password":"short"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{map[string]any{"field": "password", "message": "Password must be at least 8 characters"}},
		decodeBody(t, rec)["details"])
}

func TestAuthHandler_CredentialsCallback(t *testing.T) {
	f := newAuthFixture(t, nil)
	userID := uuid.New()
	expires := time.Now().Add(30 * 24 * time.Hour)

	f.authUC.EXPECT().SignIn(mock.Anything, usecase.CredentialProof{Email: "a@example.com", Password: "Passw0rd1"}).
		Return(signInOutput(userID, "a@example.com", expires), nil)

	rec := serve(f.e, jsonRequest(http.MethodPost, "/api/auth/callback/credentials",
		`{"email":"a@example.com","password":"Passw0rd1"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.session.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Greater(t, cookie.MaxAge, 29*24*3600)
	assert.Empty(t, cookie.Domain)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, map[string]any{"id": userID.String(), "email": "a@example.com"}, data["user"])
	assert.NotContains(t, rec.Body.String(), "signed.session.token")
}

func TestAuthHandler_CredentialsFailureIsGeneric(t *testing.T) {
	failures := []error{
		errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found"),
		errors.Wrap(domainerrors.ErrOAuthOnlyAccount, "no password"),
		errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"),
	}

	for _, failure := range failures {
		f := newAuthFixture(t, nil)
		f.authUC.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, failure)

		rec := serve(f.e, jsonRequest(http.MethodPost, "/api/auth/callback/credentials",
			`{"email":"a@example.com","password":"wrong"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid email or password", body["error"])
		assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
		assert.Nil(t, findCookie(rec, testCookieName))
	}
}

func TestAuthHandler_GoogleIDTokenCallback(t *testing.T) {
	f := newAuthFixture(t, nil)
	f.authUC.EXPECT().SignInWithGoogleIDToken(mock.Anything, "google-id-token").
		Return(signInOutput(uuid.New(), "g@example.com", time.Now().Add(time.Hour)), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/callback/google", strings.NewReader("id_token=google-id-token"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := serve(f.e, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, findCookie(rec, testCookieName))
}

func TestAuthHandler_SignInRedirectsToProvider(t *testing.T) {
	f := newAuthFixture(t, nil)
	f.authUC.EXPECT().BeginExternalSignIn(mock.Anything, entity.ProviderGitHub, "/upload").
		Return("https://github.com/login/oauth/authorize?state=abc", nil)

	rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/signin/github?callbackUrl=%2Fupload", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://github.com/login/oauth/authorize?state=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_SignInUnknownProvider(t *testing.T) {
	f := newAuthFixture(t, nil)

	rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/signin/myspace", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROVIDER_NOT_SUPPORTED", decodeBody(t, rec)["code"])
}

func TestAuthHandler_ProviderCallback(t *testing.T) {
	f := newAuthFixture(t, nil)
	out := &usecase.ExternalSignInOutput{
		SignInOutput: *signInOutput(uuid.New(), "g@example.com", time.Now().Add(time.Hour)),
		CallbackURL:  "/upload",
	}
	f.authUC.EXPECT().CompleteExternalSignIn(mock.Anything, entity.ProviderGoogle, "state-1", "code-1").Return(out, nil)

	rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/callback/google?state=state-1&code=code-1", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/upload", rec.Header().Get(echo.HeaderLocation))
	assert.NotNil(t, findCookie(rec, testCookieName))
}

func TestAuthHandler_ProviderCallbackFailures(t *testing.T) {
	t.Run("usecase error", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.authUC.EXPECT().CompleteExternalSignIn(mock.Anything, entity.ProviderGoogle, "stale", "code").
			Return(nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, "state not found"))

		rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/callback/google?state=stale&code=code", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?error=OAUTH_STATE_INVALID", rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, findCookie(rec, testCookieName))
	})

	t.Run("provider denied consent", func(t *testing.T) {
		f := newAuthFixture(t, nil)

		rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/callback/github?error=access_denied", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?error=OAUTH_FAILED", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unknown provider", func(t *testing.T) {
		f := newAuthFixture(t, nil)

		rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/callback/myspace?code=x", nil))

		assert.Equal(t, "/login?error=PROVIDER_NOT_SUPPORTED", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		f := newAuthFixture(t, nil)

		rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, decodeBody(t, rec), "data")
	})

	t.Run("signed in", func(t *testing.T) {
		userID := uuid.New()
		session := &entity.Session{UserID: userID, ExpiresAt: time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC)}
		f := newAuthFixture(t, session)
		f.authUC.EXPECT().CurrentUser(mock.Anything, session).
			Return(&entity.User{ID: userID, Email: "a@example.com"}, nil)

		rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, "a@example.com", data["user"].(map[string]any)["email"])
		assert.Equal(t, "2026-11-14T00:00:00Z", data["expires"])
	})

	t.Run("user no longer exists", func(t *testing.T) {
		session := &entity.Session{UserID: uuid.New()}
		f := newAuthFixture(t, session)
		f.authUC.EXPECT().CurrentUser(mock.Anything, session).
			Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "lookup"))

		rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, decodeBody(t, rec), "data")
	})
}

func TestAuthHandler_Providers(t *testing.T) {
	f := newAuthFixture(t, nil)
	f.authUC.EXPECT().Providers().Return([]entity.ProviderType{entity.ProviderGoogle})

	rec := serve(f.e, httptest.NewRequest(http.MethodGet, "/api/auth/providers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, []any{"credentials", "google"}, data["providers"])
}

func TestAuthHandler_SignOutClearsCookie(t *testing.T) {
	f := newAuthFixture(t, nil)

	rec := serve(f.e, httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_SessionCookieUsesConfiguredDomain(t *testing.T) {
	cfg := newTestConfig()
	cfg.Session.CookieDomain = "vidshare.example.com"
	f := newAuthFixtureWithConfig(t, nil, cfg)

	f.authUC.EXPECT().SignIn(mock.Anything, usecase.CredentialProof{Email: "a@example.com", Password: "Passw0rd1"}).
		Return(signInOutput(uuid.New(), "a@example.com", time.Now().Add(time.Hour)), nil)

	rec := serve(f.e, jsonRequest(http.MethodPost, "/api/auth/callback/credentials",
		`{"email":"a@example.com","password":"Passw0rd1"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "vidshare.example.com", cookie.Domain)

	rec = serve(f.e, httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookie = findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "vidshare.example.com", cookie.Domain)
	assert.Negative(t, cookie.MaxAge)
}
