// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"vidshare/config"
	"vidshare/internal/delivery/api/response"
	deliverycontext "vidshare/internal/delivery/context"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves the /api/auth endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for registering a credentials account
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

// CredentialsRequest represents the request body for a credentials sign-in
type CredentialsRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// GoogleIDTokenRequest carries an ID token from a client-side Google button
type GoogleIDTokenRequest struct {
	IDToken string `json:"id_token" form:"id_token"`
}

// SessionUser is the public view of the signed-in user
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SessionResponse describes the current session
type SessionResponse struct {
	User    SessionUser `json:"user"`
	Expires time.Time   `json:"expires"`
}

// Register handles credentials account registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	_, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "User registered successfully")
}

// CredentialsCallback signs in with email and password and sets the session cookie.
func (h *AuthHandler) CredentialsCallback(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	output, err := h.authUC.SignIn(c.Request().Context(), usecase.CredentialProof{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	return response.Success(c, http.StatusOK, newSessionResponse(output.Identity, output.Session.ExpiresAt))
}

// GoogleIDTokenCallback signs in with a Google ID token posted by the browser.
func (h *AuthHandler) GoogleIDTokenCallback(c echo.Context) error {
	var req GoogleIDTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid Google callback input")
	}

	output, err := h.authUC.SignInWithGoogleIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	return response.Success(c, http.StatusOK, newSessionResponse(output.Identity, output.Session.ExpiresAt))
}

// SignIn starts the redirect handshake with an external provider.
func (h *AuthHandler) SignIn(c echo.Context) error {
	provider, ok := entity.ParseProviderType(c.Param("provider"))
	if !ok {
		return errors.WithStack(domainerrors.ErrProviderNotSupported)
	}

	consentURL, err := h.authUC.BeginExternalSignIn(c.Request().Context(), provider, c.QueryParam("callbackUrl"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, consentURL)
}

// ProviderCallback finishes the redirect handshake. Failures land on the login page.
func (h *AuthHandler) ProviderCallback(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	provider, ok := entity.ParseProviderType(c.Param("provider"))
	if !ok {
		return loginRedirect(c, domainerrors.ErrProviderNotSupported.ErrorCode())
	}

	if reason := c.QueryParam("error"); reason != "" {
		logger.Warn("Provider rejected sign-in",
			slog.String("provider", provider.String()),
			slog.String("reason", reason),
		)

		return loginRedirect(c, domainerrors.ErrOAuthFailed.ErrorCode())
	}

	output, err := h.authUC.CompleteExternalSignIn(ctx, provider, c.QueryParam("state"), c.QueryParam("code"))
	if err != nil {
		logger.Warn("External sign-in failed",
			slog.String("provider", provider.String()),
			slog.Any("error", err),
		)

		return loginRedirect(c, errorCode(err))
	}

	h.setSessionCookie(c, output.Session)

	return c.Redirect(http.StatusFound, output.CallbackURL)
}

// Session returns the current session, or no data when signed out.
func (h *AuthHandler) Session(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return response.Success(c, http.StatusOK, nil)
	}

	user, err := h.authUC.CurrentUser(c.Request().Context(), session)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return response.Success(c, http.StatusOK, nil)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(user.Identity(), session.ExpiresAt))
}

// Providers lists the sign-in methods that are available.
func (h *AuthHandler) Providers(c echo.Context) error {
	providers := []entity.ProviderType{entity.ProviderCredentials}
	providers = append(providers, h.authUC.Providers()...)

	return response.Success(c, http.StatusOK, map[string]any{"providers": providers})
}

// SignOut clears the session cookie. Tokens are stateless, so nothing is revoked server-side.
func (h *AuthHandler) SignOut(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cfg.Session.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Message(c, http.StatusOK, "Signed out")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, session *entity.IssuedSession) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    session.Token,
		Path:     "/",
		Domain:   h.cfg.Session.CookieDomain,
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func newSessionResponse(identity entity.Identity, expires time.Time) SessionResponse {
	return SessionResponse{
		User: SessionUser{
			ID:    identity.ID.String(),
			Email: identity.Email,
		},
		Expires: expires.UTC(),
	}
}

func loginRedirect(c echo.Context, code string) error {
	return c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape(code))
}

func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return domainerrors.ErrOAuthFailed.ErrorCode()
}
