package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"vidshare/config"
	"vidshare/internal/delivery/api/response"
	deliverycontext "vidshare/internal/delivery/context"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Decision is the outcome of the authorization gate.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "ALLOW"
	}

	return "DENY"
}

const (
	loginPath = "/login"
	apiPrefix = "/api/"
)

// Paths the gate never looks at.
var skippedPrefixes = []string{"/static/", "/public/", "/favicon.ico", "/health"}

// Decide applies the access rules in order; the first match wins.
//  1. the auth API, the login and register pages and the home page are public;
//  2. reading the video API is public;
//  3. everything else needs a session.
func Decide(path, method string, session *entity.Session) Decision {
	if strings.HasPrefix(path, "/api/auth") || path == loginPath || path == "/register" || path == "/" {
		return Allow
	}

	if strings.HasPrefix(path, "/api/videos") && (method == http.MethodGet || method == http.MethodHead) {
		return Allow
	}

	if session != nil {
		return Allow
	}

	return Deny
}

// AuthGateParams holds dependencies for AuthGate, injected by Fx.
type AuthGateParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthGate decodes the session on every request and enforces Decide.
type AuthGate struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthGate creates the gate middleware.
func NewAuthGate(params AuthGateParams) *AuthGate {
	return &AuthGate{
		authUC:     params.AuthUC,
		cookieName: params.Config.Session.CookieName,
	}
}

// Handle is the echo middleware.
func (g *AuthGate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if skipped(path) {
			return next(c)
		}

		session := g.resolve(c)
		if session != nil {
			deliverycontext.SetSession(c, session)
		}

		if Decide(path, c.Request().Method, session) == Allow {
			return next(c)
		}

		if strings.HasPrefix(path, apiPrefix) {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
		}

		return c.Redirect(http.StatusFound, loginPath+"?callbackUrl="+url.QueryEscape(c.Request().RequestURI))
	}
}

// resolve never fails: a bad or missing token is an anonymous request.
func (g *AuthGate) resolve(c echo.Context) *entity.Session {
	token := ""
	if cookie, err := c.Cookie(g.cookieName); err == nil {
		token = cookie.Value
	}
	if token == "" {
		token = bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	}

	session, ok := g.authUC.ResolveSession(token)
	if !ok {
		return nil
	}

	return session
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}

	return ""
}

func skipped(path string) bool {
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
