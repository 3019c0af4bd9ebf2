// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"vidshare/config"
	deliverycontext "vidshare/internal/delivery/context"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/repository"
	"vidshare/internal/domain/service"
	"vidshare/internal/infra/auth/oauthstate"
	"vidshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	sessions   service.SessionIssuer
	providers  service.IdentityProviders
	stateStore service.OAuthStateStore
	idTokens   service.IDTokenVerifier
	stateTTL   time.Duration
	newState   func() (string, error)
	logger     *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// dummyPassword is hashed once with the live hasher settings and compared against on failed lookups.
const dummyPassword = "vidshare-no-such-account"

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Sessions   service.SessionIssuer
	Providers  service.IdentityProviders
	StateStore service.OAuthStateStore
	IDTokens   service.IDTokenVerifier `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	stateTTL := config.DefaultOAuthStateTTL
	if params.Config != nil && params.Config.OAuth.StateTTL > 0 {
		stateTTL = params.Config.OAuth.StateTTL
	}

	return &authService{
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		sessions:   params.Sessions,
		providers:  params.Providers,
		stateStore: params.StateStore,
		idTokens:   params.IDTokens,
		stateTTL:   stateTTL,
		newState:   oauthstate.Generate,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies the proof, then issues a session for the resulting identity.
func (srv *authService) SignIn(ctx context.Context, proof usecase.IdentityProof) (*usecase.SignInOutput, error) {
	var (
		user *entity.User
		err  error
	)

	switch p := proof.(type) {
	case usecase.CredentialProof:
		user, err = srv.verifyCredentials(ctx, p)
	case usecase.ExternalProof:
		user, err = srv.linkExternalIdentity(ctx, p)
	default:
		return nil, errors.Wrapf(domainerrors.ErrInternalError, "unsupported identity proof %T", proof)
	}
	if err != nil {
		return nil, err
	}

	identity := user.Identity()
	session, err := srv.sessions.Issue(identity)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Any("userID", identity.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session")
	}
	srv.log(ctx).Debug("User signed in", slog.Any("userID", identity.ID), slog.String("provider", user.Provider.String()))

	return &usecase.SignInOutput{Identity: identity, Session: session}, nil
}

// verifyCredentials checks an email and password. Every mismatch looks identical to the caller.
func (srv *authService) verifyCredentials(ctx context.Context, proof usecase.CredentialProof) (*entity.User, error) {
	email := strings.TrimSpace(proof.Email)
	if email == "" || proof.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.checkDummyPassword(proof.Password)
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasPassword() {
		srv.checkDummyPassword(proof.Password)
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "external account"))

		return nil, errors.Wrap(domainerrors.ErrOAuthOnlyAccount, "login failed")
	}

	if !srv.hasher.Check(proof.Password, *user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return user, nil
}

// checkDummyPassword spends one bcrypt comparison so a rejected lookup takes as long as a password mismatch.
func (srv *authService) checkDummyPassword(password string) {
	srv.dummyOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Error("Failed to prepare dummy password hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})
	if srv.dummyHash != "" {
		srv.hasher.Check(password, srv.dummyHash)
	}
}

// linkExternalIdentity finds the account for an asserted email, creating a password-less one on
// first sign-in. The provider's email claim is trusted as is.
func (srv *authService) linkExternalIdentity(ctx context.Context, proof usecase.ExternalProof) (*entity.User, error) {
	if !proof.Provider.IsExternal() {
		return nil, errors.Wrapf(domainerrors.ErrProviderNotSupported, "provider %q", proof.Provider)
	}

	email := strings.TrimSpace(proof.Email)
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "provider did not assert an email")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to look up external identity", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrIdentityLink, err.Error())
	}

	newUser := &entity.User{
		Email:    email,
		Provider: proof.Provider,
	}
	err = srv.userRepo.Create(ctx, newUser)
	if err == nil {
		srv.log(ctx).Info("Provisioned account for external identity",
			slog.Any("userID", newUser.ID),
			slog.String("provider", proof.Provider.String()),
		)

		return newUser, nil
	}

	if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		srv.log(ctx).Error("Failed to provision external identity", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrIdentityLink, err.Error())
	}

	// Lost the race against a concurrent sign-in for the same email.
	user, err = srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrIdentityLink, err.Error())
	}

	return user, nil
}

// Register creates a credentials account.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email))

		return nil, err
	}

	// Avoid hashing for known duplicates. The unique index remains the authority.
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: &hash,
		Provider:     entity.ProviderCredentials,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to create user during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// ResolveSession decodes a session token. It never fails loudly: any problem means no session.
func (srv *authService) ResolveSession(token string) (*entity.Session, bool) {
	if token == "" {
		return nil, false
	}

	session, err := srv.sessions.Decode(token)
	if err != nil {
		return nil, false
	}

	return session, true
}

// CurrentUser loads the user a session belongs to.
func (srv *authService) CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find session user")
	}

	return user, nil
}

// Providers lists the external providers that are configured.
func (srv *authService) Providers() []entity.ProviderType {
	if srv.providers == nil {
		return nil
	}

	return srv.providers.Enabled()
}

// BeginExternalSignIn remembers where the browser should land, then returns the consent URL.
func (srv *authService) BeginExternalSignIn(ctx context.Context, provider entity.ProviderType, callbackURL string) (string, error) {
	idp, err := srv.provider(provider)
	if err != nil {
		return "", err
	}

	state, err := srv.newState()
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	value := service.OAuthState{Provider: provider, CallbackURL: safeCallbackURL(callbackURL)}
	if err := srv.stateStore.Save(ctx, state, value, srv.stateTTL); err != nil {
		srv.log(ctx).Error("Failed to store OAuth state", slog.String("provider", provider.String()), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return idp.AuthCodeURL(state), nil
}

// CompleteExternalSignIn validates the one-time state, exchanges the code and signs the user in.
func (srv *authService) CompleteExternalSignIn(
	ctx context.Context,
	provider entity.ProviderType,
	state, code string,
) (*usecase.ExternalSignInOutput, error) {
	idp, err := srv.provider(provider)
	if err != nil {
		return nil, err
	}

	if state == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, "missing state")
	}

	saved, err := srv.stateStore.Consume(ctx, state)
	if err != nil {
		return nil, err
	}
	if saved.Provider != provider {
		return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, "state was issued for another provider")
	}

	if code == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "missing authorization code")
	}

	oauthUser, err := idp.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, err
	}

	out, err := srv.SignIn(ctx, usecase.ExternalProof{
		Provider: provider,
		Email:    oauthUser.Email,
		Profile:  oauthUser,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ExternalSignInOutput{SignInOutput: *out, CallbackURL: saved.CallbackURL}, nil
}

// SignInWithGoogleIDToken verifies an ID token from a client-side Google button.
func (srv *authService) SignInWithGoogleIDToken(ctx context.Context, idToken string) (*usecase.SignInOutput, error) {
	srv.log(ctx).Info("Handling Google ID token sign-in")

	if srv.idTokens == nil {
		return nil, errors.Wrap(domainerrors.ErrProviderNotSupported, "google sign-in is not configured")
	}
	if idToken == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "missing id token")
	}

	oauthUser, err := srv.idTokens.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Google ID token")
	}

	return srv.SignIn(ctx, usecase.ExternalProof{
		Provider: entity.ProviderGoogle,
		Email:    oauthUser.Email,
		Profile:  oauthUser,
	})
}

func (srv *authService) provider(provider entity.ProviderType) (service.IdentityProvider, error) {
	if srv.providers == nil {
		return nil, errors.Wrapf(domainerrors.ErrProviderNotSupported, "provider %q", provider)
	}

	idp, ok := srv.providers.Get(provider)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrProviderNotSupported, "provider %q", provider)
	}

	return idp, nil
}

// safeCallbackURL only keeps same-site relative paths.
func safeCallbackURL(callbackURL string) string {
	if !strings.HasPrefix(callbackURL, "/") || strings.HasPrefix(callbackURL, "//") || strings.Contains(callbackURL, `\`) {
		return "/"
	}

	return callbackURL
}
