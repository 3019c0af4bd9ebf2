// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vidshare/internal/domain/entity"
	"vidshare/internal/domain/service"
)

// --- Identity proofs ---

// IdentityProof is evidence that the caller controls an account. The set of proofs is closed:
// only CredentialProof and ExternalProof satisfy it.
type IdentityProof interface {
	isIdentityProof()
}

// CredentialProof is an email and password pair submitted by the user.
type CredentialProof struct {
	Email    string
	Password string
}

func (CredentialProof) isIdentityProof() {}

// ExternalProof is an identity asserted by a trusted external provider.
type ExternalProof struct {
	Provider entity.ProviderType
	Email    string
	Profile  *service.OAuthUser
}

func (ExternalProof) isIdentityProof() {}

// --- Input DTOs ---

// RegisterInput defines the data required to register a credentials account.
type RegisterInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignInOutput carries the authenticated identity and its freshly issued session.
type SignInOutput struct {
	Identity entity.Identity
	Session  *entity.IssuedSession
}

// ExternalSignInOutput adds the page the browser should land on after the handshake.
type ExternalSignInOutput struct {
	SignInOutput
	CallbackURL string
}

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// AuthUsecase defines the authentication operations used by the delivery layer.
type AuthUsecase interface {
	// SignIn verifies a proof and issues a session for the resulting identity.
	SignIn(ctx context.Context, proof IdentityProof) (*SignInOutput, error)
	// Register creates a credentials account.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	// ResolveSession decodes a session token. Any failure means no session.
	ResolveSession(token string) (*entity.Session, bool)
	// CurrentUser loads the user a session belongs to.
	CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error)

	// Providers lists the external providers that are configured.
	Providers() []entity.ProviderType
	// BeginExternalSignIn stores a one-time state and returns the provider consent URL.
	BeginExternalSignIn(ctx context.Context, provider entity.ProviderType, callbackURL string) (string, error)
	// CompleteExternalSignIn validates state, exchanges the code and signs the user in.
	CompleteExternalSignIn(ctx context.Context, provider entity.ProviderType, state, code string) (*ExternalSignInOutput, error)
	// SignInWithGoogleIDToken signs in with an ID token obtained by a client-side Google button.
	SignInWithGoogleIDToken(ctx context.Context, idToken string) (*SignInOutput, error)
}
