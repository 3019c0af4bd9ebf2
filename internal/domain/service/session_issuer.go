package service

import (
	"time"

	"vidshare/internal/domain/entity"
)

// SessionLifetime is how long a signed session stays valid.
const SessionLifetime = 30 * 24 * time.Hour

// SessionIssuer signs and verifies stateless session tokens.
type SessionIssuer interface {
	// Issue signs a token for the identity that expires after SessionLifetime.
	Issue(identity entity.Identity) (*entity.IssuedSession, error)

	// Decode verifies a token. Every failure returns domainerrors.ErrSessionInvalid.
	Decode(token string) (*entity.Session, error)
}
