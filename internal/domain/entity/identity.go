package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the normalized result of a successful proof, whichever path produced it.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Session is the decoded content of a valid session token.
type Session struct {
	UserID    uuid.UUID
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedSession is a freshly signed session token.
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
}
