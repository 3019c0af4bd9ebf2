// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in. Email is unique across all users.
type User struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Email        string       // Login identifier, unique in storage.
	PasswordHash *string      // bcrypt hash; nil for accounts created through an external provider.
	Provider     ProviderType // How the account was first created.
	CreatedAt    time.Time    // Timestamp of when this user account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Identity returns the normalized identity handed to the session issuer.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email}
}
