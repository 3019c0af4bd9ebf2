// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"vidshare/config"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
)

// bcryptMaxInput is the number of bytes bcrypt actually reads from a password.
const bcryptMaxInput = 72

const passwordField = "password"

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, cfg.PasswordStrength)
}

// NewBcryptHasherWithCost returns a hasher with an explicit cost. A nil policy uses the default one.
func NewBcryptHasherWithCost(cost int, strength *config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	policy := defaultPasswordStrength()
	if strength != nil {
		policy = *strength
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxInput {
		policy.MaxLength = bcryptMaxInput
	}

	return &bcryptHasher{cost: cost, strength: policy}
}

func defaultPasswordStrength() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		MaxLength:        bcryptMaxInput,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength returns a validation error listing every rule the password breaks.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var violations []domainerrors.FieldError
	add := func(msg string) {
		violations = append(violations, domainerrors.FieldError{Field: passwordField, Message: msg})
	}

	if utf8.RuneCountInString(password) < h.strength.MinLength {
		add(fmt.Sprintf("Password must be at least %d characters", h.strength.MinLength))
	}
	if len(password) > h.strength.MaxLength {
		add(fmt.Sprintf("Password must be at most %d bytes", h.strength.MaxLength))
	}
	if h.strength.RequireUppercase && !h.hasUppercase(password) {
		add("Password must contain at least one uppercase letter")
	}
	if h.strength.RequireLowercase && !h.hasLowercase(password) {
		add("Password must contain at least one lowercase letter")
	}
	if h.strength.RequireNumbers && !h.hasNumbers(password) {
		add("Password must contain at least one number")
	}
	if h.strength.RequireSpecial && !h.hasSpecialChars(password) {
		add("Password must contain at least one special character")
	}

	if len(violations) > 0 {
		return domainerrors.NewValidationError(violations...)
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return containsRune(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return containsRune(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return containsRune(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return containsRune(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func containsRune(s string, match func(rune) bool) bool {
	for _, r := range s {
		if match(r) {
			return true
		}
	}

	return false
}
