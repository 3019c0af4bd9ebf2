package auth

import (
	"strings"
	"testing"

	"vidshare/config"
	domainerrors "vidshare/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost, nil).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, hasher.Check(password, hash))

	// Salted: two hashes of the same password differ
	other, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123",
		"MySecure@Pass1",
		"Pässphräse123",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedMsg string
	}{
		{"Ab1", "Password must be at least 8 characters"},
		{"PASSWORD123", "Password must contain at least one lowercase letter"},
		{"password123", "Password must contain at least one uppercase letter"},
		{"PasswordABC", "Password must contain at least one number"},
		{"Aa1" + strings.Repeat("x", 80), "Password must be at most 72 bytes"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, "Expected error for password: %s", tc.password)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		fields, ok := appErr.Details().([]domainerrors.FieldError)
		require.True(t, ok)
		assert.Contains(t, fields, domainerrors.FieldError{Field: "password", Message: tc.expectedMsg})
	}
}

func TestBcryptHasher_ReportsEveryViolation(t *testing.T) {
	hasher := newTestHasher()

	err := hasher.ValidatePasswordStrength("")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	fields, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok)
	assert.Len(t, fields, 4)
}

func TestBcryptHasher_WithCustomPolicy(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, &config.PasswordStrengthConfig{
		MinLength:      4,
		RequireSpecial: true,
	})

	assert.NoError(t, hasher.ValidatePasswordStrength("ab!c"))
	assert.Error(t, hasher.ValidatePasswordStrength("abcd"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost, nil)

	hash, err := hasher.Hash("StrongPass123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99, nil).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))

	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))

	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))

	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))
}
