package validator

import (
	"testing"

	domainerrors "vidshare/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRegister struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

type testTransformation struct {
	Quality *int `json:"quality" validate:"omitempty,min=1,max=100"`
}

type testVideo struct {
	Title          string              `json:"title" validate:"required,max=100"`
	Transformation *testTransformation `json:"transformation" validate:"omitempty"`
	Internal       string              `json:"-" validate:"required"`
}

func fieldErrors(t *testing.T, err error) []domainerrors.FieldError {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	fields, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok)

	return fields
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&testRegister{Email: "a@example.com", Password: "Password1", ConfirmPassword: "Password1"}))
	assert.NoError(t, v.Validate(&testRegister{Email: "a@example.com", Password: "Password1"}))
}

func TestValidator_FieldMessages(t *testing.T) {
	v := New()

	fields := fieldErrors(t, v.Validate(&testRegister{Email: "not-an-email", Password: "Password1", ConfirmPassword: "Other1234"}))
	assert.ElementsMatch(t, []domainerrors.FieldError{
		{Field: "email", Message: "Invalid email address"},
		{Field: "confirmPassword", Message: "Passwords do not match"},
	}, fields)

	fields = fieldErrors(t, v.Validate(&testRegister{}))
	assert.ElementsMatch(t, []domainerrors.FieldError{
		{Field: "email", Message: "Email is required"},
		{Field: "password", Message: "Password is required"},
	}, fields)
}

func TestValidator_NestedAndUnnamedFields(t *testing.T) {
	v := New()
	quality := 101

	fields := fieldErrors(t, v.Validate(&testVideo{
		Title:          string(make([]byte, 101)),
		Transformation: &testTransformation{Quality: &quality},
	}))

	assert.ElementsMatch(t, []domainerrors.FieldError{
		{Field: "title", Message: "Title must be less than 100 characters"},
		{Field: "transformation.quality", Message: "Quality must be between 1 and 100"},
		{Field: "Internal", Message: "Internal is required"},
	}, fields)
}
