// Package validator adapts go-playground/validator to Echo and renders field-level messages.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "vidshare/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// fieldMessages holds the user-facing message for a field and tag pair.
var fieldMessages = map[string]string{
	"email.required":             "Email is required",
	"email.email":                "Invalid email address",
	"password.required":          "Password is required",
	"password.min":               "Password must be at least 8 characters",
	"confirmPassword.required":   "Please confirm your password",
	"confirmPassword.eqfield":    "Passwords do not match",
	"title.required":             "Title is required",
	"title.max":                  "Title must be less than 100 characters",
	"description.required":       "Description is required",
	"description.max":            "Description must be less than 500 characters",
	"videoUrl.required":          "Invalid video URL",
	"videoUrl.url":               "Invalid video URL",
	"thumbnailUrl.required":      "Invalid thumbnail URL",
	"thumbnailUrl.url":           "Invalid thumbnail URL",
	"transformation.quality.min": "Quality must be between 1 and 100",
	"transformation.quality.max": "Quality must be between 1 and 100",
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate returns domainerrors.ErrValidationFailed carrying one FieldError per violation.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fieldPath(fe)
		fields = append(fields, domainerrors.FieldError{
			Field:   field,
			Message: message(field, fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// fieldPath drops the root struct name from the namespace: "Req.transformation.quality" -> "transformation.quality".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}

	return fe.Field()
}

func message(field string, fe validator.FieldError) string {
	if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
