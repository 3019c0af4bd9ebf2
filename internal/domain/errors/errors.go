package errors

import (
	"net/http"

	"vidshare/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
	parent    *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy carrying details. The copy is still matched by errors.Is
// against the predefined value it was derived from.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    e.root(),
	}
}

// Is matches copies made by WithDetails against their predefined origin.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *BaseError) root() *BaseError {
	if e.parent != nil {
		return e.parent
	}

	return e
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError returns ErrValidationFailed carrying the field-level details.
func NewValidationError(fields ...FieldError) *BaseError {
	return ErrValidationFailed.WithDetails(fields)
}

// Predefined error types
var (
	// Credential errors. OAuth-only accounts render exactly like a bad password.
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Email and password are required",
		nil,
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		nil,
	)

	ErrOAuthOnlyAccount = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		nil,
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		nil,
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User already registered",
		nil,
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to register user",
		nil,
	)

	ErrIdentityLink = NewBaseError(
		http.StatusInternalServerError,
		"IDENTITY_LINK_FAILED",
		"Could not link external identity",
		nil,
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		nil,
	)

	// Session errors. ErrSessionInvalid never reaches a client; callers treat it as "no session".
	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Session is missing, expired or invalid",
		nil,
	)

	ErrSessionIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_ISSUE_FAILED",
		"Could not start a session",
		nil,
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		nil,
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"External sign-in failed",
		nil,
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Sign-in request expired or was tampered with",
		nil,
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"Invalid ID token",
		nil,
	)

	ErrProviderNotSupported = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_NOT_SUPPORTED",
		"Sign-in provider is not available",
		nil,
	)

	// Video-related errors
	ErrVideoNotFound = NewBaseError(
		http.StatusNotFound,
		"VIDEO_NOT_FOUND",
		"Video not found",
		nil,
	)

	ErrVideoCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"VIDEO_CREATION_FAILED",
		"Failed to create video",
		nil,
	)

	ErrUploadAuthFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_AUTH_FAILED",
		"Authentication failed",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		nil,
	)

	// Storage errors
	ErrStorageUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_UNAVAILABLE",
		"Internal server error, please try again later",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Is lets callers match any database failure against ErrStorageUnavailable.
func (e *DatabaseExecuteError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrStorageUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrStorageUnavailable.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
