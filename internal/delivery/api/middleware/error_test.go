package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidshare/internal/delivery/api/response"
	domainerrors "vidshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/videos", nil), rec)

	mw.HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrVideoNotFound, "lookup"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video not found", body["error"])
	assert.Equal(t, "VIDEO_NOT_FOUND", body["code"])
	assert.NotEmpty(t, body["meta"])
}

func TestHandleHTTPError_ValidationDetails(t *testing.T) {
	err := domainerrors.NewValidationError(domainerrors.FieldError{Field: "title", Message: "Title is required"})
	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", body["error"])
	assert.Equal(t, []any{map[string]any{"field": "title", "message": "Title is required"}}, body["details"])
}

func TestHandleHTTPError_HidesServerDetails(t *testing.T) {
	err := domainerrors.NewDatabaseExecuteError(errors.New("dial tcp 10.0.0.5:5432: connection refused"), "failed to list videos")
	rec, body := handleError(t, errors.Wrap(err, "list"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "STORAGE_UNAVAILABLE", body["code"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.NotContains(t, body, "details")
}

func TestHandleHTTPError_SessionInvalidBecomesUnauthorized(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrSessionInvalid)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestHandleHTTPError_EchoAndUnknownErrors(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body["code"])

	rec, body = handleError(t, errors.New("nil pointer somewhere"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotContains(t, rec.Body.String(), "nil pointer")
}

func TestResponseEnvelope_Message(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/auth/register", nil), rec)

	require.NoError(t, response.Message(c, http.StatusCreated, "User registered successfully"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotContains(t, body, "data")
}
