package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
	mockUC "vidshare/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T, session *entity.Session) (*echo.Echo, *mockUC.MockUploadUsecase) {
	uploadUC := mockUC.NewMockUploadUsecase(t)
	h := NewUploadHandler(uploadUC)

	e := newTestEcho()
	e.GET("/api/auth/imagekit-auth", h.ImageKitAuth, withSession(session))

	return e, uploadUC
}

func TestUploadHandler_ImageKitAuth(t *testing.T) {
	session := &entity.Session{UserID: uuid.New()}
	e, uploadUC := newUploadFixture(t, session)
	uploadUC.EXPECT().UploadAuth(mock.Anything, session).Return(&service.UploadAuth{
		Token:     "token-1",
		Expire:    1790000000,
		Signature: "sig",
		PublicKey: "public_key",
	}, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/auth/imagekit-auth", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.Equal(t, map[string]any{
		"token":     "token-1",
		"expire":    float64(1790000000),
		"signature": "sig",
		"publicKey": "public_key",
	}, decodeBody(t, rec))
}

func TestUploadHandler_ImageKitAuthRequiresSession(t *testing.T) {
	e, uploadUC := newUploadFixture(t, nil)
	uploadUC.EXPECT().UploadAuth(mock.Anything, (*entity.Session)(nil)).Return(nil, domainerrors.ErrUnauthorized)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/auth/imagekit-auth", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeBody(t, rec)["code"])
}

func TestUploadHandler_ImageKitAuthFailure(t *testing.T) {
	e, uploadUC := newUploadFixture(t, &entity.Session{UserID: uuid.New()})
	uploadUC.EXPECT().UploadAuth(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUploadAuthFailed)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/auth/imagekit-auth", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Authentication failed", decodeBody(t, rec)["error"])
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "ok"}, decodeBody(t, rec)["data"])
}
