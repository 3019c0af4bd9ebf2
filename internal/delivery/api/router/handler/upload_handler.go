package handler

import (
	"net/http"

	deliverycontext "vidshare/internal/delivery/context"
	"vidshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler issues direct-upload credentials
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(uploadUC usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// ImageKitAuth returns upload credentials as a bare object, the shape the ImageKit client SDK reads.
func (h *UploadHandler) ImageKitAuth(c echo.Context) error {
	auth, err := h.uploadUC.UploadAuth(c.Request().Context(), deliverycontext.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.JSON(http.StatusOK, auth)
}
