package handler

import (
	"net/http"
	"time"

	"vidshare/internal/delivery/api/response"
	deliverycontext "vidshare/internal/delivery/context"
	"vidshare/internal/domain/entity"
	"vidshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	VideoUC usecase.VideoUsecase
}

// VideoHandler serves the /api/videos endpoints
type VideoHandler struct {
	videoUC usecase.VideoUsecase
}

// NewVideoHandler is the constructor for VideoHandler
func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videoUC: params.VideoUC,
	}
}

// CreateVideoRequest represents the request body for publishing a video
type CreateVideoRequest struct {
	Title          string                 `json:"title" validate:"required,max=100"`
	Description    string                 `json:"description" validate:"required,max=500"`
	VideoURL       string                 `json:"videoUrl" validate:"required,url"`
	ThumbnailURL   string                 `json:"thumbnailUrl" validate:"required,url"`
	Controls       *bool                  `json:"controls"`
	Transformation *TransformationRequest `json:"transformation"`
}

// TransformationRequest carries the optional rendering hints
type TransformationRequest struct {
	Quality *int `json:"quality" validate:"omitempty,min=1,max=100"`
}

// VideoResponse is the public view of a video
type VideoResponse struct {
	ID             string                     `json:"id"`
	Title          string                     `json:"title"`
	Description    string                     `json:"description"`
	VideoURL       string                     `json:"videoUrl"`
	ThumbnailURL   string                     `json:"thumbnailUrl"`
	Controls       bool                       `json:"controls"`
	Transformation entity.VideoTransformation `json:"transformation"`
	OwnerID        string                     `json:"ownerId,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
	UpdatedAt      time.Time                  `json:"updatedAt"`
}

// ListVideos returns every video, newest first.
func (h *VideoHandler) ListVideos(c echo.Context) error {
	videos, err := h.videoUC.ListVideos(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]VideoResponse, 0, len(videos))
	for _, video := range videos {
		out = append(out, newVideoResponse(video))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetVideo returns a single video.
func (h *VideoHandler) GetVideo(c echo.Context) error {
	video, err := h.videoUC.GetVideo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoResponse(video))
}

// GetVideoQR renders a PNG QR code linking to the video page.
func (h *VideoHandler) GetVideoQR(c echo.Context) error {
	png, err := h.videoUC.VideoQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateVideo publishes a video for the signed-in user.
func (h *VideoHandler) CreateVideo(c echo.Context) error {
	var req CreateVideoRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid video input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Controls:     req.Controls,
	}
	if req.Transformation != nil {
		input.Quality = req.Transformation.Quality
	}

	video, err := h.videoUC.CreateVideo(c.Request().Context(), deliverycontext.GetSession(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newVideoResponse(video))
}

func newVideoResponse(video *entity.Video) VideoResponse {
	out := VideoResponse{
		ID:             video.ID.String(),
		Title:          video.Title,
		Description:    video.Description,
		VideoURL:       video.VideoURL,
		ThumbnailURL:   video.ThumbnailURL,
		Controls:       video.Controls,
		Transformation: video.Transformation,
		CreatedAt:      video.CreatedAt,
		UpdatedAt:      video.UpdatedAt,
	}
	if video.OwnerID != nil {
		out.OwnerID = video.OwnerID.String()
	}

	return out
}
