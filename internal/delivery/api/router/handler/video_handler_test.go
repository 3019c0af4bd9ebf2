package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "vidshare/internal/delivery/context"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	mockUC "vidshare/internal/mocks/usecase"
	"vidshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVideoFixture(t *testing.T, session *entity.Session) (*echo.Echo, *mockUC.MockVideoUsecase) {
	videoUC := mockUC.NewMockVideoUsecase(t)
	h := NewVideoHandler(VideoHandlerParams{VideoUC: videoUC})

	e := newTestEcho()
	g := e.Group("/api/videos", withSession(session))
	g.GET("", h.ListVideos)
	g.POST("", h.CreateVideo)
	g.GET("/:id", h.GetVideo)
	g.GET("/:id/qr", h.GetVideoQR)

	return e, videoUC
}

func sampleVideo(owner *uuid.UUID) *entity.Video {
	return &entity.Video{
		ID:           uuid.New(),
		Title:        "Sunset",
		Description:  "Timelapse over the bay",
		VideoURL:     "https://ik.imagekit.io/demo/sunset.mp4",
		ThumbnailURL: "https://ik.imagekit.io/demo/sunset.jpg",
		Controls:     true,
		Transformation: entity.VideoTransformation{
			Height:  entity.VideoHeight,
			Width:   entity.VideoWidth,
			Quality: entity.DefaultVideoQuality,
		},
		OwnerID:   owner,
		CreatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestVideoHandler_ListVideos(t *testing.T) {
	e, videoUC := newVideoFixture(t, nil)
	videoUC.EXPECT().ListVideos(mock.Anything).Return([]*entity.Video{sampleVideo(nil), sampleVideo(nil)}, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/videos", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, "Sunset", first["title"])
	assert.Equal(t, "https://ik.imagekit.io/demo/sunset.mp4", first["videoUrl"])
	assert.NotContains(t, first, "ownerId")
}

func TestVideoHandler_ListVideosEmpty(t *testing.T) {
	e, videoUC := newVideoFixture(t, nil)
	videoUC.EXPECT().ListVideos(mock.Anything).Return(nil, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/videos", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, decodeBody(t, rec)["data"])
}

func TestVideoHandler_GetVideo(t *testing.T) {
	owner := uuid.New()
	video := sampleVideo(&owner)
	e, videoUC := newVideoFixture(t, nil)
	videoUC.EXPECT().GetVideo(mock.Anything, video.ID.String()).Return(video, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/videos/"+video.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, owner.String(), data["ownerId"])
	assert.Equal(t, map[string]any{"height": float64(1920), "width": float64(1080), "quality": float64(100)}, data["transformation"])
}

func TestVideoHandler_GetVideoNotFound(t *testing.T) {
	e, videoUC := newVideoFixture(t, nil)
	videoUC.EXPECT().GetVideo(mock.Anything, "missing").Return(nil, errors.Wrap(domainerrors.ErrVideoNotFound, "invalid id"))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/videos/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video not found", decodeBody(t, rec)["error"])
}

func TestVideoHandler_GetVideoQR(t *testing.T) {
	e, videoUC := newVideoFixture(t, nil)
	png := []byte("\x89PNG\r\n\x1a\n")
	videoUC.EXPECT().VideoQRCode(mock.Anything, "abc").Return(png, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/videos/abc/qr", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestVideoHandler_CreateVideo(t *testing.T) {
	userID := uuid.New()
	session := &entity.Session{UserID: userID}
	e, videoUC := newVideoFixture(t, session)

	quality := 80
	controls := false
	expected := usecase.CreateVideoInput{
		Title:        "Sunset",
		Description:  "Timelapse over the bay",
		VideoURL:     "https://ik.imagekit.io/demo/sunset.mp4",
		ThumbnailURL: "https://ik.imagekit.io/demo/sunset.jpg",
		Controls:     &controls,
		Quality:      &quality,
	}
	videoUC.EXPECT().CreateVideo(mock.Anything, session, expected).Return(sampleVideo(&userID), nil)

	var logs bytes.Buffer
	req := jsonRequest(http.MethodPost, "/api/videos", `{
		"title": "Sunset",
		"description": "Timelapse over the bay",
		"videoUrl": "https://ik.imagekit.io/demo/sunset.mp4",
		"thumbnailUrl": "https://ik.imagekit.io/demo/sunset.jpg",
		"controls": false,
		"transformation": {"quality": 80}
	}`)
	req = req.WithContext(deliverycontext.WithLogger(req.Context(), slog.New(slog.NewTextHandler(&logs, nil))))

	rec := serve(e, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, userID.String(), decodeBody(t, rec)["data"].(map[string]any)["ownerId"])
	// The usecase owns the creation log line.
	assert.NotContains(t, logs.String(), "Video created")
}

func TestVideoHandler_CreateVideoValidation(t *testing.T) {
	e, _ := newVideoFixture(t, &entity.Session{UserID: uuid.New()})

	rec := serve(e, jsonRequest(http.MethodPost, "/api/videos", `{
		"title": "",
		"description": "ok",
		"videoUrl": "not a url",
		"thumbnailUrl": "https://ik.imagekit.io/demo/sunset.jpg",
		"transformation": {"quality": 150}
	}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.ElementsMatch(t, []any{
		map[string]any{"field": "title", "message": "Title is required"},
		map[string]any{"field": "videoUrl", "message": "Invalid video URL"},
		map[string]any{"field": "transformation.quality", "message": "Quality must be between 1 and 100"},
	}, decodeBody(t, rec)["details"])
}

func TestVideoHandler_CreateVideoWithoutSession(t *testing.T) {
	e, videoUC := newVideoFixture(t, nil)
	videoUC.EXPECT().CreateVideo(mock.Anything, (*entity.Session)(nil), mock.Anything).
		Return(nil, domainerrors.ErrUnauthorized)

	rec := serve(e, jsonRequest(http.MethodPost, "/api/videos", `{
		"title": "Sunset",
		"description": "Timelapse",
		"videoUrl": "https://ik.imagekit.io/demo/sunset.mp4",
		"thumbnailUrl": "https://ik.imagekit.io/demo/sunset.jpg"
	}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
