package usecase

import (
	"context"

	"vidshare/internal/domain/entity"
	"vidshare/internal/domain/service"
)

// CreateVideoInput defines a video record submitted after a direct-to-CDN upload.
type CreateVideoInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	// Controls defaults to true when nil.
	Controls *bool
	// Quality defaults to entity.DefaultVideoQuality when nil.
	Quality *int
}

// VideoUsecase defines the video catalogue operations.
type VideoUsecase interface {
	ListVideos(ctx context.Context) ([]*entity.Video, error)
	GetVideo(ctx context.Context, id string) (*entity.Video, error)
	CreateVideo(ctx context.Context, session *entity.Session, input CreateVideoInput) (*entity.Video, error)
	VideoQRCode(ctx context.Context, id string) ([]byte, error)
}

// UploadUsecase issues credentials for direct uploads to the media CDN.
type UploadUsecase interface {
	UploadAuth(ctx context.Context, session *entity.Session) (*service.UploadAuth, error)
}
