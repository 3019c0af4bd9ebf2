package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidshare/internal/delivery/context"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/repository"
	"vidshare/internal/domain/service"
	"vidshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type videoService struct {
	videoRepo repository.VideoRepository
	publisher service.EventPublisher
	qrService service.QRCodeService
	logger    *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	VideoRepo repository.VideoRepository
	Publisher service.EventPublisher `optional:"true"`
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewVideoService creates the video catalogue usecase.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		videoRepo: params.VideoRepo,
		publisher: params.Publisher,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *videoService) ListVideos(ctx context.Context) ([]*entity.Video, error) {
	videos, err := srv.videoRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return videos, nil
}

// GetVideo treats a malformed ID like an unknown one.
func (srv *videoService) GetVideo(ctx context.Context, id string) (*entity.Video, error) {
	videoID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "malformed video id")
	}

	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	return video, nil
}

// CreateVideo stores a video owned by the session user and announces it.
func (srv *videoService) CreateVideo(ctx context.Context, session *entity.Session, input usecase.CreateVideoInput) (*entity.Video, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	controls := true
	if input.Controls != nil {
		controls = *input.Controls
	}
	quality := entity.DefaultVideoQuality
	if input.Quality != nil {
		quality = *input.Quality
	}

	ownerID := session.UserID
	video := &entity.Video{
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		Controls:     controls,
		Transformation: entity.VideoTransformation{
			Height:  entity.VideoHeight,
			Width:   entity.VideoWidth,
			Quality: quality,
		},
		OwnerID: &ownerID,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		srv.log(ctx).Error("Failed to create video", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create video")
	}
	srv.log(ctx).Info("Video created", slog.Any("videoID", video.ID), slog.Any("ownerID", ownerID))

	srv.publishCreated(ctx, video)

	return video, nil
}

// publishCreated never fails the request; the record is already stored.
func (srv *videoService) publishCreated(ctx context.Context, video *entity.Video) {
	if srv.publisher == nil {
		return
	}

	event := &service.VideoCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		VideoID:   video.ID.String(),
		Title:     video.Title,
		VideoURL:  video.VideoURL,
		CreatedAt: video.CreatedAt,
	}
	if video.OwnerID != nil {
		event.OwnerID = video.OwnerID.String()
	}

	if err := srv.publisher.PublishVideoCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish video created event", slog.Any("videoID", video.ID), slog.Any("error", err))
	}
}

// VideoQRCode renders a share code for an existing video.
func (srv *videoService) VideoQRCode(ctx context.Context, id string) ([]byte, error) {
	video, err := srv.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateVideoQR(video.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}
