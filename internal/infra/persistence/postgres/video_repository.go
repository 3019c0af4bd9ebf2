package postgres

import (
	"context"

	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/repository"
	"vidshare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type videoRepository struct {
	conn *Connector
}

// NewVideoRepository creates the GORM-backed video repository.
func NewVideoRepository(conn *Connector) repository.VideoRepository {
	return &videoRepository{conn: conn}
}

func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	ctx, cancel := repo.conn.WithTimeout(ctx)
	defer cancel()

	db, err := repo.conn.DB(ctx)
	if err != nil {
		return err
	}

	if video.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate video id")
		}
		video.ID = id
	}

	videoM := fromVideoDomain(video)
	if err := db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVideoCreationFailed.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	ctx, cancel := repo.conn.WithTimeout(ctx)
	defer cancel()

	db, err := repo.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var videoM model.VideoModel
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find video")
	}

	return toVideoDomain(&videoM), nil
}

// List returns all videos ordered by creation time, newest first.
func (repo *videoRepository) List(ctx context.Context) ([]*entity.Video, error) {
	ctx, cancel := repo.conn.WithTimeout(ctx)
	defer cancel()

	db, err := repo.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var videoMs []model.VideoModel
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&videoMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list videos")
	}

	videos := make([]*entity.Video, 0, len(videoMs))
	for i := range videoMs {
		videos = append(videos, toVideoDomain(&videoMs[i]))
	}

	return videos, nil
}

func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	t := data.Transformation.Data()

	return &entity.Video{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		VideoURL:     data.VideoURL,
		ThumbnailURL: data.ThumbnailURL,
		Controls:     data.Controls,
		Transformation: entity.VideoTransformation{
			Height:  t.Height,
			Width:   t.Width,
			Quality: t.Quality,
		},
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromVideoDomain(data *entity.Video) *model.VideoModel {
	if data == nil {
		return nil
	}

	return &model.VideoModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		VideoURL:     data.VideoURL,
		ThumbnailURL: data.ThumbnailURL,
		Controls:     data.Controls,
		Transformation: datatypes.NewJSONType(model.TransformationModel{
			Height:  data.Transformation.Height,
			Width:   data.Transformation.Width,
			Quality: data.Transformation.Quality,
		}),
		OwnerID: data.OwnerID,
	}
}
