package repository

import (
	"context"
	"errors"

	"vidshare/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when no video matches the requested ID.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository defines persistence for published videos.
type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)
	// List returns every video, newest first.
	List(ctx context.Context) ([]*entity.Video, error)
}
