package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidshare/internal/delivery/context"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
	"vidshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type uploadService struct {
	signer service.UploadSigner
	logger *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Signer service.UploadSigner `optional:"true"`
	Logger *slog.Logger
}

// NewUploadService creates the upload credential usecase. A missing signer makes every request fail.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		signer: params.Signer,
		logger: params.Logger,
	}
}

func (srv *uploadService) UploadAuth(ctx context.Context, session *entity.Session) (*service.UploadAuth, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if srv.signer == nil {
		return nil, errors.Wrap(domainerrors.ErrUploadAuthFailed, "media CDN is not configured")
	}

	auth, err := srv.signer.Sign()
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to sign upload credentials",
			slog.Any("userID", session.UserID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrUploadAuthFailed, err.Error())
	}

	return auth, nil
}
