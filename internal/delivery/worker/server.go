package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"vidshare/config"
	"vidshare/internal/delivery"
	"vidshare/internal/delivery/middleware"
	"vidshare/internal/delivery/worker/handler"
	"vidshare/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VideoCreatedPushPath receives video.created deliveries. Push subscriptions and
// pubsub.localEndpoint must target it.
const VideoCreatedPushPath = "/push/video-created"

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the video event worker.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker that records published videos from Pub/Sub pushes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	registerRoutes(e, params.Cfg, params.PushHandler)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func registerRoutes(e *echo.Echo, cfg *config.Config, pushHandler *handler.PushHandler) {
	topic := ""
	if cfg.PubSub != nil {
		topic = cfg.PubSub.TopicID
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "topic": topic})
	})
	e.POST(VideoCreatedPushPath, pushHandler.HandlePush)
}

// Serve listens for video event pushes until the server is shut down.
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting video event worker",
		slog.String("hostPort", hostPort),
		slog.String("pushPath", VideoCreatedPushPath),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down video event worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
