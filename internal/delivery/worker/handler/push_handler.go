// Package handler contains the Pub/Sub push handlers of the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"vidshare/config"
	deliverycontext "vidshare/internal/delivery/context"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/repository"
	"vidshare/internal/domain/service"
	"vidshare/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a push request's OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes video.created push messages and records each publication.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	videoRepo      repository.VideoRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	VideoRepo repository.VideoRepository
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified only for
// Google Pub/Sub outside local development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		videoRepo:      params.VideoRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.VideoCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse video event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processVideoCreated(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process video event",
			slog.String("video_id", event.VideoID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; 200 drops a message that can never succeed.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.VideoCreatedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processVideoCreated confirms the announced video is stored and records its publication.
func (h *PushHandler) processVideoCreated(ctx context.Context, event *service.VideoCreatedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	videoID, err := uuid.Parse(event.VideoID)
	if err != nil {
		return errors.Wrapf(err, "invalid video id %q", event.VideoID)
	}

	video, err := h.videoRepo.FindByID(ctx, videoID)
	if errors.Is(err, repository.ErrVideoNotFound) {
		logger.Warn("[Worker] Announced video is not stored", slog.String("video_id", event.VideoID))

		return nil
	}
	if errors.Is(err, domainerrors.ErrStorageUnavailable) {
		return newRetryableError(err)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	attrs := []any{
		slog.String("video_id", video.ID.String()),
		slog.String("title", video.Title),
		slog.Time("created_at", video.CreatedAt),
	}
	if video.OwnerID != nil {
		attrs = append(attrs, slog.String("owner_id", video.OwnerID.String()))
	}
	logger.Info("[Worker] Video published", attrs...)

	return nil
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
