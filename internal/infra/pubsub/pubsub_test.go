package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidshare/config"
	"vidshare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.VideoCreatedEvent {
	return &service.VideoCreatedEvent{
		RequestID: "req-1",
		VideoID:   "0190e1a2-0000-7000-8000-000000000001",
		OwnerID:   "0190e1a2-0000-7000-8000-000000000002",
		Title:     "Sunset",
		VideoURL:  "https://ik.imagekit.io/demo/sunset.mp4",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishVideoCreated(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "video.created", received.Message.Attributes["event_type"])
	assert.Equal(t, event.VideoID, received.Message.Attributes["video_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.VideoCreatedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())

	err := publisher.PublishVideoCreated(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishVideoCreated(context.Background(), newTestEvent()))
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9999/push/video-created"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: "project ID"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
