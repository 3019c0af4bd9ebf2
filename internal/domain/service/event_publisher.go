package service

import (
	"context"
	"time"
)

// VideoCreatedEvent is published after a video record is stored.
type VideoCreatedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	VideoID   string    `json:"video_id"`
	OwnerID   string    `json:"owner_id,omitempty"`
	Title     string    `json:"title"`
	VideoURL  string    `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVideoCreated announces a new video to downstream consumers
	PublishVideoCreated(ctx context.Context, event *VideoCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
