package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// VideoHeight and VideoWidth are fixed for every upload (portrait 9:16).
	VideoHeight = 1920
	VideoWidth  = 1080

	DefaultVideoQuality = 100
)

// Video is a published clip. The media itself lives on the CDN; only URLs are stored.
type Video struct {
	ID             uuid.UUID
	Title          string
	Description    string
	VideoURL       string
	ThumbnailURL   string
	Controls       bool
	Transformation VideoTransformation
	OwnerID        *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// VideoTransformation describes how the CDN should render the video.
type VideoTransformation struct {
	Height  int `json:"height"`
	Width   int `json:"width"`
	Quality int `json:"quality"`
}
