package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TransformationModel is stored as JSONB inside videos.transformation.
type TransformationModel struct {
	Height  int `json:"height"`
	Width   int `json:"width"`
	Quality int `json:"quality"`
}

// VideoModel mirrors the 'videos' table.
type VideoModel struct {
	ID             uuid.UUID                               `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string                                  `gorm:"type:varchar(100);not null"`
	Description    string                                  `gorm:"type:varchar(500);not null"`
	VideoURL       string                                  `gorm:"column:video_url;type:text;not null"`
	ThumbnailURL   string                                  `gorm:"column:thumbnail_url;type:text;not null"`
	Controls       bool                                    `gorm:"not null"`
	Transformation datatypes.JSONType[TransformationModel] `gorm:"type:jsonb;not null"`
	OwnerID        *uuid.UUID                              `gorm:"type:uuid;index"`
	CreatedAt      time.Time                               `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}
