package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes that point at a video page.
type QRCodeService interface {
	// GenerateVideoQR returns a PNG encoding the public URL of the video.
	GenerateVideoQR(videoID uuid.UUID) ([]byte, error)

	// ParseVideoQR extracts the video ID from the encoded URL.
	ParseVideoQR(qrData string) (uuid.UUID, error)
}
