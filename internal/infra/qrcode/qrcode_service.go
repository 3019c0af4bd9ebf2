// Package qrcode renders share codes for video pages.
package qrcode

import (
	"net/url"
	"strings"

	"vidshare/config"
	"vidshare/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const videoPathPrefix = "/videos/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New builds the share-code service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(cfg.HTTP.PublicBaseURL, 256, "M")
	}

	return NewQRCodeService(cfg.HTTP.PublicBaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimSuffix(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVideoQR encodes the public page URL of a video as a PNG.
func (s *qrcodeService) GenerateVideoQR(videoID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.videoURL(videoID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseVideoQR extracts the video ID from a scanned share URL.
func (s *qrcodeService) ParseVideoQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code URL")
	}

	path := parsed.Path
	if base, err := url.Parse(s.baseURL); err == nil && base.Path != "" {
		path = strings.TrimPrefix(path, strings.TrimSuffix(base.Path, "/"))
	}

	if !strings.HasPrefix(path, videoPathPrefix) {
		return uuid.Nil, errors.Errorf("invalid QR code path: %s", parsed.Path)
	}

	videoID, err := uuid.Parse(strings.TrimPrefix(path, videoPathPrefix))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse video ID")
	}

	return videoID, nil
}

func (s *qrcodeService) videoURL(videoID uuid.UUID) string {
	return s.baseURL + videoPathPrefix + videoID.String()
}
