package qrcode

import (
	"testing"

	"vidshare/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://vidshare.example.com"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testBaseURL, tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNew_UsesDefaultsWithoutQRConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = testBaseURL + "/"

	svc, ok := New(cfg).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, testBaseURL, svc.baseURL)
	assert.Equal(t, 256, svc.size)
}

func TestQRCodeService_GenerateVideoQR(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")

	qrBytes, err := service.GenerateVideoQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateVideoQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testBaseURL, tt.size, "M")

			qrBytes, err := service.GenerateVideoQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseVideoQR(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")
	videoID := uuid.New()

	parsedID, err := service.ParseVideoQR(testBaseURL + "/videos/" + videoID.String())
	require.NoError(t, err)
	assert.Equal(t, videoID, parsedID)
}

func TestQRCodeService_ParseVideoQR_BasePath(t *testing.T) {
	service := NewQRCodeService(testBaseURL+"/share/", 256, "M")
	videoID := uuid.New()

	parsedID, err := service.ParseVideoQR(testBaseURL + "/share/videos/" + videoID.String())
	require.NoError(t, err)
	assert.Equal(t, videoID, parsedID)
}

func TestQRCodeService_ParseVideoQR_Invalid(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"wrong path", testBaseURL + "/users/" + uuid.NewString(), "invalid QR code path"},
		{"bad id", testBaseURL + "/videos/not-a-uuid", "failed to parse video ID"},
		{"unparseable", "http://[::1", "failed to parse QR code URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseVideoQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")
	svc := service.(*qrcodeService)
	videoID := uuid.New()

	_, err := service.GenerateVideoQR(videoID)
	require.NoError(t, err)

	// A scanner yields the encoded URL.
	parsedID, err := service.ParseVideoQR(svc.videoURL(videoID))
	require.NoError(t, err)
	assert.Equal(t, videoID, parsedID)
}
