// Package imagekit signs client-side upload requests for the ImageKit media CDN.
package imagekit

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // ImageKit upload signatures are defined as HMAC-SHA1.
	"encoding/hex"
	"strconv"
	"time"

	"vidshare/config"
	"vidshare/internal/domain/service"
	"vidshare/internal/errors"

	"github.com/google/uuid"
)

// maxTokenTTL is the longest expiry ImageKit accepts for an upload signature.
const maxTokenTTL = time.Hour

type uploadSigner struct {
	publicKey  string
	privateKey []byte
	ttl        time.Duration
	now        func() time.Time
	newToken   func() string
}

// NewUploadSigner returns nil when ImageKit keys are not configured.
func NewUploadSigner(cfg *config.Config) service.UploadSigner {
	if cfg.ImageKit == nil || cfg.ImageKit.PrivateKey == "" {
		return nil
	}

	return newUploadSigner(cfg.ImageKit.PublicKey, cfg.ImageKit.PrivateKey, cfg.ImageKit.TokenTTL, time.Now)
}

func newUploadSigner(publicKey, privateKey string, ttl time.Duration, now func() time.Time) *uploadSigner {
	if ttl <= 0 || ttl >= maxTokenTTL {
		ttl = 30 * time.Minute
	}

	return &uploadSigner{
		publicKey:  publicKey,
		privateKey: []byte(privateKey),
		ttl:        ttl,
		now:        now,
		newToken:   uuid.NewString,
	}
}

// Sign issues a one-time token with signature = hex(HMAC-SHA1(privateKey, token + expire)).
func (s *uploadSigner) Sign() (*service.UploadAuth, error) {
	if len(s.privateKey) == 0 {
		return nil, errors.New("imagekit private key is not configured")
	}

	token := s.newToken()
	expire := s.now().Add(s.ttl).Unix()

	mac := hmac.New(sha1.New, s.privateKey)
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return &service.UploadAuth{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
		PublicKey: s.publicKey,
	}, nil
}
