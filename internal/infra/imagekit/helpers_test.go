package imagekit

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // matches the production signature scheme
	"encoding/hex"
)

func expectedSignature(key, message string) string {
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(message))

	return hex.EncodeToString(mac.Sum(nil))
}
