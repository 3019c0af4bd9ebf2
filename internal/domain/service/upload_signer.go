package service

// UploadAuth is the short-lived credential a browser uses to upload directly to the media CDN.
type UploadAuth struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

// UploadSigner issues upload credentials.
type UploadSigner interface {
	Sign() (*UploadAuth, error)
}
