package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vidshare/config"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
	"vidshare/internal/errors"
)

// sessionClaims carries the user id in "sub". The email is deliberately not stored.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// jwtSessionIssuer is a concrete implementation of the SessionIssuer interface using HS256 JWTs.
type jwtSessionIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for the session issuer.
// It fails when the signing secret is missing or too short.
func NewJWTService(cfg *config.Config) (service.SessionIssuer, error) {
	return newJWTSessionIssuer(cfg.Session.Secret, time.Now)
}

func newJWTSessionIssuer(secret string, now func() time.Time) (*jwtSessionIssuer, error) {
	if len(secret) < config.MinSessionSecretLength {
		return nil, errors.Errorf("session secret must be at least %d bytes", config.MinSessionSecretLength)
	}

	return &jwtSessionIssuer{
		secret: []byte(secret),
		ttl:    service.SessionLifetime,
		now:    now,
	}, nil
}

// Issue signs a session for the identity.
func (s *jwtSessionIssuer) Issue(identity entity.Identity) (*entity.IssuedSession, error) {
	if identity.ID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrSessionIssueFailed, "identity has no id")
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionIssueFailed, err.Error())
	}

	return &entity.IssuedSession{Token: signed, ExpiresAt: expiresAt}, nil
}

// Decode verifies the token. Expired, forged, malformed and foreign-algorithm tokens are all ErrSessionInvalid.
func (s *jwtSessionIssuer) Decode(token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrSessionInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	session := &entity.Session{
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.UTC(),
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.UTC()
	}

	return session, nil
}
