package session

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"com.tandemly.social/internal/boot"
	"com.tandemly.social/internal/model"
	"com.tandemly.social/pkg/crypt"
)

type Database interface {
	FindUserByID(userID model.UserID) (*model.User, error)
}

type service struct {
	signingKey *ecdsa.PrivateKey
	ttl        time.Duration
	db         Database
}

func New(config *boot.Config, db Database) (*service, error) {
	signingKey, err := crypt.DecodePrivateKey(config.Session.SigningKey)
	if err != nil {
		return nil, fmt.Errorf("decoding session signing key: %w", err)
	}
	return &service{signingKey, config.Session.TTL, db}, nil
}

// Issue signs a fresh session token for the given user. Tokens are
// stateless; nothing is written anywhere.
func (s *service) Issue(userID model.UserID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   string(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return token, nil
}

// Verify checks the token signature and expiry, then resolves the encoded
// user against the store. It never mutates anything; callers map the
// returned sentinel onto a response status.
func (s *service) Verify(token string) (*model.User, error) {
	if token == "" {
		return nil, model.ErrorMissingCredential
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &s.signingKey.PublicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrorSessionExpired
		}
		return nil, model.ErrorInvalidSignature
	}

	user, err := s.db.FindUserByID(model.UserID(claims.Subject))
	if err != nil {
		if errors.Is(err, model.ErrorUserNotFound) {
			return nil, model.ErrorIdentityNotFound
		}
		return nil, fmt.Errorf("resolving session identity: %w", err)
	}

	user.Password = ""
	return user, nil
}
