// Package token issues and verifies the stateless bearer tokens used to
// authenticate API requests.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long issued tokens stay valid.
const DefaultTTL = 100 * time.Hour

var (
	// ErrMalformed indicates the token could not be parsed or its
	// signature did not match.
	ErrMalformed = errors.New("token malformed")
	// ErrExpired indicates the token was valid but is past its expiry.
	// Callers present this to clients identically to ErrMalformed.
	ErrExpired = errors.New("token expired")
)

// Codec signs and verifies bearer tokens with a process-wide shared secret.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec. A non-positive ttl falls back to DefaultTTL.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: secret, ttl: ttl}
}

// Issue signs a token for the given user id, expiring ttl from now.
func (c *Codec) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("userID is required")
	}
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify checks the signature and expiry of a token and returns the user id
// it was issued for. It fails with ErrExpired for expired tokens and
// ErrMalformed for everything else.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrMalformed
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrMalformed
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}
