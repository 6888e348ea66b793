// Package token issues and verifies the signed session tokens that stand in
// for server-side sessions. A token asserts a user id for a limited time;
// the server keeps no record of outstanding tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

// TTL is how long an issued token stays valid.
const TTL = 2 * time.Hour

// ErrInvalidToken is returned by Validate for any token that fails
// signature or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims embeds the authenticated user's id alongside the standard
// registered claims.
type Claims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a shared secret.
type Manager struct {
	secret []byte
}

// NewManager returns a Manager using the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue creates a fresh HS256 token embedding userID, expiring TTL from now.
func (m *Manager) Issue(userID int64) (string, error) {
	claims := &Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the token's signature and expiry and returns the
// embedded user id. Any failure is reported as ErrInvalidToken.
func (m *Manager) Validate(tokenString string) (int64, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return 0, ErrInvalidToken
	}
	return claims.ID, nil
}
