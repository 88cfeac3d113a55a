// Package auth reads the JSON Web Tokens issued by the storefront backend and guards
// view-server routes that need an authenticated session.
// Tokens are signed by the backend; the client never holds the signing key, so claims
// are decoded without verification and only used for display and expiry hints.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrMalformedToken is returned when a token cannot be decoded.
var ErrMalformedToken = errors.New("auth: malformed token")

// Claims represents the access token claims issued by the backend.
type Claims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the claims of tokenStr without verifying its signature.
func ParseClaims(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrMalformedToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	return claims, nil
}

// Expired reports whether tokenStr carries an exp claim at or before now.
// Tokens without exp never expire; undecodable tokens are treated as expired.
func Expired(tokenStr string, now time.Time) bool {
	claims, err := ParseClaims(tokenStr)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
