// Package jwtmw provides bearer-token issuing and the authentication
// middleware built on it.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator defines the interface for bearer-token generation.
type Generator interface {
	// IssueToken creates a signed token carrying the given user ID.
	IssueToken(userID uint) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret []byte
}

// NewGenerator creates a new token generator signing with the provided secret.
func NewGenerator(secret string) Generator {
	return &generator{secret: []byte(secret)}
}

// IssueToken creates a signed HS256 token. The payload carries the user ID
// and issue time only; tokens never expire and cannot be revoked.
func (g *generator) IssueToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
