// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid surveyor token")

// SurveyorSubject marks tokens issued by the password gate
const SurveyorSubject = "surveyor"

// SurveyorClaims are carried by the surveyor session cookie.
type SurveyorClaims struct {
	Session string `json:"sid"`
	jwt.RegisteredClaims
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSecret creates a random 32-byte signing secret, URL-safe base64
// without padding. Used when no session secret is configured.
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// IssueSurveyorToken signs an HS256 token for an unlocked gate session
func IssueSurveyorToken(secret, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SurveyorClaims{
		Session: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   SurveyorSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign surveyor token: %w", err)
	}
	return signed, nil
}

// ValidateSurveyorToken parses tok and checks its signature, expiry and subject
func ValidateSurveyorToken(secret, tok string) (*SurveyorClaims, error) {
	t, err := jwt.ParseWithClaims(tok, &SurveyorClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := t.Claims.(*SurveyorClaims)
	if !ok || !t.Valid || claims.Subject != SurveyorSubject {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits), enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}
