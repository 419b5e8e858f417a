// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token and hashing utilities for the surveyor session.

# Surveyor Tokens

Once a surveyor passes the password gate the server issues an HS256 JWT
(github.com/golang-jwt/jwt/v5) and stores it in an HttpOnly cookie:

	tok, err := auth.IssueSurveyorToken(secret, sessionID, 12*time.Hour)
	claims, err := auth.ValidateSurveyorToken(secret, tok)

Tokens carry the gate session id and the subject "surveyor". Validation
pins the signing method to HS256 and rejects expired tokens. Every failure
wraps ErrInvalidToken.

# Secrets

When no session secret is configured, main generates one per process:

	secret, err := auth.GenerateSecret()

Tokens then stop validating when the server restarts.

# ID Generation

Random hex IDs:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

Respondent addresses are only logged as hashes:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
