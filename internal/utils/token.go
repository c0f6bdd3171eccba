package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// GenerateTokenKey returns a new opaque token key: length random bytes
// encoded as a lowercase hex string (so the resulting key is 2*length
// characters long).
//
// Returns an error if length is not positive or if the system entropy
// source fails.
func GenerateTokenKey(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error generating token key: %w", err)
	}

	return hex.EncodeToString(raw), nil
}

// ParseBearerToken extracts the credential part of an "Authorization" HTTP
// header value of the form "<scheme> <key>". Both the "Token" and "Bearer"
// schemes are accepted.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
