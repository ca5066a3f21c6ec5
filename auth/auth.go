// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielhkuo/polls/middleware"
)

// AdminKeyHeader carries the admin key on admin API requests
const AdminKeyHeader = "X-Admin-Key"

var (
	ErrMissingAdminKey = errors.New("missing admin key")
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// GenerateAdminKey creates a random admin key for operators to configure
func GenerateAdminKey() (string, error) {
	b := make([]byte, 24) // 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin key: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateAdminKey checks the provided key against the configured one.
// Both sides are hashed first so the comparison time does not depend on length.
func ValidateAdminKey(provided, expected string) error {
	if provided == "" {
		return ErrMissingAdminKey
	}
	got := sha256.Sum256([]byte(provided))
	want := sha256.Sum256([]byte(expected))
	if !hmac.Equal(got[:], want[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}

// RequireAdminKey rejects requests without a valid X-Admin-Key header
func RequireAdminKey(key string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ValidateAdminKey(r.Header.Get(AdminKeyHeader), key); err != nil {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
			return
		}
		next(w, r)
	}
}
